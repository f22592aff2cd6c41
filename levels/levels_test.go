package levels

import "testing"

func TestLoadScenes(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		prompt        bool
	}{
		{"MainMenu", 20, 12, true},
		{"Arena.json", 32, 20, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(c.name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Width != c.width || lvl.Height != c.height {
				t.Fatalf("size = %vx%v, want %vx%v", lvl.Width, lvl.Height, c.width, c.height)
			}
			if (lvl.Prompt != "") != c.prompt {
				t.Fatalf("prompt = %q", lvl.Prompt)
			}
			if len(lvl.Spawns) < 4 {
				t.Fatalf("%d spawns, want one per color", len(lvl.Spawns))
			}
			for _, s := range lvl.Spawns {
				if s.X <= 0 || s.Y <= 0 || s.X >= lvl.Width || s.Y >= lvl.Height {
					t.Fatalf("spawn %+v outside the level", s)
				}
			}
		})
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := LoadLevelFromFS("Nowhere"); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestSpawnFor(t *testing.T) {
	lvl := &Level{Width: 10, Height: 6, Spawns: []Point{{X: 1, Y: 1}, {X: 9, Y: 5}}}
	cases := []struct {
		i    int
		want Point
	}{
		{0, Point{X: 1, Y: 1}},
		{1, Point{X: 9, Y: 5}},
		{2, Point{X: 1, Y: 1}},
	}
	for _, c := range cases {
		if got := lvl.SpawnFor(c.i); got != c.want {
			t.Fatalf("SpawnFor(%d) = %+v, want %+v", c.i, got, c.want)
		}
	}

	empty := &Level{Width: 10, Height: 6}
	if got := empty.SpawnFor(3); got != (Point{X: 5, Y: 3}) {
		t.Fatalf("SpawnFor without spawns = %+v, want the center", got)
	}
}

func TestStringProp(t *testing.T) {
	e := Entity{Props: map[string]any{"color": "red", "n": 3.0}}
	if got := e.StringProp("color", ""); got != "red" {
		t.Fatalf("color = %q", got)
	}
	if got := e.StringProp("n", "def"); got != "def" {
		t.Fatalf("non-string prop = %q, want default", got)
	}
	if got := e.StringProp("missing", "def"); got != "def" {
		t.Fatalf("missing prop = %q, want default", got)
	}
}
