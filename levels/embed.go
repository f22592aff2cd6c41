package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is an arena in world units, Y pointing down.
type Level struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Prompt is shown centered on screen while the level is active.
	Prompt   string   `json:"prompt,omitempty"`
	Spawns   []Point  `json:"spawns"`
	Entities []Entity `json:"entities,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Entity is a prop placed in the level. Type names a prefab ("wall" builds
// wall.yaml). Parts are extra colliders riding the entity's body, offset
// from its center.
type Entity struct {
	Type   string         `json:"type"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Width  float64        `json:"w,omitempty"`
	Height float64        `json:"h,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
	Parts  []Part         `json:"parts,omitempty"`
}

type Part struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// StringProp returns a string property, or def when missing.
func (e Entity) StringProp(name, def string) string {
	if v, ok := e.Props[name].(string); ok {
		return v
	}
	return def
}

// SpawnFor returns the spawn point of the i-th player, cycling through the
// level's spawns.
func (l *Level) SpawnFor(i int) Point {
	if len(l.Spawns) == 0 {
		return Point{X: l.Width / 2, Y: l.Height / 2}
	}
	return l.Spawns[i%len(l.Spawns)]
}

func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Width <= 0 || lvl.Height <= 0 {
		return nil, fmt.Errorf("level %s: invalid size %vx%v", name, lvl.Width, lvl.Height)
	}
	return &lvl, nil
}
