package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/Xwilarg/WigglingHunt/common"
	"github.com/Xwilarg/WigglingHunt/ecs"
	"github.com/Xwilarg/WigglingHunt/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

var (
	floorColor  = color.RGBA{R: 0x24, G: 0x27, B: 0x2e, A: 0xff}
	borderColor = colornames.Slategray
	aimColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
)

// Renderer draws the world once per camera, each into its own viewport.
type Renderer struct {
	// Debug draws every actor's aim ray and, when Space is set, collider
	// outlines.
	Debug bool
	Space *cp.Space
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

type view struct {
	camX, camY float64
	scale      float64
	center     image.Point
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.scale + float64(v.center.X)), float32((y-v.camY)*v.scale + float64(v.center.Y))
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	cameras := w.Query(component.CameraComponent.Kind(), component.TransformComponent.Kind())
	sort.Slice(cameras, func(i, j int) bool { return uint64(cameras[i]) < uint64(cameras[j]) })

	if len(cameras) == 0 {
		r.drawOverview(w, screen)
		return
	}
	for _, e := range cameras {
		cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		viewport := cam.Viewport
		if viewport.Empty() {
			viewport = screen.Bounds()
		}
		dst, ok := screen.SubImage(viewport).(*ebiten.Image)
		if !ok {
			continue
		}
		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		r.drawView(w, dst, view{
			camX:   t.X + cam.LocalX,
			camY:   t.Y + cam.LocalY,
			scale:  common.PixelsPerUnit * zoom,
			center: viewport.Min.Add(viewport.Max).Div(2),
		})
		vector.StrokeRect(dst, float32(viewport.Min.X), float32(viewport.Min.Y), float32(viewport.Dx()), float32(viewport.Dy()), 2, color.Black, false)
	}
}

// drawOverview centers the whole level when nobody has joined yet.
func (r *Renderer) drawOverview(w *ecs.World, screen *ebiten.Image) {
	b := screen.Bounds()
	v := view{scale: common.PixelsPerUnit, center: b.Min.Add(b.Max).Div(2)}
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
		v.camX, v.camY = bounds.Width/2, bounds.Height/2
	}
	r.drawView(w, screen, v)
}

func (r *Renderer) drawView(w *ecs.World, dst *ebiten.Image, v view) {
	if e, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
		x0, y0 := v.toScreen(0, 0)
		x1, y1 := v.toScreen(bounds.Width, bounds.Height)
		vector.DrawFilledRect(dst, x0, y0, x1-x0, y1-y0, floorColor, false)
		vector.StrokeRect(dst, x0, y0, x1-x0, y1-y0, 3, borderColor, false)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent.Kind())
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent.Kind())
		if si.Order != sj.Order {
			return si.Order < sj.Order
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		r.drawSprite(dst, v, t, s)
		if ecs.Has(w, e, component.ActorComponent.Kind()) {
			r.drawFacing(dst, v, t, s)
		}
	}

	ecs.ForEach2(w, component.ExplosionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ex *component.Explosion, t *component.Transform) {
		progress := 1.0
		if ex.Duration > 0 {
			progress = min(1, ex.Elapsed/ex.Duration)
		}
		x, y := v.toScreen(t.X, t.Y)
		radius := float32(ex.Radius * progress * v.scale)
		c := ex.Color
		if c == nil {
			c = colornames.Orange
		}
		vector.StrokeCircle(dst, x, y, radius, 4, fade(c, 1-progress), true)
	})

	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(e ecs.Entity, line *component.LineRender) {
		if !line.Visible {
			return
		}
		x0, y0 := v.toScreen(line.StartX, line.StartY)
		x1, y1 := v.toScreen(line.EndX, line.EndY)
		c := line.Color
		if c == nil {
			c = colornames.Red
		}
		vector.StrokeLine(dst, x0, y0, x1, y1, line.Width, c, true)
	})

	if r.Debug {
		drawPhysicsDebug(r.Space, dst, v)
		ecs.ForEach2(w, component.ActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Actor, t *component.Transform) {
			x0, y0 := v.toScreen(t.X, t.Y)
			x1, y1 := v.toScreen(t.X+a.Aim.X, t.Y+a.Aim.Y)
			vector.StrokeLine(dst, x0, y0, x1, y1, 1, aimColor, false)
		})
	}
}

func (r *Renderer) drawSprite(dst *ebiten.Image, v view, t *component.Transform, s *component.Sprite) {
	key := "box"
	if s.Shape == component.SpriteCircle {
		key = "circle"
	}
	img := shapeImage(key)

	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	wPx := s.Width * sx * v.scale
	hPx := s.Height * sy * v.scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-shapeTextureSize/2, -shapeTextureSize/2)
	op.GeoM.Scale(wPx/shapeTextureSize, hPx/shapeTextureSize)
	op.GeoM.Rotate(t.Rotation)
	x, y := v.toScreen(t.X, t.Y)
	op.GeoM.Translate(float64(x), float64(y))
	if s.Color != nil {
		op.ColorScale.ScaleWithColor(s.Color)
	}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawFacing marks which way an actor looks with a small dot.
func (r *Renderer) drawFacing(dst *ebiten.Image, v view, t *component.Transform, s *component.Sprite) {
	dir := 1.0
	if s.FlipX {
		dir = -1
	}
	x, y := v.toScreen(t.X+dir*s.Width*0.25, t.Y-s.Height*0.1)
	vector.DrawFilledCircle(dst, x, y, float32(s.Width*0.12*v.scale), color.Black, true)
}

// fade scales a color's premultiplied channels by alpha.
func fade(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
