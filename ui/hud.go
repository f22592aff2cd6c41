package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const iconSize = 14

var textColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD is the overlay drawn above every viewport: one status slot per actor,
// a prompt line and a banner for the round outcome.
type HUD struct {
	ui     *ebitenui.UI
	face   ebtext.Face
	slots  *widget.Container
	prompt *widget.Text
	banner *widget.Text
}

// Slot is the status display of one actor: a label for the dye left and an
// icon tinted with the actor's color.
type Slot struct {
	label *widget.Text
	icon  *ebiten.Image
}

func NewHUD() *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	h := &HUD{face: face}

	h.slots = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)

	h.prompt = widget.NewText(
		widget.TextOpts.Text("", &h.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)

	h.banner = widget.NewText(
		widget.TextOpts.Text("", &h.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(h.slots)
	root.AddChild(h.prompt)
	root.AddChild(h.banner)
	h.ui = &ebitenui.UI{Container: root}
	return h
}

// AddSlot appends a status slot titled name.
func (h *HUD) AddSlot(name string) *Slot {
	s := &Slot{icon: ebiten.NewImage(iconSize, iconSize)}
	s.icon.Fill(color.White)

	row := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(6),
	)))
	row.AddChild(widget.NewText(widget.TextOpts.Text(name, &h.face, textColor)))
	row.AddChild(widget.NewGraphic(widget.GraphicOpts.Image(s.icon)))
	s.label = widget.NewText(widget.TextOpts.Text("", &h.face, textColor))
	row.AddChild(s.label)

	h.slots.AddChild(row)
	return s
}

// Clear drops every slot and message; called when a scene is rebuilt.
func (h *HUD) Clear() {
	h.slots.RemoveChildren()
	h.prompt.Label = ""
	h.banner.Label = ""
}

func (h *HUD) SetPrompt(text string) {
	h.prompt.Label = text
}

// SetBanner shows the round outcome; an empty string hides it.
func (h *HUD) SetBanner(text string) {
	h.banner.Label = text
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

func (s *Slot) SetText(text string) {
	if s == nil || s.label == nil {
		return
	}
	s.label.Label = text
}

func (s *Slot) SetColor(c color.Color) {
	if s == nil || s.icon == nil || c == nil {
		return
	}
	s.icon.Fill(c)
}
