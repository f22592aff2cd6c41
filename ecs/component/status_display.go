package component

import "image/color"

// TextLabel is the text widget a status display writes into.
type TextLabel interface {
	SetText(text string)
}

// ImageTint is the icon next to the label, tinted with the actor color.
type ImageTint interface {
	SetColor(c color.Color)
}

// StatusDisplay binds an actor to its HUD widgets. Either may be nil.
type StatusDisplay struct {
	Label TextLabel
	Icon  ImageTint
}

var StatusDisplayComponent = NewComponent[StatusDisplay]()
