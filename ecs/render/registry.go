package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// shapeTextureSize is the side of the generated shape textures in pixels.
const shapeTextureSize = 64

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// shapeImage returns the white texture for a sprite shape, generating it on
// first use. Sprites are tinted through the color scale.
func shapeImage(key string) *ebiten.Image {
	if img := GetImage(key); img != nil {
		return img
	}
	var img *ebiten.Image
	switch key {
	case "circle":
		img = ebiten.NewImageFromImage(circleMask(shapeTextureSize))
	default:
		img = ebiten.NewImage(shapeTextureSize, shapeTextureSize)
		img.Fill(color.White)
	}
	RegisterImage(key, img)
	return img
}

func circleMask(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}
