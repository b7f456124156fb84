// Package platform binds the lander core to ebiten: textures, keyboard, clock, sprite drawing and the game loop.
package platform

import (
	"fmt"

	"github.com/akmonengine/lander"
	"github.com/akmonengine/lander/actor"
	"github.com/akmonengine/lander/internal/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is an image uploaded to the GPU together with its sampling filter
type Texture struct {
	*ebiten.Image
	Filter ebiten.Filter
}

// ImageLoader returns raw RGBA pixels for a path
type ImageLoader interface {
	Load(path string) (assets.Image, error)
}

// TextureLoader uploads decoded images as ebiten images
type TextureLoader struct {
	Images ImageLoader
}

func NewTextureLoader(images ImageLoader) *TextureLoader {
	return &TextureLoader{Images: images}
}

func (l *TextureLoader) LoadTexture(path string, filter lander.Filter) (actor.Texture, error) {
	img, err := l.Images.Load(path)
	if err != nil {
		return nil, err
	}
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != 4*img.Width*img.Height {
		return nil, fmt.Errorf("image %q: %dx%d with %d bytes", path, img.Width, img.Height, len(img.Pix))
	}

	uploaded := ebiten.NewImage(img.Width, img.Height)
	uploaded.WritePixels(img.Pix)

	return &Texture{Image: uploaded, Filter: ebitenFilter(filter)}, nil
}

func (l *TextureLoader) Dispose(texture actor.Texture) {
	if t, ok := texture.(*Texture); ok && t.Image != nil {
		t.Image.Deallocate()
	}
}

func ebitenFilter(filter lander.Filter) ebiten.Filter {
	if filter == lander.FilterLinear {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}
