// Package assets decodes image files into raw RGBA pixels.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
)

// Image holds decoded pixels, 4 bytes per pixel (premultiplied RGBA), row by row
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Decoder reads images from a file system, usually os.DirFS of the assets directory
type Decoder struct {
	fsys fs.FS
}

func NewDecoder(fsys fs.FS) *Decoder {
	return &Decoder{fsys: fsys}
}

// Load decodes the image at path
func (d *Decoder) Load(path string) (Image, error) {
	file, err := d.fsys.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open image %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Image{}, fmt.Errorf("decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) || rgba.Stride != 4*bounds.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    rgba.Pix,
	}, nil
}
