package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecoder_Load(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(2, 1, color.NRGBA{B: 255, A: 255})

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Set(1, 1, color.Gray{Y: 200})

	fsys := fstest.MapFS{
		"submarine.png": {Data: encodePNG(t, src)},
		"gray.png":      {Data: encodePNG(t, gray)},
	}
	decoder := NewDecoder(fsys)

	t.Run("rgba pixels", func(t *testing.T) {
		img, err := decoder.Load("submarine.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if img.Width != 3 || img.Height != 2 {
			t.Errorf("size = %dx%d, want 3x2", img.Width, img.Height)
		}
		if len(img.Pix) != 3*2*4 {
			t.Fatalf("len(Pix) = %d, want 24", len(img.Pix))
		}
		if got := img.Pix[0:4]; !bytes.Equal(got, []byte{255, 0, 0, 255}) {
			t.Errorf("pixel (0,0) = %v, want opaque red", got)
		}
		last := (1*3 + 2) * 4
		if got := img.Pix[last : last+4]; !bytes.Equal(got, []byte{0, 0, 255, 255}) {
			t.Errorf("pixel (2,1) = %v, want opaque blue", got)
		}
	})

	t.Run("converted from gray", func(t *testing.T) {
		img, err := decoder.Load("gray.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(img.Pix) != 2*2*4 {
			t.Fatalf("len(Pix) = %d, want 16", len(img.Pix))
		}
		if got := img.Pix[12:16]; !bytes.Equal(got, []byte{200, 200, 200, 255}) {
			t.Errorf("pixel (1,1) = %v, want gray 200", got)
		}
	})
}

func TestDecoder_LoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("not an image")},
	}
	decoder := NewDecoder(fsys)

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing", "eaten.png", fs.ErrNotExist},
		{"corrupt", "broken.png", image.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decoder.Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("Load() error = %v, want %v", err, tt.target)
			}
			if img.Pix != nil {
				t.Error("Load() should not return pixels on failure")
			}
		})
	}
}
