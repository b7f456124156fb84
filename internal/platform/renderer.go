package platform

import (
	"image"

	"github.com/akmonengine/lander/actor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport is the world rectangle shown on screen
type Viewport struct {
	Left, Right, Bottom, Top float64
}

// DefaultViewport matches a 4:3 window, 10 x 7.5 world units
var DefaultViewport = Viewport{Left: -5, Right: 5, Bottom: -3.75, Top: 3.75}

// View maps world coordinates (Y up) to screen pixels (Y down)
func (v Viewport) View(width, height int) mgl64.Mat4 {
	sx := float64(width) / (v.Right - v.Left)
	sy := float64(height) / (v.Top - v.Bottom)

	return mgl64.Scale3D(sx, -sy, 1).Mul4(mgl64.Translate3D(-v.Left, -v.Top, 0))
}

// Renderer draws sprites onto an ebiten image
type Renderer struct {
	Screen *ebiten.Image
	View   mgl64.Mat4
}

// quad maps the pixels of a w x h image onto the unit quad centered at the origin, Y up
func quad(w, h int) mgl64.Mat4 {
	return mgl64.Translate3D(-0.5, 0.5, 0).Mul4(mgl64.Scale3D(1/float64(w), -1/float64(h), 1))
}

// Geometry flattens view * model * quad into an ebiten affine transform
func Geometry(view, model mgl64.Mat4, w, h int) ebiten.GeoM {
	full := view.Mul4(model).Mul4(quad(w, h))

	var geom ebiten.GeoM
	geom.SetElement(0, 0, full.At(0, 0))
	geom.SetElement(0, 1, full.At(0, 1))
	geom.SetElement(0, 2, full.At(0, 3))
	geom.SetElement(1, 0, full.At(1, 0))
	geom.SetElement(1, 1, full.At(1, 1))
	geom.SetElement(1, 2, full.At(1, 3))

	return geom
}

// SubRect converts a normalized region to pixels inside bounds
func SubRect(bounds image.Rectangle, region actor.Region) image.Rectangle {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	return image.Rect(
		bounds.Min.X+int(region.Min.X()*w),
		bounds.Min.Y+int(region.Min.Y()*h),
		bounds.Min.X+int(region.Max.X()*w),
		bounds.Min.Y+int(region.Max.Y()*h),
	)
}

func (r *Renderer) Draw(model mgl64.Mat4, texture actor.Texture, region actor.Region) {
	t, ok := texture.(*Texture)
	if !ok || t == nil || t.Image == nil {
		return
	}

	rect := SubRect(t.Bounds(), region)
	if rect.Empty() {
		return
	}
	sprite := t.SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: t.Filter}
	op.GeoM = Geometry(r.View, model, rect.Dx(), rect.Dy())
	r.Screen.DrawImage(sprite, op)
}
