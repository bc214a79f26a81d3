package gfx

import "image"

// Viewport is the window region surfaces are drawn into, in framebuffer
// pixels. Version grows on every change so backends can skip redundant
// viewport calls.
type Viewport struct {
	rect    image.Rectangle
	version uint64
}

func NewViewport(rect image.Rectangle) *Viewport {
	return &Viewport{rect: rect.Canon()}
}

func (v *Viewport) Rect() image.Rectangle {
	return v.rect
}

func (v *Viewport) Size() image.Point {
	return v.rect.Size()
}

func (v *Viewport) Width() int  { return v.rect.Dx() }
func (v *Viewport) Height() int { return v.rect.Dy() }

func (v *Viewport) Version() uint64 {
	return v.version
}

// Set reports whether the rectangle changed.
func (v *Viewport) Set(rect image.Rectangle) bool {
	rect = rect.Canon()
	if rect == v.rect {
		return false
	}
	v.rect = rect
	v.version++
	return true
}

// Centered returns a size-sized rectangle centered in a width x height area.
func Centered(width, height int, size image.Point) image.Rectangle {
	origin := image.Pt((width-size.X)/2, (height-size.Y)/2)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}
