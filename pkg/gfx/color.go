package gfx

import "image/color"

// ColorAttrib converts c to an RGBA attribute value in 0..1. A nil color is
// transparent black.
func ColorAttrib(c color.Color) []float32 {
	if c == nil {
		return make([]float32, 4)
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return []float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}

// AppendColors appends one ColorAttrib per color, building an attribute
// column for UpdateOtherData.
func AppendColors(dst []float32, colors ...color.Color) []float32 {
	for _, c := range colors {
		dst = append(dst, ColorAttrib(c)...)
	}
	return dst
}
