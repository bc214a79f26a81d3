package gfx

import "slices"

// Unset marks a single-value default that must not be used for filling.
const Unset = -1

// SurfaceDefaults holds the lists a Surface feeds into its update calls.
// The Single* values pad the lists up to FillCount entries; a value left at
// Unset leaves its list alone.
type SurfaceDefaults struct {
	Positions   []int
	Layouts     []int
	Sprites     []int
	SpriteTypes []int
	// OtherData holds one column per extra attribute, see UpdateOtherData.
	OtherData [][]float32

	SinglePosition   int
	SingleLayout     int
	SingleSprite     int
	SingleSpriteType int
	// SingleOtherData holds one value set per extra attribute.
	SingleOtherData [][]float32

	FillCount int
}

func NewSurfaceDefaults() *SurfaceDefaults {
	return &SurfaceDefaults{
		SinglePosition:   Unset,
		SingleLayout:     Unset,
		SingleSprite:     Unset,
		SingleSpriteType: Unset,
		FillCount:        Unset,
	}
}

// Clone deep-copies the lists. SingleOtherData is shared.
func (d *SurfaceDefaults) Clone() *SurfaceDefaults {
	c := *d
	c.Positions = slices.Clone(d.Positions)
	c.Layouts = slices.Clone(d.Layouts)
	c.Sprites = slices.Clone(d.Sprites)
	c.SpriteTypes = slices.Clone(d.SpriteTypes)
	if d.OtherData != nil {
		c.OtherData = make([][]float32, len(d.OtherData))
		for i, col := range d.OtherData {
			c.OtherData[i] = slices.Clone(col)
		}
	}
	return &c
}

// Fill pads the position lists, the other data lists, or both up to
// FillCount. Nothing happens while FillCount <= 0.
func (d *SurfaceDefaults) Fill(positions, otherData bool) {
	if d.FillCount <= 0 {
		return
	}
	if positions {
		d.Positions = padInts(d.Positions, d.SinglePosition, d.FillCount)
		d.Layouts = padInts(d.Layouts, d.SingleLayout, d.FillCount)
	}
	if !otherData {
		return
	}
	d.Sprites = padInts(d.Sprites, d.SingleSprite, d.FillCount)
	d.SpriteTypes = padInts(d.SpriteTypes, d.SingleSpriteType, d.FillCount)
	if d.SingleOtherData == nil {
		return
	}
	if d.OtherData == nil {
		d.OtherData = make([][]float32, len(d.SingleOtherData))
	}
	for i, values := range d.SingleOtherData {
		if i >= len(d.OtherData) || len(values) == 0 {
			continue
		}
		for len(d.OtherData[i]) < d.FillCount*len(values) {
			d.OtherData[i] = append(d.OtherData[i], values...)
		}
	}
}

func padInts(list []int, value, n int) []int {
	if value == Unset {
		return list
	}
	for len(list) < n {
		list = append(list, value)
	}
	return list
}
