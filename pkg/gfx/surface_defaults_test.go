package gfx_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kjkrol/gokt/pkg/gfx"
)

func TestSurfaceDefaultsFill(t *testing.T) {
	d := gfx.NewSurfaceDefaults()
	d.Positions = []int{5}
	d.Fill(true, true)
	if !slices.Equal(d.Positions, []int{5}) {
		t.Fatalf("filled without a FillCount: %v", d.Positions)
	}

	d.FillCount = 3
	d.SinglePosition = 2
	d.SingleSprite = 7
	d.SingleOtherData = [][]float32{{1, 2}, nil}
	d.Fill(true, false)
	if !slices.Equal(d.Positions, []int{5, 2, 2}) || d.Layouts != nil {
		t.Fatalf("positions %v, layouts %v", d.Positions, d.Layouts)
	}
	if d.Sprites != nil || d.OtherData != nil {
		t.Fatalf("other data filled on a positions-only fill")
	}

	d.Fill(false, true)
	if !slices.Equal(d.Sprites, []int{7, 7, 7}) || d.SpriteTypes != nil {
		t.Fatalf("sprites %v, sprite types %v", d.Sprites, d.SpriteTypes)
	}
	if len(d.OtherData) != 2 || !equalFloats(d.OtherData[0], []float32{1, 2, 1, 2, 1, 2}) || d.OtherData[1] != nil {
		t.Fatalf("other data %v", d.OtherData)
	}
}

func TestSurfaceDefaultsClone(t *testing.T) {
	d := gfx.NewSurfaceDefaults()
	d.Positions = []int{1, 2}
	d.OtherData = [][]float32{{1, 1, 1, 1}}

	c := d.Clone()
	c.Positions[0] = 9
	c.OtherData[0][0] = 0
	if d.Positions[0] != 1 || d.OtherData[0][0] != 1 {
		t.Fatalf("clone shares lists with the original")
	}
}

func TestSurfaceEasyLayoutCounts(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)
	s.AddLayout(gfx.NewGridLayout(gfx.GridParams{Cols: 4, Rows: 4, CellWidth: 1, CellHeight: 1, OffsetX: 4}))

	if err := s.SetEasyLayoutCounts(1); !errors.Is(err, gfx.ErrLayoutCountMismatch) {
		t.Fatalf("err = %v, want ErrLayoutCountMismatch", err)
	}
	if err := s.SetEasyLayoutCounts(2, 1); err != nil {
		t.Fatal(err)
	}
	d := s.Defaults()
	if !slices.Equal(d.Positions, []int{0, 1, 0}) || !slices.Equal(d.Layouts, []int{0, 0, 1}) || d.FillCount != 3 {
		t.Fatalf("defaults = %+v", d)
	}

	s.SetDefaultSprite(3)
	s.SetDefaultOtherData([]float32{0, 1, 0, 1})
	if err := s.DefaultUpdate(); err != nil {
		t.Fatal(err)
	}
	vbo := s.Buffers()
	if vbo.Quads() != 3 {
		t.Fatalf("%d quads drawn", vbo.Quads())
	}
	pos := backend.Buffers[vbo.Position]
	// third quad is cell 0 of the second layout, four units right
	if pos[0] != -1 || pos[16] != 0 {
		t.Fatalf("quad x0 = %v / %v", pos[0], pos[16])
	}
	other := backend.Buffers[vbo.Other]
	for q := 0; q < 3; q++ {
		base := q * 40
		if other[base] != 0.75 || !equalFloats(other[base+2:base+6], []float32{0, 1, 0, 1}) {
			t.Fatalf("quad %d attributes %v", q, other[base:base+10])
		}
	}
	if len(s.Defaults().Sprites) != 0 {
		t.Fatalf("update filled the stored defaults")
	}
}

func TestSurfaceUpdateHooks(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := gridSurface(t, w, gfx.SurfaceConfig{})

	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdatePositionsOnly(); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateOtherDataOnly(); err != nil {
		t.Fatal(err)
	}
	if backend.BufferDataCalls+backend.BufferSubDataCalls != 0 {
		t.Fatalf("updates ran without hooks")
	}

	s.SetDefaultPosition(0)
	s.SetDefaultSprite(0)
	s.Defaults().FillCount = 2
	s.UpdateMethod = func(d *gfx.SurfaceDefaults) {
		d.Positions = append(d.Positions, 15)
	}
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if s.Buffers().Quads() != 2 || len(s.Defaults().Positions) != 0 {
		t.Fatalf("quads = %d, stored positions %v", s.Buffers().Quads(), s.Defaults().Positions)
	}
	pos := backend.Buffers[s.Buffers().Position]
	// cell 15 is the bottom right corner: world [3, 4]
	if pos[0] != -0.25 || pos[8] != -1 {
		t.Fatalf("x0 = %v / %v", pos[0], pos[8])
	}

	var positionsOnly, otherOnly int
	s.UpdatePositionsOnlyMethod = func(*gfx.SurfaceDefaults) { positionsOnly++ }
	s.UpdateOtherDataOnlyMethod = func(*gfx.SurfaceDefaults) { otherOnly++ }
	other := backend.BufferDataCalls + backend.BufferSubDataCalls
	if err := s.UpdatePositionsOnly(); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateOtherDataOnly(); err != nil {
		t.Fatal(err)
	}
	if positionsOnly != 1 || otherOnly != 1 || backend.BufferDataCalls+backend.BufferSubDataCalls != other+2 {
		t.Fatalf("hooks ran %d/%d times", positionsOnly, otherOnly)
	}

	s.SetDefaults(nil)
	if s.Defaults().FillCount != gfx.Unset || s.Defaults().SinglePosition != gfx.Unset {
		t.Fatalf("SetDefaults(nil) = %+v", s.Defaults())
	}
}

func TestDefaultUpdateShortLayoutDefaults(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := gridSurface(t, w, gfx.SurfaceConfig{})
	s.AddLayout(gfx.NewGridLayout(gfx.GridParams{Cols: 4, Rows: 4, CellWidth: 1, CellHeight: 1, OffsetX: 4}))

	d := s.Defaults()
	d.Positions = []int{0, 0, 0}
	d.Layouts = []int{1}
	if err := s.DefaultUpdatePositions(); err != nil {
		t.Fatal(err)
	}
	pos := backend.Buffers[s.Buffers().Position]
	got := []float32{pos[0], pos[8], pos[16]}
	if !equalFloats(got, []float32{0, -1, -1}) {
		t.Fatalf("x0 = %v, want [0 -1 -1]", got)
	}
}
