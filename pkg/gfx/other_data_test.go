package gfx_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kjkrol/gokt/pkg/gfx"
)

func colorSurface(t *testing.T, w *gfx.Window) *gfx.Surface {
	t.Helper()
	s := gridSurface(t, w, gfx.SurfaceConfig{
		FragmentShader:    gfx.NewTintFS,
		AttributeDefaults: [][]float32{{1, 1, 1, 1}, {0, 0, 0, 1}},
	})
	s.Texture().DefineSpriteAcross(16, 16, 4, 0, 0)
	return s
}

func TestUpdateOtherDataLayout(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)

	if got := s.Buffers().Attribs.TotalSize; got != 10 {
		t.Fatalf("TotalSize = %d, want 10", got)
	}
	color := []float32{0.5, 0.25, 0, 1}
	if err := s.UpdateOtherData([]int{5}, [][]float32{color, nil}); err != nil {
		t.Fatal(err)
	}
	got := backend.Buffers[s.Buffers().Other]
	want := []float32{
		0.25, 0.5, 0.5, 0.25, 0, 1, 0, 0, 0, 1,
		0.25, 0.25, 0.5, 0.25, 0, 1, 0, 0, 0, 1,
		0.5, 0.25, 0.5, 0.25, 0, 1, 0, 0, 0, 1,
		0.5, 0.5, 0.5, 0.25, 0, 1, 0, 0, 0, 1,
	}
	if !equalFloats(got, want) {
		t.Fatalf("other data =\n%v\nwant\n%v", got, want)
	}
	if s.Buffers().OtherBytes != len(want)*4 {
		t.Fatalf("OtherBytes = %d", s.Buffers().OtherBytes)
	}
}

func TestTexcoordsFollowPositionCorners(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)

	if err := s.UpdatePositions([]int{6}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateOtherData([]int{6}, nil); err != nil {
		t.Fatal(err)
	}
	pos := backend.Buffers[s.Buffers().Position]
	other := backend.Buffers[s.Buffers().Other]
	stride := s.Buffers().Attribs.TotalSize

	minX, maxX := slices.Min([]float32{pos[0], pos[2], pos[4], pos[6]}), slices.Max([]float32{pos[0], pos[2], pos[4], pos[6]})
	minY, maxY := slices.Min([]float32{pos[1], pos[3], pos[5], pos[7]}), slices.Max([]float32{pos[1], pos[3], pos[5], pos[7]})
	sprite := s.Texture().SpriteTypes[0]
	for c, corner := range gfx.CornerOrder {
		px, py := pos[c*2], pos[c*2+1]
		tx, ty := other[c*stride], other[c*stride+1]
		if (px == maxX) != corner.MaxX || (px == minX) == corner.MaxX {
			t.Fatalf("corner %d position x %v does not match %+v", c, px, corner)
		}
		if (py == maxY) != corner.MaxY || (py == minY) == corner.MaxY {
			t.Fatalf("corner %d position y %v does not match %+v", c, py, corner)
		}
		wantTX, wantTY := sprite.X(6), sprite.Y(6)
		if corner.MaxX {
			wantTX += sprite.Width
		}
		if corner.MaxY {
			wantTY += sprite.Height
		}
		if tx != wantTX || ty != wantTY {
			t.Fatalf("corner %d texcoord (%v, %v), want (%v, %v)", c, tx, ty, wantTX, wantTY)
		}
	}
}

func TestUpdateOtherDataDefaultsAndSpriteTypes(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)
	s.Texture().DefineSpriteDown(16, 16, 4, 0, 0)

	colors := []float32{
		0.5, 0.5, 0.5, 1,
		0, 0, 1, 1,
	}
	err := s.UpdateOtherData([]int{1, 1}, [][]float32{colors}, gfx.WithSpriteTypes([]int{0, 1}))
	if err != nil {
		t.Fatal(err)
	}
	got := backend.Buffers[s.Buffers().Other]
	quad := 4 * 10
	// across: sprite 1 is column 1, down: sprite 1 is row 1
	if got[0] != 0.25 || got[quad] != 0 || got[quad+1] != 0.5 {
		t.Fatalf("texcoords %v / %v", got[:2], got[quad:quad+2])
	}
	for c := 0; c < 4; c++ {
		if !equalFloats(got[quad+c*10+2:quad+c*10+6], colors[4:]) {
			t.Fatalf("quad 1 corner %d color = %v", c, got[quad+c*10+2:quad+c*10+6])
		}
		// missing bgcolor column falls back to the default
		if !equalFloats(got[c*10+6:c*10+10], []float32{0, 0, 0, 1}) {
			t.Fatalf("quad 0 corner %d bgcolor = %v", c, got[c*10+6:c*10+10])
		}
	}

	if err := s.UpdateOtherData([]int{1}, nil, gfx.WithSpriteType(1)); err != nil {
		t.Fatal(err)
	}
	got = backend.Buffers[s.Buffers().Other]
	if got[0] != 0 || got[2] != 1 {
		t.Fatalf("WithSpriteType(1) texcoord x %v, color r %v", got[0], got[2])
	}
}

func TestUpdateOtherDataWholeTexture(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := gridSurface(t, w, gfx.SurfaceConfig{})

	if err := s.UpdateOtherData([]int{0}, nil); err != nil {
		t.Fatal(err)
	}
	want := []float32{0, 1, 0, 0, 1, 0, 1, 1}
	if got := backend.Buffers[s.Buffers().Other]; !equalFloats(got, want) {
		t.Fatalf("texcoords = %v, want %v", got, want)
	}
}

func TestUpdateOtherDataPartial(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)

	if err := s.UpdateOtherData(seq(0, 8), nil); err != nil {
		t.Fatal(err)
	}
	before := slices.Clone(backend.Buffers[s.Buffers().Other])

	if err := s.UpdateOtherData([]int{15, 15}, nil, gfx.StartAt(7)); !errors.Is(err, gfx.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if !equalFloats(backend.Buffers[s.Buffers().Other], before) {
		t.Fatalf("rejected update modified the buffer")
	}

	if err := s.UpdateOtherData([]int{15, 15}, nil, gfx.StartAt(6)); err != nil {
		t.Fatal(err)
	}
	after := backend.Buffers[s.Buffers().Other]
	quad := 40
	if !equalFloats(after[:6*quad], before[:6*quad]) {
		t.Fatalf("quads before the range changed")
	}
	if after[6*quad] != 0.75 || after[7*quad] != 0.75 {
		t.Fatalf("updated texcoords %v %v, want 0.75", after[6*quad], after[7*quad])
	}
	if len(backend.Errors) > 0 {
		t.Fatalf("backend errors: %v", backend.Errors)
	}
}

func TestUpdateOtherSingle(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)

	if err := s.UpdateOtherData(seq(0, 4), nil); err != nil {
		t.Fatal(err)
	}
	red := []float32{1, 0, 0, 1}
	if err := s.UpdateOtherSingle(3, 2, [][]float32{red}, gfx.Unset); err != nil {
		t.Fatal(err)
	}
	got := backend.Buffers[s.Buffers().Other]
	base := 3 * 40
	if got[base] != 0.5 || !equalFloats(got[base+2:base+6], red) {
		t.Fatalf("quad 3 = %v", got[base:base+10])
	}
	if err := s.UpdateOtherSingle(4, 0, nil, 0); !errors.Is(err, gfx.ErrCapacityExceeded) {
		t.Fatalf("past the end: err = %v", err)
	}
}

func TestUpdateOtherDataShortSpriteTypeList(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	s := colorSurface(t, w)
	s.Texture().DefineSpriteDown(16, 16, 4, 0, 0)

	err := s.UpdateOtherData([]int{1, 1, 1}, nil, gfx.WithSpriteTypes([]int{1}), gfx.WithSpriteType(0))
	if err != nil {
		t.Fatal(err)
	}
	got := backend.Buffers[s.Buffers().Other]
	// down: sprite 1 starts at x 0, across: sprite 1 starts at x 0.25
	for q, want := range []float32{0, 0.25, 0.25} {
		if got[q*40] != want {
			t.Fatalf("quad %d texcoord x = %v, want %v", q, got[q*40], want)
		}
	}
}
