package gfx_test

import (
	"testing"

	"github.com/kjkrol/gokt/pkg/gfx"
)

func TestGridLayoutPositions(t *testing.T) {
	cases := []struct {
		cols, rows int
		w, h       float32
	}{
		{cols: 1, rows: 1, w: 1, h: 1},
		{cols: 4, rows: 3, w: 16, h: 24},
		{cols: 7, rows: 5, w: 0.5, h: 2},
	}
	for _, c := range cases {
		l := gfx.NewGridLayout(gfx.GridParams{Cols: c.cols, Rows: c.rows, CellWidth: c.w, CellHeight: c.h})
		for idx := 0; idx < c.cols*c.rows; idx++ {
			wantX := float32(idx%c.cols) * c.w
			wantY := float32(idx/c.cols) * c.h
			if got := l.X(idx); got != wantX {
				t.Fatalf("%dx%d X(%d) = %v, want %v", c.cols, c.rows, idx, got, wantX)
			}
			if got := l.Y(idx); got != wantY {
				t.Fatalf("%dx%d Y(%d) = %v, want %v", c.cols, c.rows, idx, got, wantY)
			}
		}
	}
}

func TestGridLayoutDefaultsCellSize(t *testing.T) {
	l := gfx.NewGridLayout(gfx.GridParams{Cols: 2, Rows: 2})
	if l.CellWidth != 1 || l.CellHeight != 1 {
		t.Fatalf("cell size = %vx%v, want 1x1", l.CellWidth, l.CellHeight)
	}
	if l.X(3) != 1 || l.Y(3) != 1 {
		t.Fatalf("cell 3 at (%v, %v), want (1, 1)", l.X(3), l.Y(3))
	}
}

func TestIsoLayout(t *testing.T) {
	p := gfx.IsoParams{Cols: 3, Rows: 4, CellWidth: 32, CellHeight: 16, CellHOffset: 16, CellVOffset: 8}
	l := gfx.NewIsoLayout(p)

	// idx 5: row 1, col 2
	if got, want := l.X(5), float32(4-1-1+2)*16; got != want {
		t.Fatalf("X(5) = %v, want %v", got, want)
	}
	if got, want := l.Y(5), float32(1+2)*8; got != want {
		t.Fatalf("Y(5) = %v, want %v", got, want)
	}
}

func TestIsoElevationIsAdditive(t *testing.T) {
	p := gfx.IsoParams{Cols: 5, Rows: 5, CellHOffset: 10, CellVOffset: 5}
	flat := gfx.NewIsoLayout(p)
	p.Elevation = func(int) float32 { return 0 }
	zero := gfx.NewIsoLayout(p)
	p.Elevation = func(idx int) float32 { return float32(idx) }
	raised := gfx.NewIsoLayout(p)

	for idx := 0; idx < 25; idx++ {
		if flat.Y(idx) != zero.Y(idx) {
			t.Fatalf("Y(%d): nil elevation %v != zero elevation %v", idx, flat.Y(idx), zero.Y(idx))
		}
		if raised.Y(idx) != flat.Y(idx)+float32(idx) {
			t.Fatalf("Y(%d) = %v, want %v", idx, raised.Y(idx), flat.Y(idx)+float32(idx))
		}
		if raised.X(idx) != flat.X(idx) {
			t.Fatalf("X(%d) changed by elevation", idx)
		}
	}
}

func TestIsoLayoutAtOffsetMatchesFullMap(t *testing.T) {
	const fullCols, fullRows = 10, 8
	full := gfx.NewIsoLayout(gfx.IsoParams{Cols: fullCols, Rows: fullRows, CellHOffset: 12, CellVOffset: 6})
	const baseCol, baseRow, subCols = 3, 2, 4
	sub := gfx.NewIsoLayoutAtOffset(gfx.IsoParams{Cols: subCols, Rows: 3, CellHOffset: 12, CellVOffset: 6}, baseCol, baseRow, fullRows)

	for idx := 0; idx < subCols*3; idx++ {
		r, c := idx/subCols, idx%subCols
		fullIdx := (r+baseRow)*fullCols + c + baseCol
		if sub.X(idx) != full.X(fullIdx) || sub.Y(idx) != full.Y(fullIdx) {
			t.Fatalf("sub %d at (%v, %v), full %d at (%v, %v)",
				idx, sub.X(idx), sub.Y(idx), fullIdx, full.X(fullIdx), full.Y(fullIdx))
		}
	}
}

func TestCustomLayout(t *testing.T) {
	l := gfx.NewCustomLayout(2, 3, 0, 0,
		func(idx int) float32 { return float32(idx * 7) },
		func(idx int) float32 { return -float32(idx) },
		nil)
	if l.X(3) != 21 || l.Y(3) != -3 || l.ZAt(3) != 0 {
		t.Fatalf("custom cell 3 at (%v, %v, %v)", l.X(3), l.Y(3), l.ZAt(3))
	}
}

func TestColumnMajorMapping(t *testing.T) {
	m := gfx.PositionMapping{Kind: gfx.MappingGridColumnMajor, Rows: 3, StepX: 2, StepY: 5, OriginX: 1, OriginY: 1}
	// idx 4: column 1, row 1
	if m.X(4) != 3 || m.Y(4) != 6 {
		t.Fatalf("column major 4 at (%v, %v), want (3, 6)", m.X(4), m.Y(4))
	}
}
