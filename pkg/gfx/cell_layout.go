package gfx

// CellLayout places cells in world units. The NDC conversion happens later,
// with the window's world-units-per-screen scale.
type CellLayout struct {
	Mapping PositionMapping
	// Z is only read when the surface stores 3D positions; nil means depth 0.
	Z IndexFunc

	CellWidth  float32
	CellHeight float32
	OffsetX    float32
	OffsetY    float32
}

func (l *CellLayout) X(idx int) float32 { return l.Mapping.X(idx) }
func (l *CellLayout) Y(idx int) float32 { return l.Mapping.Y(idx) }

func (l *CellLayout) ZAt(idx int) float32 {
	if l.Z == nil {
		return 0
	}
	return l.Z(idx)
}

type GridParams struct {
	Cols, Rows            int
	CellWidth, CellHeight float32
	OffsetX, OffsetY      float32
	Z                     IndexFunc
}

// NewGridLayout lays cells out row-major. A zero cell size defaults to one
// world unit.
func NewGridLayout(p GridParams) *CellLayout {
	if p.CellWidth == 0 {
		p.CellWidth = 1
	}
	if p.CellHeight == 0 {
		p.CellHeight = 1
	}
	return &CellLayout{
		Mapping: PositionMapping{
			Kind:  MappingGrid,
			Cols:  p.Cols,
			Rows:  p.Rows,
			StepX: p.CellWidth,
			StepY: p.CellHeight,
		},
		Z:          p.Z,
		CellWidth:  p.CellWidth,
		CellHeight: p.CellHeight,
		OffsetX:    p.OffsetX,
		OffsetY:    p.OffsetY,
	}
}

type IsoParams struct {
	Cols, Rows            int
	CellWidth, CellHeight float32
	OffsetX, OffsetY      float32
	// distance between neighbouring cells along each screen axis
	CellHOffset, CellVOffset float32

	Z         IndexFunc
	Elevation IndexFunc
}

func NewIsoLayout(p IsoParams) *CellLayout {
	return &CellLayout{
		Mapping: PositionMapping{
			Kind:      MappingIsometric,
			Cols:      p.Cols,
			Rows:      p.Rows,
			StepX:     p.CellHOffset,
			StepY:     p.CellVOffset,
			Elevation: p.Elevation,
		},
		Z:          p.Z,
		CellWidth:  p.CellWidth,
		CellHeight: p.CellHeight,
		OffsetX:    p.OffsetX,
		OffsetY:    p.OffsetY,
	}
}

// NewIsoLayoutAtOffset maps a Cols-wide sub-region whose first cell sits at
// (baseCol, baseRow) of a larger map with baseRows rows, so the region can be
// indexed from zero.
func NewIsoLayoutAtOffset(p IsoParams, baseCol, baseRow, baseRows int) *CellLayout {
	l := NewIsoLayout(p)
	l.Mapping.Kind = MappingIsometricOffset
	l.Mapping.BaseCol = baseCol
	l.Mapping.BaseRow = baseRow
	l.Mapping.BaseRows = baseRows
	return l
}

func NewCustomLayout(cellWidth, cellHeight, offsetX, offsetY float32, x, y, z IndexFunc) *CellLayout {
	return &CellLayout{
		Mapping:    PositionMapping{Kind: MappingCustom, CustomX: x, CustomY: y},
		Z:          z,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
	}
}
