package gfx

// IndexFunc maps a cell or sprite index to one coordinate.
type IndexFunc func(idx int) float32

type MappingKind uint8

const (
	MappingCustom MappingKind = iota
	// X = idx*StepX, Y = 0
	MappingRow
	// row-major: X = (idx%Cols)*StepX, Y = (idx/Cols)*StepY
	MappingGrid
	// column-major: X = (idx/Rows)*StepX, Y = (idx%Rows)*StepY
	MappingGridColumnMajor
	MappingIsometric
	// isometric over a sub-region of a larger map, see BaseCol/BaseRow/BaseRows
	MappingIsometricOffset
)

// PositionMapping is a closed-form index to coordinate formula. Only the
// fields used by Kind matter. OriginX/OriginY are added to every non-custom
// result.
//
// Cols and Rows must be >= 1 where the formula divides by them.
type PositionMapping struct {
	Kind MappingKind

	Cols int
	Rows int

	StepX float32
	StepY float32

	OriginX float32
	OriginY float32

	BaseCol  int
	BaseRow  int
	BaseRows int

	// Elevation is added to isometric Y only.
	Elevation IndexFunc

	CustomX IndexFunc
	CustomY IndexFunc
}

func (m *PositionMapping) X(idx int) float32 {
	switch m.Kind {
	case MappingRow:
		return float32(idx)*m.StepX + m.OriginX
	case MappingGrid:
		return float32(idx%m.Cols)*m.StepX + m.OriginX
	case MappingGridColumnMajor:
		return float32(idx/m.Rows)*m.StepX + m.OriginX
	case MappingIsometric:
		row, col := idx/m.Cols, idx%m.Cols
		return float32(m.Rows-1-row+col)*m.StepX + m.OriginX
	case MappingIsometricOffset:
		row, col := idx/m.Cols+m.BaseRow, idx%m.Cols+m.BaseCol
		return float32(m.BaseRows-1-row+col)*m.StepX + m.OriginX
	default:
		if m.CustomX == nil {
			return 0
		}
		return m.CustomX(idx)
	}
}

func (m *PositionMapping) Y(idx int) float32 {
	switch m.Kind {
	case MappingRow:
		return m.OriginY
	case MappingGrid:
		return float32(idx/m.Cols)*m.StepY + m.OriginY
	case MappingGridColumnMajor:
		return float32(idx%m.Rows)*m.StepY + m.OriginY
	case MappingIsometric:
		row, col := idx/m.Cols, idx%m.Cols
		return float32(row+col)*m.StepY + m.OriginY + m.elevation(idx)
	case MappingIsometricOffset:
		row, col := idx/m.Cols+m.BaseRow, idx%m.Cols+m.BaseCol
		return float32(row+col)*m.StepY + m.OriginY + m.elevation(idx)
	default:
		if m.CustomY == nil {
			return 0
		}
		return m.CustomY(idx)
	}
}

func (m *PositionMapping) elevation(idx int) float32 {
	if m.Elevation == nil {
		return 0
	}
	return m.Elevation(idx)
}
