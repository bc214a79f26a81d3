package gfx

// SpriteType describes one arrangement of sprites on a sheet. Coordinates and
// sizes are normalized texture coordinates (0..1), not pixels.
type SpriteType struct {
	Mapping PositionMapping
	Width   float32
	Height  float32

	calculatedX []float32
	calculatedY []float32
}

// CalculateThrough caches coordinates for indices [0, n). Lookups below n
// read the cache, anything else falls back to the mapping.
func (s *SpriteType) CalculateThrough(n int) {
	if n <= 0 {
		s.calculatedX, s.calculatedY = nil, nil
		return
	}
	s.calculatedX = make([]float32, n)
	s.calculatedY = make([]float32, n)
	for i := 0; i < n; i++ {
		s.calculatedX[i] = s.Mapping.X(i)
		s.calculatedY[i] = s.Mapping.Y(i)
	}
}

// Calculated returns the exclusive bound of the cache.
func (s *SpriteType) Calculated() int {
	return len(s.calculatedX)
}

func (s *SpriteType) X(idx int) float32 {
	if idx >= 0 && idx < len(s.calculatedX) {
		return s.calculatedX[idx]
	}
	return s.Mapping.X(idx)
}

func (s *SpriteType) Y(idx int) float32 {
	if idx >= 0 && idx < len(s.calculatedY) {
		return s.calculatedY[idx]
	}
	return s.Mapping.Y(idx)
}

// DefineSingleRowSprite adds a sprite type for a sheet that is one row of
// sprites, optionally separated by paddingPx pixels.
func (t *Texture) DefineSingleRowSprite(spriteWidthPx, paddingPx int) *SpriteType {
	px := 1 / float32(t.WidthPx)
	width := float32(spriteWidthPx) * px
	s := &SpriteType{
		Mapping: PositionMapping{
			Kind:  MappingRow,
			StepX: width + float32(paddingPx)*px,
		},
		Width:  width,
		Height: 1,
	}
	t.SpriteTypes = append(t.SpriteTypes, s)
	return s
}

// DefineSpriteAcross adds a row-major sprite grid with numColumns columns,
// starting offsetXPx/offsetYPx pixels into the sheet.
func (t *Texture) DefineSpriteAcross(spriteWidthPx, spriteHeightPx, numColumns, offsetXPx, offsetYPx int) *SpriteType {
	s := t.sheetSprite(spriteWidthPx, spriteHeightPx, offsetXPx, offsetYPx)
	s.Mapping.Kind = MappingGrid
	s.Mapping.Cols = numColumns
	t.SpriteTypes = append(t.SpriteTypes, s)
	return s
}

// DefineSpriteDown is DefineSpriteAcross for column-major sheets.
func (t *Texture) DefineSpriteDown(spriteWidthPx, spriteHeightPx, numRows, offsetXPx, offsetYPx int) *SpriteType {
	s := t.sheetSprite(spriteWidthPx, spriteHeightPx, offsetXPx, offsetYPx)
	s.Mapping.Kind = MappingGridColumnMajor
	s.Mapping.Rows = numRows
	t.SpriteTypes = append(t.SpriteTypes, s)
	return s
}

// DefineSprite adds a sprite type with a caller supplied mapping.
func (t *Texture) DefineSprite(width, height float32, mapping PositionMapping) *SpriteType {
	s := &SpriteType{Mapping: mapping, Width: width, Height: height}
	t.SpriteTypes = append(t.SpriteTypes, s)
	return s
}

func (t *Texture) sheetSprite(spriteWidthPx, spriteHeightPx, offsetXPx, offsetYPx int) *SpriteType {
	pxW := 1 / float32(t.WidthPx)
	pxH := 1 / float32(t.HeightPx)
	return &SpriteType{
		Mapping: PositionMapping{
			StepX:   float32(spriteWidthPx) * pxW,
			StepY:   float32(spriteHeightPx) * pxH,
			OriginX: float32(offsetXPx) * pxW,
			OriginY: float32(offsetYPx) * pxH,
		},
		Width:  float32(spriteWidthPx) * pxW,
		Height: float32(spriteHeightPx) * pxH,
	}
}
