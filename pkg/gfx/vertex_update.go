package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdateOption tunes a vertex update.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	start       int
	layout      int
	layouts     []int
	spriteType  int
	spriteTypes []int
}

func newUpdateOptions(opts []UpdateOption) updateOptions {
	o := updateOptions{start: -1, layout: 0, spriteType: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o updateOptions) layoutAt(quad int) int {
	if quad < len(o.layouts) {
		return o.layouts[quad]
	}
	return o.layout
}

func (o updateOptions) spriteTypeAt(quad int) int {
	if quad < len(o.spriteTypes) {
		return o.spriteTypes[quad]
	}
	return o.spriteType
}

// StartAt overwrites quads from slot start on instead of replacing the whole
// buffer. The range must fit in what a previous full update allocated.
// A negative start means a full update.
func StartAt(start int) UpdateOption {
	return func(o *updateOptions) { o.start = start }
}

// WithLayout uses one layout for every quad. Defaults to layout 0.
func WithLayout(layout int) UpdateOption {
	return func(o *updateOptions) { o.layout = layout }
}

// WithLayouts selects a layout per quad. Quads past the end of layouts use
// WithLayout.
func WithLayouts(layouts []int) UpdateOption {
	return func(o *updateOptions) { o.layouts = layouts }
}

// WithSpriteType uses one sprite type for every quad. Defaults to the
// texture's DefaultSpriteType.
func WithSpriteType(spriteType int) UpdateOption {
	return func(o *updateOptions) { o.spriteType = spriteType }
}

// WithSpriteTypes selects a sprite type per quad. Quads past the end of
// spriteTypes use WithSpriteType.
func WithSpriteTypes(spriteTypes []int) UpdateOption {
	return func(o *updateOptions) { o.spriteTypes = spriteTypes }
}

// UpdatePositions computes the quads for cell indices and uploads them to the
// position buffer. A full update (the default) also rebuilds the element
// buffer when the quad count changed. With StartAt the quads overwrite slots
// [start, start+len(indices)) and the call fails with ErrCapacityExceeded,
// touching nothing, if that range is not allocated.
func (s *Surface) UpdatePositions(indices []int, opts ...UpdateOption) error {
	if s.window == nil {
		return ErrSurfaceRemoved
	}
	o := newUpdateOptions(opts)
	vbo := s.vbo
	count := len(indices)
	quadBytes := vbo.positionQuadBytes()

	fresh := o.start < 0 || vbo.PositionBytes == 0
	if !fresh {
		end := o.start + count
		if vbo.ElementCount > 0 && end*quadElements > vbo.ElementCount {
			return fmt.Errorf("%w: position quads [%d, %d) beyond %d drawn quads", ErrCapacityExceeded, o.start, end, vbo.Quads())
		}
		if end*quadBytes > vbo.PositionBytes {
			return fmt.Errorf("%w: position bytes [%d, %d) beyond %d allocated", ErrCapacityExceeded, o.start*quadBytes, end*quadBytes, vbo.PositionBytes)
		}
	}

	dims := vbo.PositionDims
	quadFloats := quadVertices * dims
	values := make([]float32, count*quadFloats)
	toNDC := s.worldToNDC()
	for i, idx := range indices {
		layout := s.layouts[o.layoutAt(i)]
		writeQuadPosition(values[i*quadFloats:(i+1)*quadFloats], dims, layout, idx, toNDC)
	}

	var elements []uint32
	if fresh && vbo.ElementCount != count*quadElements {
		elements = make([]uint32, 0, count*quadElements)
		for i := 0; i < count; i++ {
			elements = appendQuadElements(elements, i)
		}
	}

	backend := s.backend()
	size := len(values) * floatSize
	if (o.start < 0 && vbo.PositionBytes != size) || vbo.PositionBytes == 0 {
		backend.BufferData(vbo.Position, values)
		vbo.PositionBytes = size
		Logger().Debug("position buffer reallocated", "quads", count, "bytes", size)
	} else {
		offset := max(o.start, 0) * quadBytes
		backend.BufferSubData(vbo.Position, offset, values)
		Logger().Debug("position buffer updated", "quads", count, "offset", offset)
	}
	if elements != nil {
		backend.ElementData(vbo.Element, elements)
		vbo.ElementCount = len(elements)
	}
	return nil
}

// UpdatePositionSingle rewrites the quad in slot index using cell index
// index of the given layout. It never reallocates.
func (s *Surface) UpdatePositionSingle(index, layout int) error {
	if s.window == nil {
		return ErrSurfaceRemoved
	}
	vbo := s.vbo
	quadBytes := vbo.positionQuadBytes()
	if index < 0 || (index+1)*quadBytes > vbo.PositionBytes {
		return fmt.Errorf("%w: position quad %d beyond %d allocated bytes", ErrCapacityExceeded, index, vbo.PositionBytes)
	}
	values := make([]float32, quadVertices*vbo.PositionDims)
	writeQuadPosition(values, vbo.PositionDims, s.layouts[layout], index, s.worldToNDC())
	s.backend().BufferSubData(vbo.Position, index*quadBytes, values)
	return nil
}

func writeQuadPosition(dst []float32, dims int, layout *CellLayout, idx int, toNDC mgl32.Mat3) {
	cellX := layout.X(idx) + layout.OffsetX
	cellY := layout.Y(idx) + layout.OffsetY
	p0 := toNDC.Mul3x1(mgl32.Vec3{cellX, cellY, 1})
	p1 := toNDC.Mul3x1(mgl32.Vec3{cellX + layout.CellWidth, cellY + layout.CellHeight, 1})
	writeCorners(dst, dims, p0.X(), p0.Y(), p1.X(), p1.Y())
	if dims == 3 {
		z := layout.ZAt(idx)
		for c := 0; c < quadVertices; c++ {
			dst[c*dims+2] = z
		}
	}
}

// UpdateOtherData writes texcoords for sprites and the extra attributes into
// the other buffer. attribs[g] holds the values of attribute g+1 (texcoord
// excluded), Size[g+1] floats per quad; they are copied to all four corners.
// A nil or short column falls back to the attribute default. Buffer policy and
// StartAt behave as in UpdatePositions.
func (s *Surface) UpdateOtherData(sprites []int, attribs [][]float32, opts ...UpdateOption) error {
	if s.window == nil {
		return ErrSurfaceRemoved
	}
	o := newUpdateOptions(opts)
	vbo := s.vbo
	count := len(sprites)
	quadBytes := vbo.otherQuadBytes()

	if o.start >= 0 && vbo.OtherBytes > 0 && (o.start+count)*quadBytes > vbo.OtherBytes {
		end := o.start + count
		return fmt.Errorf("%w: attribute bytes [%d, %d) beyond %d allocated", ErrCapacityExceeded, o.start*quadBytes, end*quadBytes, vbo.OtherBytes)
	}

	stride := vbo.Attribs.TotalSize
	quadFloats := quadVertices * stride
	values := make([]float32, count*quadFloats)
	for i, spriteIdx := range sprites {
		sprite := s.spriteType(o.spriteTypeAt(i))
		writeQuadOther(values[i*quadFloats:(i+1)*quadFloats], vbo.Attribs, sprite, spriteIdx, attribs, i)
	}

	backend := s.backend()
	size := len(values) * floatSize
	if (o.start < 0 && vbo.OtherBytes != size) || vbo.OtherBytes == 0 {
		backend.BufferData(vbo.Other, values)
		vbo.OtherBytes = size
		Logger().Debug("attribute buffer reallocated", "quads", count, "bytes", size)
	} else {
		offset := max(o.start, 0) * quadBytes
		backend.BufferSubData(vbo.Other, offset, values)
		Logger().Debug("attribute buffer updated", "quads", count, "offset", offset)
	}
	return nil
}

// UpdateOtherSingle rewrites the attributes of quad slot index. attribs hold
// one value set per attribute.
func (s *Surface) UpdateOtherSingle(index, sprite int, attribs [][]float32, spriteType int) error {
	if s.window == nil {
		return ErrSurfaceRemoved
	}
	vbo := s.vbo
	quadBytes := vbo.otherQuadBytes()
	if index < 0 || (index+1)*quadBytes > vbo.OtherBytes {
		return fmt.Errorf("%w: attribute quad %d beyond %d allocated bytes", ErrCapacityExceeded, index, vbo.OtherBytes)
	}
	values := make([]float32, quadVertices*vbo.Attribs.TotalSize)
	writeQuadOther(values, vbo.Attribs, s.spriteType(spriteType), sprite, attribs, 0)
	s.backend().BufferSubData(vbo.Other, index*quadBytes, values)
	return nil
}

func writeQuadOther(dst []float32, layout VertexAttributes, sprite *SpriteType, spriteIdx int, attribs [][]float32, quad int) {
	stride := layout.TotalSize
	tx0 := sprite.X(spriteIdx)
	ty0 := sprite.Y(spriteIdx)
	writeCorners(dst, stride, tx0, ty0, tx0+sprite.Width, ty0+sprite.Height)

	offset := layout.Size[0]
	for g := 1; g < len(layout.Size); g++ {
		size := layout.Size[g]
		var src []float32
		if g-1 < len(attribs) && len(attribs[g-1]) >= (quad+1)*size {
			src = attribs[g-1][quad*size : (quad+1)*size]
		} else {
			src = layout.Defaults[g]
		}
		for c := 0; c < quadVertices; c++ {
			copy(dst[c*stride+offset:c*stride+offset+size], src)
		}
		offset += size
	}
}

// wholeTexture maps every sprite index to the full texture.
var wholeTexture = SpriteType{Mapping: PositionMapping{Kind: MappingRow}, Width: 1, Height: 1}

func (s *Surface) spriteType(idx int) *SpriteType {
	if len(s.texture.SpriteTypes) == 0 {
		return &wholeTexture
	}
	if idx < 0 {
		idx = s.texture.DefaultSpriteType
	}
	return s.texture.SpriteTypes[idx]
}
