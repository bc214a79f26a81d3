package gfx

const (
	floatSize    = 4
	quadVertices = 4
	quadElements = 6
	texcoordSize = 2
)

// VertexAttributes describes the interleaved non-position attributes. The
// texcoord attribute is always first and has two components.
type VertexAttributes struct {
	Defaults  [][]float32
	Size      []int
	TotalSize int
}

// NewVertexAttributes builds the layout texcoord followed by one attribute
// per default slice. The default values fill attributes the caller leaves out
// of an update.
func NewVertexAttributes(defaults ...[]float32) VertexAttributes {
	v := VertexAttributes{
		Defaults:  make([][]float32, 0, len(defaults)+1),
		Size:      make([]int, 0, len(defaults)+1),
		TotalSize: texcoordSize,
	}
	v.Defaults = append(v.Defaults, make([]float32, texcoordSize))
	v.Size = append(v.Size, texcoordSize)
	for _, d := range defaults {
		v.Defaults = append(v.Defaults, d)
		v.Size = append(v.Size, len(d))
		v.TotalSize += len(d)
	}
	return v
}

// NewVertexAttributeCounts is NewVertexAttributes with zeroed defaults.
func NewVertexAttributeCounts(counts ...int) VertexAttributes {
	defaults := make([][]float32, len(counts))
	for i, n := range counts {
		defaults[i] = make([]float32, n)
	}
	return NewVertexAttributes(defaults...)
}

func (v VertexAttributes) StrideBytes() int {
	return v.TotalSize * floatSize
}

// BufferSet is the three GPU buffers behind a surface plus what was last
// allocated in them.
type BufferSet struct {
	Position BufferHandle
	Other    BufferHandle
	Element  BufferHandle

	PositionDims int
	Attribs      VertexAttributes

	ElementCount  int
	PositionBytes int
	OtherBytes    int
}

func newBufferSet(backend Backend, positionDims int, attribs VertexAttributes) *BufferSet {
	handles := backend.GenBuffers(3)
	return &BufferSet{
		Position:     handles[0],
		Other:        handles[1],
		Element:      handles[2],
		PositionDims: positionDims,
		Attribs:      attribs,
	}
}

func (b *BufferSet) positionQuadBytes() int {
	return quadVertices * b.PositionDims * floatSize
}

func (b *BufferSet) otherQuadBytes() int {
	return quadVertices * b.Attribs.StrideBytes()
}

// Quads returns how many quads the element buffer currently draws.
func (b *BufferSet) Quads() int {
	return b.ElementCount / quadElements
}

func (b *BufferSet) release(backend Backend) {
	backend.DeleteBuffers(b.Position, b.Other, b.Element)
	b.Position, b.Other, b.Element = 0, 0, 0
	b.ElementCount, b.PositionBytes, b.OtherBytes = 0, 0, 0
}
