package gfx

// Corner picks the min or max edge on each axis of a quad.
type Corner struct {
	MaxX bool
	MaxY bool
}

// CornerOrder is the vertex order of every quad. Position and texcoord
// writers both go through writeCorners so the two can never disagree. Y is
// flipped: cell space grows downward, clip space grows upward.
var CornerOrder = [quadVertices]Corner{
	{MaxX: false, MaxY: true},
	{MaxX: false, MaxY: false},
	{MaxX: true, MaxY: false},
	{MaxX: true, MaxY: true},
}

// quadTriangles indexes CornerOrder as two triangles.
var quadTriangles = [quadElements]uint32{0, 1, 2, 0, 2, 3}

// writeCorners writes the (x, y) pair of each corner at dst[c*stride].
func writeCorners(dst []float32, stride int, x0, y0, x1, y1 float32) {
	for c, corner := range CornerOrder {
		x, y := x0, y0
		if corner.MaxX {
			x = x1
		}
		if corner.MaxY {
			y = y1
		}
		dst[c*stride] = x
		dst[c*stride+1] = y
	}
}

func appendQuadElements(dst []uint32, quad int) []uint32 {
	base := uint32(quad * quadVertices)
	for _, t := range quadTriangles {
		dst = append(dst, base+t)
	}
	return dst
}
