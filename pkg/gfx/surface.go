package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceConfig describes a surface to create with Window.NewSurface.
type SurfaceConfig struct {
	Texture TextureSource
	// Empty shader sources select DefaultVS and DefaultFS.
	VertexShader   string
	FragmentShader string
	// UseDepth stores 3D positions and enables the depth test while drawing.
	UseDepth bool

	// Attributes lists the component count of each attribute after the
	// texcoord, e.g. 4, 4 for color and bgcolor. AttributeDefaults, when set,
	// takes precedence and also supplies default values.
	Attributes        []int
	AttributeDefaults [][]float32
}

// SurfaceUpdateMethod receives a copy of the surface defaults to fill in
// before the update runs.
type SurfaceUpdateMethod func(d *SurfaceDefaults)

// Surface is one drawable batch of quads sharing a texture and a shader.
type Surface struct {
	window   *Window
	vbo      *BufferSet
	texture  *Texture
	shader   *Shader
	layouts  []*CellLayout
	defaults *SurfaceDefaults
	// world units
	offset mgl32.Vec2

	UseDepthBuffer bool
	Disabled       bool

	UpdateMethod              SurfaceUpdateMethod
	UpdatePositionsOnlyMethod SurfaceUpdateMethod
	UpdateOtherDataOnlyMethod SurfaceUpdateMethod
}

func (s *Surface) backend() Backend {
	return s.window.backend
}

func (s *Surface) ndcScale() mgl32.Vec2 {
	return s.window.ndcScale
}

// worldToNDC scales world units to NDC and moves the origin to the bottom
// left corner of the viewport.
func (s *Surface) worldToNDC() mgl32.Mat3 {
	scale := s.ndcScale()
	return mgl32.Translate2D(-1, -1).Mul3(mgl32.Scale2D(scale.X(), scale.Y()))
}

// AddLayout appends a layout and returns its index.
func (s *Surface) AddLayout(layout *CellLayout) int {
	s.layouts = append(s.layouts, layout)
	return len(s.layouts) - 1
}

func (s *Surface) Layouts() []*CellLayout { return s.layouts }
func (s *Surface) Texture() *Texture      { return s.texture }
func (s *Surface) Shader() *Shader        { return s.shader }
func (s *Surface) Buffers() *BufferSet    { return s.vbo }
func (s *Surface) Window() *Window        { return s.window }

// Offset returns the offset added to every vertex, in world units.
func (s *Surface) Offset() mgl32.Vec2 {
	return s.offset
}

func (s *Surface) SetOffset(x, y float32) {
	s.offset = mgl32.Vec2{x, y}
}

func (s *Surface) ChangeOffset(dx, dy float32) {
	s.offset = s.offset.Add(mgl32.Vec2{dx, dy})
}

// SetOffsetInPixels converts a viewport pixel offset to world units. It does
// nothing once the surface is removed.
func (s *Surface) SetOffsetInPixels(xPx, yPx int) {
	if s.window == nil {
		return
	}
	s.offset = s.window.pixelsToWorld(xPx, yPx)
}

func (s *Surface) ChangeOffsetInPixels(dxPx, dyPx int) {
	if s.window == nil {
		return
	}
	s.offset = s.offset.Add(s.window.pixelsToWorld(dxPx, dyPx))
}

// ndcOffset is the offset uniform value.
func (s *Surface) ndcOffset() mgl32.Vec2 {
	scale := s.ndcScale()
	return mgl32.Vec2{s.offset.X() * scale.X(), s.offset.Y() * scale.Y()}
}

// RemoveFromWindow detaches the surface and frees its buffers. The texture
// and shader stay cached in the window resources.
func (s *Surface) RemoveFromWindow() {
	if s.window != nil {
		s.window.RemoveSurface(s)
	}
}

// SetEasyLayoutCounts makes the default update draw counts[i] cells of
// layout i, indexed from zero, for every layout in order.
func (s *Surface) SetEasyLayoutCounts(counts ...int) error {
	if len(counts) != len(s.layouts) {
		return fmt.Errorf("%w: %d counts for %d layouts", ErrLayoutCountMismatch, len(counts), len(s.layouts))
	}
	s.defaults.Positions = s.defaults.Positions[:0]
	s.defaults.Layouts = s.defaults.Layouts[:0]
	for layout, count := range counts {
		for i := 0; i < count; i++ {
			s.defaults.Positions = append(s.defaults.Positions, i)
			s.defaults.Layouts = append(s.defaults.Layouts, layout)
		}
	}
	s.defaults.FillCount = len(s.defaults.Positions)
	return nil
}

func (s *Surface) SetDefaultPosition(position int)     { s.defaults.SinglePosition = position }
func (s *Surface) SetDefaultLayout(layout int)         { s.defaults.SingleLayout = layout }
func (s *Surface) SetDefaultSprite(sprite int)         { s.defaults.SingleSprite = sprite }
func (s *Surface) SetDefaultSpriteType(spriteType int) { s.defaults.SingleSpriteType = spriteType }

func (s *Surface) SetDefaultOtherData(values ...[]float32) {
	s.defaults.SingleOtherData = values
}

// SetDefaults replaces the defaults. A nil value restores empty defaults.
func (s *Surface) SetDefaults(d *SurfaceDefaults) {
	if d == nil {
		d = NewSurfaceDefaults()
	}
	s.defaults = d
}

func (s *Surface) Defaults() *SurfaceDefaults {
	return s.defaults
}

func (s *Surface) DefaultUpdate() error {
	return s.update(nil, true, true)
}

func (s *Surface) DefaultUpdatePositions() error {
	return s.update(nil, true, false)
}

func (s *Surface) DefaultUpdateOtherData() error {
	return s.update(nil, false, true)
}

// Update runs UpdateMethod on a copy of the defaults and then a full update
// of both buffers. It does nothing without an UpdateMethod.
func (s *Surface) Update() error {
	if s.UpdateMethod == nil {
		return nil
	}
	return s.update(s.UpdateMethod, true, true)
}

func (s *Surface) UpdatePositionsOnly() error {
	if s.UpdatePositionsOnlyMethod == nil {
		return nil
	}
	return s.update(s.UpdatePositionsOnlyMethod, true, false)
}

func (s *Surface) UpdateOtherDataOnly() error {
	if s.UpdateOtherDataOnlyMethod == nil {
		return nil
	}
	return s.update(s.UpdateOtherDataOnlyMethod, false, true)
}

func (s *Surface) update(method SurfaceUpdateMethod, positions, otherData bool) error {
	d := s.defaults.Clone()
	if method != nil {
		method(d)
	}
	d.Fill(positions, otherData)
	if positions {
		if err := s.UpdatePositions(d.Positions, WithLayouts(d.Layouts)); err != nil {
			return err
		}
	}
	if otherData {
		return s.UpdateOtherData(d.Sprites, d.OtherData, WithSpriteTypes(d.SpriteTypes))
	}
	return nil
}
