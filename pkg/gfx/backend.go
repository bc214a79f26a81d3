package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

type BufferHandle uint32
type ShaderHandle uint32
type ProgramHandle uint32
type TextureHandle uint32

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

// Backend is the graphics API the engine drives. All calls happen on the
// thread that owns the GL context.
type Backend interface {
	GenBuffers(n int) []BufferHandle
	DeleteBuffers(handles ...BufferHandle)
	// BufferData reallocates the vertex buffer to exactly len(data) floats.
	BufferData(buffer BufferHandle, data []float32)
	// BufferSubData overwrites len(data) floats starting at byteOffset.
	BufferSubData(buffer BufferHandle, byteOffset int, data []float32)
	ElementData(buffer BufferHandle, indices []uint32)

	CompileShader(stage ShaderStage, source string) (ShaderHandle, error)
	// LinkProgram binds attribs[i] to attribute location i before linking.
	LinkProgram(vertex, fragment ShaderHandle, attribs []string) (ProgramHandle, error)
	UniformLocation(program ProgramHandle, name string) int32

	MaxTextureUnits() int
	UploadTexture(unit int, img *image.RGBA, filter TextureFilter) TextureHandle
	DeleteTexture(texture TextureHandle)

	SetViewport(rect image.Rectangle)
	Clear()
	SetDepthTest(enabled bool)
	UseProgram(program ProgramHandle)
	DrawSurface(call DrawCall)

	Close()
}

// DrawCall carries everything needed to issue one surface's indexed draw.
type DrawCall struct {
	Uniforms     ShaderUniforms
	Offset       mgl32.Vec2
	TextureUnit  int
	Time         int32
	ViewportSize mgl32.Vec2

	Position     BufferHandle
	Other        BufferHandle
	Element      BufferHandle
	PositionDims int
	AttribSizes  []int
	ElementCount int
}
