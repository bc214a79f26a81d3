// Package gputest provides an in-memory gfx.Backend that records every call,
// keeping buffer contents the way the GL would.
package gputest

import (
	"errors"
	"fmt"
	"image"

	"github.com/kjkrol/gokt/pkg/gfx"
)

// ErrInvalidValue mirrors GL_INVALID_VALUE for out of range sub-updates.
var ErrInvalidValue = errors.New("gputest: invalid value")

type Texture struct {
	Unit   int
	Width  int
	Height int
	Filter gfx.TextureFilter
	Pixels []uint8
}

type Shader struct {
	Stage  gfx.ShaderStage
	Source string
}

type Program struct {
	Vertex   gfx.ShaderHandle
	Fragment gfx.ShaderHandle
	Attribs  []string
}

type Backend struct {
	Buffers  map[gfx.BufferHandle][]float32
	Elements map[gfx.BufferHandle][]uint32
	Textures map[gfx.TextureHandle]Texture
	Shaders  map[gfx.ShaderHandle]Shader
	Programs map[gfx.ProgramHandle]Program

	DeletedBuffers  []gfx.BufferHandle
	DeletedTextures []gfx.TextureHandle

	// MaxUnits is returned by MaxTextureUnits.
	MaxUnits int
	// CompileError, when set, fails every compile of a matching source.
	CompileError func(stage gfx.ShaderStage, source string) error
	LinkError    error

	// Errors collects rejected calls, like glGetError would.
	Errors []error

	BufferDataCalls    int
	BufferSubDataCalls int
	ElementDataCalls   int
	CompileCalls       int
	LinkCalls          int
	UploadCalls        int
	MaxUnitQueries     int
	Clears             int
	Closed             bool

	Viewports   []image.Rectangle
	DepthTests  []bool
	UsePrograms []gfx.ProgramHandle
	Draws       []gfx.DrawCall

	next uint32
}

func NewBackend() *Backend {
	return &Backend{
		Buffers:  make(map[gfx.BufferHandle][]float32),
		Elements: make(map[gfx.BufferHandle][]uint32),
		Textures: make(map[gfx.TextureHandle]Texture),
		Shaders:  make(map[gfx.ShaderHandle]Shader),
		Programs: make(map[gfx.ProgramHandle]Program),
		MaxUnits: 16,
	}
}

var _ gfx.Backend = (*Backend)(nil)

func (b *Backend) handle() uint32 {
	b.next++
	return b.next
}

func (b *Backend) GenBuffers(n int) []gfx.BufferHandle {
	handles := make([]gfx.BufferHandle, n)
	for i := range handles {
		handles[i] = gfx.BufferHandle(b.handle())
	}
	return handles
}

func (b *Backend) DeleteBuffers(handles ...gfx.BufferHandle) {
	for _, h := range handles {
		delete(b.Buffers, h)
		delete(b.Elements, h)
		b.DeletedBuffers = append(b.DeletedBuffers, h)
	}
}

func (b *Backend) BufferData(buffer gfx.BufferHandle, data []float32) {
	b.BufferDataCalls++
	b.Buffers[buffer] = append([]float32(nil), data...)
}

func (b *Backend) BufferSubData(buffer gfx.BufferHandle, byteOffset int, data []float32) {
	b.BufferSubDataCalls++
	buf := b.Buffers[buffer]
	if byteOffset < 0 || byteOffset%4 != 0 || byteOffset/4+len(data) > len(buf) {
		b.Errors = append(b.Errors, fmt.Errorf("%w: buffer %d sub-update [%d, %d) of %d bytes",
			ErrInvalidValue, buffer, byteOffset, byteOffset+len(data)*4, len(buf)*4))
		return
	}
	copy(buf[byteOffset/4:], data)
}

func (b *Backend) ElementData(buffer gfx.BufferHandle, indices []uint32) {
	b.ElementDataCalls++
	b.Elements[buffer] = append([]uint32(nil), indices...)
}

func (b *Backend) CompileShader(stage gfx.ShaderStage, source string) (gfx.ShaderHandle, error) {
	b.CompileCalls++
	if b.CompileError != nil {
		if err := b.CompileError(stage, source); err != nil {
			return 0, err
		}
	}
	h := gfx.ShaderHandle(b.handle())
	b.Shaders[h] = Shader{Stage: stage, Source: source}
	return h, nil
}

func (b *Backend) LinkProgram(vertex, fragment gfx.ShaderHandle, attribs []string) (gfx.ProgramHandle, error) {
	b.LinkCalls++
	if b.LinkError != nil {
		return 0, b.LinkError
	}
	h := gfx.ProgramHandle(b.handle())
	b.Programs[h] = Program{Vertex: vertex, Fragment: fragment, Attribs: attribs}
	return h, nil
}

// UniformLocation hands out fixed locations per name.
func (b *Backend) UniformLocation(_ gfx.ProgramHandle, name string) int32 {
	switch name {
	case "offset":
		return 0
	case "tex":
		return 1
	case "time":
		return 2
	case "viewportSize":
		return 3
	}
	return -1
}

func (b *Backend) MaxTextureUnits() int {
	b.MaxUnitQueries++
	return b.MaxUnits
}

func (b *Backend) UploadTexture(unit int, img *image.RGBA, filter gfx.TextureFilter) gfx.TextureHandle {
	b.UploadCalls++
	h := gfx.TextureHandle(b.handle())
	b.Textures[h] = Texture{
		Unit:   unit,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Filter: filter,
		Pixels: append([]uint8(nil), img.Pix...),
	}
	return h
}

func (b *Backend) DeleteTexture(texture gfx.TextureHandle) {
	delete(b.Textures, texture)
	b.DeletedTextures = append(b.DeletedTextures, texture)
}

func (b *Backend) SetViewport(rect image.Rectangle) {
	b.Viewports = append(b.Viewports, rect)
}

func (b *Backend) Clear() {
	b.Clears++
}

func (b *Backend) SetDepthTest(enabled bool) {
	b.DepthTests = append(b.DepthTests, enabled)
}

func (b *Backend) UseProgram(program gfx.ProgramHandle) {
	b.UsePrograms = append(b.UsePrograms, program)
}

func (b *Backend) DrawSurface(call gfx.DrawCall) {
	b.Draws = append(b.Draws, call)
}

func (b *Backend) Close() {
	b.Closed = true
}
