//go:build !js

// Package renderer implements gfx.Backend on OpenGL 3.3 core.
package renderer

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gokt/pkg/gfx"
)

type backend struct {
	vao uint32
}

// NewBackend loads the GL functions for the current context. It panics when
// no GL context is current.
func NewBackend() gfx.Backend {
	if err := gl.Init(); err != nil {
		panic(fmt.Sprintf("gl.Init error: %v", err))
	}
	gfx.Logger().Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	b := &backend{}
	// core profile requires a bound VAO; one is enough since attribute
	// pointers are set per draw
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 0)
	return b
}

func (b *backend) GenBuffers(n int) []gfx.BufferHandle {
	ids := make([]uint32, n)
	gl.GenBuffers(int32(n), &ids[0])
	handles := make([]gfx.BufferHandle, n)
	for i, id := range ids {
		handles[i] = gfx.BufferHandle(id)
	}
	return handles
}

func (b *backend) DeleteBuffers(handles ...gfx.BufferHandle) {
	for _, h := range handles {
		if h == 0 {
			continue
		}
		id := uint32(h)
		gl.DeleteBuffers(1, &id)
	}
}

func (b *backend) BufferData(buffer gfx.BufferHandle, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
}

func (b *backend) BufferSubData(buffer gfx.BufferHandle, byteOffset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buffer))
	gl.BufferSubData(gl.ARRAY_BUFFER, byteOffset, len(data)*4, gl.Ptr(data))
}

func (b *backend) ElementData(buffer gfx.BufferHandle, indices []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(buffer))
	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
}

func (b *backend) CompileShader(stage gfx.ShaderStage, source string) (gfx.ShaderHandle, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == gfx.FragmentStage {
		shaderType = gl.FRAGMENT_SHADER
	}
	shader, err := compileShader(shaderType, source)
	return gfx.ShaderHandle(shader), err
}

func (b *backend) LinkProgram(vertex, fragment gfx.ShaderHandle, attribs []string) (gfx.ProgramHandle, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, uint32(vertex))
	gl.AttachShader(program, uint32(fragment))
	for i, name := range attribs {
		gl.BindAttribLocation(program, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link error: %s", strings.TrimRight(log, "\x00"))
	}
	// shaders stay alive, the cache links them into other programs
	gl.DetachShader(program, uint32(vertex))
	gl.DetachShader(program, uint32(fragment))
	return gfx.ProgramHandle(program), nil
}

func (b *backend) UniformLocation(program gfx.ProgramHandle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (b *backend) MaxTextureUnits() int {
	var n int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &n)
	return int(n)
}

func (b *backend) UploadTexture(unit int, img *image.RGBA, filter gfx.TextureFilter) gfx.TextureHandle {
	glFilter := int32(gl.NEAREST)
	if filter == gfx.FilterLinear {
		glFilter = gl.LINEAR
	}
	size := img.Bounds().Size()

	var texture uint32
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return gfx.TextureHandle(texture)
}

func (b *backend) DeleteTexture(texture gfx.TextureHandle) {
	id := uint32(texture)
	gl.DeleteTextures(1, &id)
}

func (b *backend) SetViewport(rect image.Rectangle) {
	gl.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

func (b *backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *backend) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (b *backend) UseProgram(program gfx.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

func (b *backend) DrawSurface(call gfx.DrawCall) {
	u := call.Uniforms
	gl.Uniform2f(u.Offset, call.Offset.X(), call.Offset.Y())
	gl.Uniform1i(u.Texture, int32(call.TextureUnit))
	gl.Uniform1i(u.Time, call.Time)
	gl.Uniform2f(u.ViewportSize, call.ViewportSize.X(), call.ViewportSize.Y())

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(call.Element))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(call.Position))
	gl.EnableVertexAttribArray(gfx.AttribPosition)
	gl.VertexAttribPointer(gfx.AttribPosition, int32(call.PositionDims), gl.FLOAT, false, int32(call.PositionDims*4), gl.PtrOffset(0))

	total := 0
	for _, size := range call.AttribSizes {
		total += size
	}
	stride := int32(total * 4)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(call.Other))
	offset := 0
	for i, size := range call.AttribSizes {
		loc := uint32(gfx.AttribTexcoord + i)
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointer(loc, int32(size), gl.FLOAT, false, stride, gl.PtrOffset(offset*4))
		offset += size
	}

	gl.DrawElements(gl.TRIANGLES, int32(call.ElementCount), gl.UNSIGNED_INT, gl.PtrOffset(0))

	for i := 1; i < len(call.AttribSizes); i++ {
		gl.DisableVertexAttribArray(uint32(gfx.AttribTexcoord + i))
	}
}

func (b *backend) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
