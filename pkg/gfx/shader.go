package gfx

import "fmt"

// Attribute locations bound at link time. Surfaces with fewer attributes
// simply leave the higher locations unused.
const (
	AttribPosition = iota
	AttribTexcoord
	AttribColor
	AttribBgColor
)

var attribNames = []string{"position", "texcoord", "color", "bgcolor"}

// ShaderUniforms holds uniform locations, -1 when the program lacks one.
type ShaderUniforms struct {
	Offset       int32
	Texture      int32
	Time         int32
	ViewportSize int32
}

type Shader struct {
	Program  ProgramHandle
	Uniforms ShaderUniforms
}

type programKey struct {
	vertex   string
	fragment string
}

// ShaderCache compiles each stage source once and links each
// (vertex, fragment) pair once.
type ShaderCache struct {
	backend  Backend
	vertex   map[string]ShaderHandle
	fragment map[string]ShaderHandle
	programs map[programKey]*Shader
}

func NewShaderCache(backend Backend) *ShaderCache {
	return &ShaderCache{
		backend:  backend,
		vertex:   make(map[string]ShaderHandle),
		fragment: make(map[string]ShaderHandle),
		programs: make(map[programKey]*Shader),
	}
}

// Get returns the program for the source pair. Compile and link failures are
// returned wrapping ErrShaderCompile or ErrShaderLink with the driver log.
func (c *ShaderCache) Get(vertexSrc, fragmentSrc string) (*Shader, error) {
	key := programKey{vertexSrc, fragmentSrc}
	if s, ok := c.programs[key]; ok {
		Logger().Debug("shader cache hit", "program", s.Program)
		return s, nil
	}
	vs, err := c.compile(c.vertex, VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := c.compile(c.fragment, FragmentStage, fragmentSrc)
	if err != nil {
		return nil, err
	}
	program, err := c.backend.LinkProgram(vs, fs, attribNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderLink, err)
	}
	s := &Shader{
		Program: program,
		Uniforms: ShaderUniforms{
			Offset:       c.backend.UniformLocation(program, "offset"),
			Texture:      c.backend.UniformLocation(program, "tex"),
			Time:         c.backend.UniformLocation(program, "time"),
			ViewportSize: c.backend.UniformLocation(program, "viewportSize"),
		},
	}
	c.programs[key] = s
	Logger().Debug("shader program linked", "program", program)
	return s, nil
}

func (c *ShaderCache) compile(cache map[string]ShaderHandle, stage ShaderStage, src string) (ShaderHandle, error) {
	if h, ok := cache[src]; ok {
		return h, nil
	}
	h, err := c.backend.CompileShader(stage, src)
	if err != nil {
		return 0, fmt.Errorf("%w: %s shader: %w", ErrShaderCompile, stage, err)
	}
	cache[src] = h
	return h, nil
}

// Resources bundles the texture and shader caches shared by the surfaces of
// one window. Share a Resources between windows only when they share a GL
// context.
type Resources struct {
	Textures *TextureRegistry
	Shaders  *ShaderCache
}

func NewResources(backend Backend) *Resources {
	return &Resources{
		Textures: NewTextureRegistry(backend),
		Shaders:  NewShaderCache(backend),
	}
}
