package gfx

import "errors"

var (
	// ErrCapacityExceeded is returned when a partial update would write past
	// the allocated buffer. The buffer is left untouched; issue a full update
	// (start index -1) to grow it.
	ErrCapacityExceeded = errors.New("gfx: update range exceeds allocated buffer")

	ErrTextureUnitsExhausted = errors.New("gfx: no free texture units")
	ErrEmptyTextureKey       = errors.New("gfx: texture source has no key or path")
	ErrShaderCompile         = errors.New("gfx: shader compilation failed")
	ErrShaderLink            = errors.New("gfx: shader program link failed")
	ErrLayoutCountMismatch   = errors.New("gfx: layout count mismatch")

	// ErrSurfaceRemoved is returned by vertex updates on a surface that was
	// removed from its window; its buffers are already released.
	ErrSurfaceRemoved = errors.New("gfx: surface removed from window")
)
