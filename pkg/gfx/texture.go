package gfx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	// decoders registered for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an uploaded image bound to a texture unit, plus the sprite
// types defined on it.
type Texture struct {
	Handle   TextureHandle
	Unit     int
	WidthPx  int
	HeightPx int

	// DefaultSpriteType is used when an update does not pick a sprite type.
	DefaultSpriteType int
	SpriteTypes       []*SpriteType
}

// TextureSource identifies an image. Exactly one of Path, Data or Image is
// read; Key names the source in the registry and defaults to Path.
type TextureSource struct {
	Key   string
	Path  string
	Data  []byte
	Image image.Image

	// Replaces is the key of a loaded texture whose unit this one takes over.
	Replaces string
	Filter   TextureFilter
}

func (s TextureSource) key() string {
	if s.Key != "" {
		return s.Key
	}
	return s.Path
}

func (s TextureSource) decode() (*image.RGBA, error) {
	img := s.Image
	if img == nil {
		data := s.Data
		if data == nil {
			var err error
			if data, err = os.ReadFile(s.Path); err != nil {
				return nil, fmt.Errorf("read texture %q: %w", s.Path, err)
			}
		}
		var err error
		if img, _, err = image.Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("decode texture %q: %w", s.key(), err)
		}
	}
	return toRGBA(img), nil
}

// toRGBA returns img as a tightly packed RGBA image anchored at (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// SolidTexture returns a w x h source filled with c, handy for untextured
// surfaces that only use vertex colors.
func SolidTexture(key string, w, h int, c color.Color) TextureSource {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return TextureSource{Key: key, Image: img}
}

type textureEntry struct {
	handle TextureHandle
	unit   int
	width  int
	height int
}

// TextureRegistry uploads every source once and hands out one texture unit
// per distinct source. Units are never recycled except through Replaces.
type TextureRegistry struct {
	backend  Backend
	entries  map[string]textureEntry
	nextUnit int
	maxUnits int
}

func NewTextureRegistry(backend Backend) *TextureRegistry {
	return &TextureRegistry{
		backend:  backend,
		entries:  make(map[string]textureEntry),
		maxUnits: -1,
	}
}

// Load returns a new Texture for src. The pixel upload happens only the first
// time a key is seen; later calls share the handle and unit but get their own
// sprite type list.
func (r *TextureRegistry) Load(src TextureSource) (*Texture, error) {
	key := src.key()
	if key == "" {
		return nil, ErrEmptyTextureKey
	}
	if e, ok := r.entries[key]; ok {
		Logger().Debug("texture cache hit", "key", key, "unit", e.unit)
		return e.texture(), nil
	}

	unit := -1
	old, replacing := r.entries[src.Replaces]
	if src.Replaces != "" && replacing {
		unit = old.unit
	} else {
		if r.maxUnits < 0 {
			r.maxUnits = r.backend.MaxTextureUnits()
		}
		if r.nextUnit >= r.maxUnits {
			return nil, fmt.Errorf("%w: %d units in use, loading %q", ErrTextureUnitsExhausted, r.nextUnit, key)
		}
	}

	img, err := src.decode()
	if err != nil {
		return nil, err
	}

	if unit < 0 {
		unit = r.nextUnit
		r.nextUnit++
	} else {
		r.backend.DeleteTexture(old.handle)
		delete(r.entries, src.Replaces)
	}
	e := textureEntry{
		handle: r.backend.UploadTexture(unit, img, src.Filter),
		unit:   unit,
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
	}
	r.entries[key] = e
	Logger().Debug("texture uploaded", "key", key, "unit", unit, "width", e.width, "height", e.height)
	return e.texture(), nil
}

// Len returns the number of distinct textures currently registered.
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

func (e textureEntry) texture() *Texture {
	return &Texture{
		Handle:   e.handle,
		Unit:     e.unit,
		WidthPx:  e.width,
		HeightPx: e.height,
	}
}
