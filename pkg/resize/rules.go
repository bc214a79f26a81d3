package resize

import "image"

// Calculator turns a requested size into the size that should actually be used.
type Calculator interface {
	CalculateResize(width, height int) (int, int)
}

type RatioType int

const (
	RatioNone RatioType = iota
	RatioExact
	RatioRange
)

// Rules is a declarative size constraint. Zero values disable the matching rule.
//
// Rules are applied in a fixed order: Constant short-circuits everything, then
// max clamp, ratio, snap and finally min clamp. Min always wins, even when it
// breaks the ratio or snap result.
type Rules struct {
	Constant bool `yaml:"constant"`

	SnapWidth  int `yaml:"snapWidth"`
	SnapHeight int `yaml:"snapHeight"`

	RatioRequirement RatioType `yaml:"ratio"`
	RatioWidth       int       `yaml:"ratioWidth"`
	RatioHeight      int       `yaml:"ratioHeight"`
	// width over height, so 16.0/9.0 approximates 16:9
	RatioMin float32 `yaml:"ratioMin"`
	RatioMax float32 `yaml:"ratioMax"`

	MinWidth  int `yaml:"minWidth"`
	MinHeight int `yaml:"minHeight"`
	MaxWidth  int `yaml:"maxWidth"`
	MaxHeight int `yaml:"maxHeight"`
}

func (r Rules) CalculateResize(width, height int) (int, int) {
	if r.Constant {
		if r.SnapWidth > 0 {
			width = r.SnapWidth
		}
		if r.SnapHeight > 0 {
			height = r.SnapHeight
		}
		return width, height
	}

	if r.MaxWidth > 0 && r.MaxWidth < width {
		width = r.MaxWidth
	}
	if r.MaxHeight > 0 && r.MaxHeight < height {
		height = r.MaxHeight
	}

	switch r.RatioRequirement {
	case RatioExact:
		width, height = r.exactRatio(width, height)
	case RatioRange:
		width, height = r.rangeRatio(width, height)
	}

	if r.SnapWidth > 1 {
		width -= width % r.SnapWidth
	}
	if r.SnapHeight > 1 {
		height -= height % r.SnapHeight
	}

	if r.MinWidth > 0 && r.MinWidth > width {
		width = r.MinWidth
	}
	if r.MinHeight > 0 && r.MinHeight > height {
		height = r.MinHeight
	}
	return width, height
}

// CalculateSize is CalculateResize for image.Point sizes.
func (r Rules) CalculateSize(size image.Point) image.Point {
	w, h := r.CalculateResize(size.X, size.Y)
	return image.Pt(w, h)
}

func (r Rules) exactRatio(width, height int) (int, int) {
	if r.RatioWidth <= 0 || r.RatioHeight <= 0 {
		return width, height
	}
	multiple := min(width/r.RatioWidth, height/r.RatioHeight)
	if multiple < 1 {
		multiple = 1
	}
	return r.RatioWidth * multiple, r.RatioHeight * multiple
}

// rangeRatio only ever shrinks one side so the result never exceeds the max clamp.
func (r Rules) rangeRatio(width, height int) (int, int) {
	if height <= 0 {
		return width, height
	}
	ratio := float32(width) / float32(height)
	switch {
	case r.RatioMin > 0 && ratio < r.RatioMin:
		// height was too large for this width
		height = int(float32(width) / r.RatioMin)
	case r.RatioMax > 0 && ratio > r.RatioMax:
		width = int(float32(height) * r.RatioMax)
	}
	return width, height
}
