package resize

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

func (t RatioType) String() string {
	switch t {
	case RatioExact:
		return "exact"
	case RatioRange:
		return "range"
	default:
		return "none"
	}
}

func ParseRatioType(s string) (RatioType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RatioNone, nil
	case "exact":
		return RatioExact, nil
	case "range":
		return RatioRange, nil
	}
	return RatioNone, fmt.Errorf("unknown ratio type %q", s)
}

func (t RatioType) MarshalYAML() (any, error) {
	return t.String(), nil
}

func (t *RatioType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ratio must be a scalar", node.Line)
	}
	parsed, err := ParseRatioType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = parsed
	return nil
}
