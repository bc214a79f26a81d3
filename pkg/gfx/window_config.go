package gfx

import (
	"fmt"
	"os"

	"github.com/kjkrol/gokt/internal/platform"
	"github.com/kjkrol/gokt/pkg/resize"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	FullScreen bool   `yaml:"fullScreen,omitempty"`

	// WorldUnitsX/Y is how many world units span the viewport. Defaults to
	// the window size, making one world unit one pixel.
	WorldUnitsX float32 `yaml:"worldUnitsX,omitempty"`
	WorldUnitsY float32 `yaml:"worldUnitsY,omitempty"`

	NoShrinkToFit bool `yaml:"noShrinkToFit,omitempty"`
	NoClose       bool `yaml:"noClose,omitempty"`

	// EventWaitMs is how long Window.Update waits for the first event.
	EventWaitMs int `yaml:"eventWaitMs,omitempty"`
	// EventsMax caps events handled per update; 0 drains the queue.
	EventsMax int `yaml:"eventsMax,omitempty"`

	WindowRules   *resize.Rules `yaml:"windowRules,omitempty"`
	ViewportRules *resize.Rules `yaml:"viewportRules,omitempty"`
}

func (c WindowConfig) normalize() WindowConfig {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.WorldUnitsX <= 0 {
		c.WorldUnitsX = float32(c.Width)
	}
	if c.WorldUnitsY <= 0 {
		c.WorldUnitsY = float32(c.Height)
	}
	if c.EventWaitMs < 0 {
		c.EventWaitMs = 0
	}
	return c
}

func (c WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:      c.Width,
		Height:     c.Height,
		Title:      c.Title,
		VSync:      c.VSync,
		FullScreen: c.FullScreen,
	}
}

// PlatformConfig returns the settings a platform window should be created
// with, defaults applied.
func (c WindowConfig) PlatformConfig() platform.WindowConfig {
	return c.normalize().convert()
}

// ParseWindowConfig decodes YAML and applies defaults.
func ParseWindowConfig(data []byte) (WindowConfig, error) {
	var conf WindowConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return WindowConfig{}, fmt.Errorf("parse window config: %w", err)
	}
	return conf.normalize(), nil
}

func LoadWindowConfig(path string) (WindowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("read window config: %w", err)
	}
	return ParseWindowConfig(data)
}
