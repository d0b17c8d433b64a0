// Package config loads swatch settings from defaults, config files, the
// environment and command-line flags.
package config

import (
	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Theme  ThemeConfig  `mapstructure:"theme"`
	Editor EditorConfig `mapstructure:"editor"`
	Paint  PaintConfig  `mapstructure:"paint"`
	Store  StoreConfig  `mapstructure:"store"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig selects the theme variables resolve against.
type ThemeConfig struct {
	// Preset names a built-in theme. Ignored when File is set.
	Preset string `mapstructure:"preset"`
	// File is a YAML theme document.
	File string `mapstructure:"file"`
	// Fallback is the colour used for variables the theme lacks.
	Fallback string `mapstructure:"fallback"`
	// Watch reloads File when it changes.
	Watch bool `mapstructure:"watch"`
}

// EditorConfig configures variant transitions.
type EditorConfig struct {
	DefaultVariable string `mapstructure:"default_variable"`
}

// PaintConfig configures projection and terminal previews.
type PaintConfig struct {
	AxisLength    float64 `mapstructure:"axis_length"`
	FontSize      float64 `mapstructure:"font_size"`
	PreviewWidth  int     `mapstructure:"preview_width"`
	PreviewHeight int     `mapstructure:"preview_height"`
	Background    string  `mapstructure:"background"`
}

// StoreConfig configures the style database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// FallbackColor returns the configured fallback, or transparent black when
// it does not parse.
func (c *Config) FallbackColor() core.RGBA8 {
	return parseOr(c.Theme.Fallback, core.Transparent)
}

// BackgroundColor returns the preview background, or black when it does
// not parse.
func (c *Config) BackgroundColor() core.RGBA8 {
	return parseOr(c.Paint.Background, core.Black)
}

func parseOr(text string, def core.RGBA8) core.RGBA8 {
	col, err := codec.ParseColor(text)
	if err != nil {
		return def
	}
	return col.RGBA
}
