package config

import (
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/theme"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Is matches validation domain errors with code INVALID_CONFIG.
func (e ValidationErrors) Is(target error) bool {
	t, ok := target.(*core.DomainError)
	return ok && t.Category == core.ErrCatValidation && t.Code == core.CodeInvalidConfig
}

// Validator validates configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{errors: make(ValidationErrors, 0)}
}

// Validate validates the entire configuration.
func (v *Validator) Validate(cfg *Config) error {
	v.validateLog(&cfg.Log)
	v.validateTheme(&cfg.Theme)
	v.validateEditor(&cfg.Editor)
	v.validatePaint(&cfg.Paint)
	v.validateStore(&cfg.Store)

	if len(v.errors) > 0 {
		return v.errors
	}
	return nil
}

// Errors returns the collected validation errors.
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

func (v *Validator) addError(field string, value interface{}, msg string) {
	v.errors = append(v.errors, ValidationError{Field: field, Value: value, Message: msg})
}

func (v *Validator) validateLog(cfg *LogConfig) {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Level] {
		v.addError("log.level", cfg.Level, "must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"auto": true, "text": true, "json": true}
	if !validFormats[cfg.Format] {
		v.addError("log.format", cfg.Format, "must be one of: auto, text, json")
	}
}

func (v *Validator) validateTheme(cfg *ThemeConfig) {
	if cfg.File == "" {
		if _, err := theme.Preset(cfg.Preset); err != nil {
			v.addError("theme.preset", cfg.Preset, "must be one of: "+strings.Join(theme.PresetNames(), ", "))
		}
		if cfg.Watch {
			v.addError("theme.watch", cfg.Watch, "requires theme.file")
		}
	}
	if _, err := codec.ParseColor(cfg.Fallback); err != nil {
		v.addError("theme.fallback", cfg.Fallback, "must be a colour")
	}
}

func (v *Validator) validateEditor(cfg *EditorConfig) {
	name := strings.TrimSpace(cfg.DefaultVariable)
	if !strings.HasPrefix(name, codec.VariablePrefix) || len(name) <= len(codec.VariablePrefix) {
		v.addError("editor.default_variable", cfg.DefaultVariable, "must be a variable name such as --accent")
	}
}

func (v *Validator) validatePaint(cfg *PaintConfig) {
	if cfg.AxisLength < 0 {
		v.addError("paint.axis_length", cfg.AxisLength, "must not be negative")
	}
	if cfg.FontSize <= 0 {
		v.addError("paint.font_size", cfg.FontSize, "must be positive")
	}
	if cfg.PreviewWidth <= 0 || cfg.PreviewWidth > 400 {
		v.addError("paint.preview_width", cfg.PreviewWidth, "must be between 1 and 400")
	}
	if cfg.PreviewHeight <= 0 || cfg.PreviewHeight > 200 {
		v.addError("paint.preview_height", cfg.PreviewHeight, "must be between 1 and 200")
	}
	if _, err := codec.ParseColor(cfg.Background); err != nil {
		v.addError("paint.background", cfg.Background, "must be a colour")
	}
}

func (v *Validator) validateStore(cfg *StoreConfig) {
	if strings.TrimSpace(cfg.Path) == "" {
		v.addError("store.path", cfg.Path, "path required")
	}
}
