package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/fsutil"
)

// fileDocument is the on-disk theme format.
//
//	name: midnight
//	extends: dark
//	variables:
//	  --accent: "#ff00aa"
type fileDocument struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Extends     string            `yaml:"extends,omitempty"`
	Variables   map[string]string `yaml:"variables"`
}

// LoadFile reads a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := fsutil.ReadFileScoped(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML theme document. When extends names a preset, the
// document's variables override the preset's. Every colour must map to
// channel values, and a document with neither variables nor a base is
// rejected.
func Parse(data []byte) (*Theme, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.ErrValidation(core.CodeInvalidConfig, "invalid theme YAML").WithCause(err)
	}
	if len(doc.Variables) == 0 && doc.Extends == "" {
		return nil, core.ErrValidation(core.CodeInvalidConfig, "theme defines no variables")
	}

	vars := make(map[string]core.RGBA8, len(doc.Variables))
	for name, text := range doc.Variables {
		if NormalizeName(name) == "" {
			return nil, core.ErrEmptyVariableName()
		}
		c, err := codec.ParseColor(text)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		vars[name] = c.RGBA
	}

	name := doc.Name
	if name == "" {
		name = "custom"
	}
	if doc.Extends == "" {
		return New(name, doc.Description, vars), nil
	}

	base, err := Preset(doc.Extends)
	if err != nil {
		return nil, err
	}
	t := base.With(name, vars)
	if doc.Description != "" {
		t.Description = doc.Description
	}
	return t, nil
}

// Marshal encodes t as a standalone theme document.
func Marshal(t *Theme) ([]byte, error) {
	doc := fileDocument{
		Name:        t.Name,
		Description: t.Description,
		Variables:   make(map[string]string, t.Len()),
	}
	for name, c := range t.vars {
		doc.Variables[name] = c.Hex()
	}
	return yaml.Marshal(doc)
}

// WriteFile saves t as a theme document at path.
func WriteFile(path string, t *Theme) error {
	data, err := Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return fsutil.AtomicWrite(path, data, 0o644)
}
