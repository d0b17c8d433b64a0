package styles

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/fsutil"
)

const exportVersion = 1

type exportDocument struct {
	Version int           `yaml:"version"`
	Styles  []exportStyle `yaml:"styles"`
}

type exportStyle struct {
	Name  string       `yaml:"name"`
	Text  string       `yaml:"text,omitempty"`
	Value codec.Record `yaml:"value"`
}

// ExportFile writes styles to a YAML document at path. Each entry carries the
// lossless record plus its text form for readers.
func ExportFile(path string, styles []*Style) error {
	doc := exportDocument{Version: exportVersion, Styles: make([]exportStyle, 0, len(styles))}
	for _, s := range styles {
		doc.Styles = append(doc.Styles, exportStyle{
			Name:  s.Name,
			Text:  codec.Serialize(s.Value),
			Value: codec.EncodeRecord(s.Value),
		})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding styles: %w", err)
	}
	return fsutil.AtomicWrite(path, data, 0o644)
}

// ImportFile reads a document written by ExportFile. The returned styles have
// only Name and Value set.
func ImportFile(path string) ([]*Style, error) {
	data, err := fsutil.ReadFileScoped(path)
	if err != nil {
		return nil, fmt.Errorf("reading styles file: %w", err)
	}
	var doc exportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, core.ErrValidation(core.CodeInvalidRecord, "invalid styles document").WithCause(err)
	}
	if doc.Version != exportVersion {
		return nil, core.ErrValidation(core.CodeInvalidRecord, fmt.Sprintf("unsupported styles version %d", doc.Version))
	}

	out := make([]*Style, 0, len(doc.Styles))
	for i, entry := range doc.Styles {
		if entry.Name == "" {
			return nil, core.ErrValidation(core.CodeInvalidRecord, fmt.Sprintf("style %d has no name", i))
		}
		v, err := codec.DecodeRecord(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", entry.Name, err)
		}
		out = append(out, &Style{Name: entry.Name, Value: v})
	}
	return out, nil
}
