// Package edit implements variant transitions and field edits on colour
// values. Every operation returns a new value; inputs are never modified.
package edit

import (
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/resolve"
)

// DefaultVariable is the reference selected when switching to a variable.
const DefaultVariable = "--accent"

// Engine converts values between variants, resolving references through a
// theme when a concrete colour is needed.
type Engine struct {
	resolver        *resolve.Resolver
	theme           core.ThemeLookup
	defaultVariable string
}

// Option configures an Engine.
type Option func(*Engine)

// WithResolver sets the resolver used for variable to concrete transitions.
func WithResolver(r *resolve.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithTheme sets the theme variables resolve against.
func WithTheme(t core.ThemeLookup) Option {
	return func(e *Engine) {
		if t != nil {
			e.theme = t
		}
	}
}

// WithDefaultVariable overrides DefaultVariable. Blank names are ignored.
func WithDefaultVariable(name string) Option {
	return func(e *Engine) {
		if name = strings.TrimSpace(name); name != "" {
			e.defaultVariable = name
		}
	}
}

// NewEngine creates an edit engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		resolver:        resolve.New(),
		theme:           core.EmptyTheme,
		defaultVariable: DefaultVariable,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transition converts v to the requested variant. It is total: every
// (from, to) pair yields a valid value, and a transition to the current
// variant returns v unchanged.
func (e *Engine) Transition(v core.Value, to core.Variant) core.Value {
	from := v.Variant()
	if from == to {
		return v
	}

	switch to {
	case core.VariantVariable:
		ref, _ := core.Variable(e.defaultVariable)
		return ref
	case core.VariantSimple:
		return core.Simple(e.concreteColor(v))
	case core.VariantGradient:
		return core.Gradient(core.LinearGradient{
			Stops: []core.ColorStop{core.Stop(e.concreteColor(v))},
		})
	}
	return v
}

// concreteColor picks the colour a non-self transition carries over.
func (e *Engine) concreteColor(v core.Value) core.Color {
	switch v.Variant() {
	case core.VariantGradient:
		g, _ := v.Gradient()
		if len(g.Stops) == 0 {
			return core.NewColor(core.Black)
		}
		return g.Stops[0].Color
	case core.VariantVariable:
		name, _ := v.VariableName()
		return core.NewColor(e.resolver.Resolve(name, e.theme))
	default:
		c, _ := v.Color()
		return c
	}
}

// ColorFromText turns free text into a concrete colour for a stop or simple
// value. Variable references are resolved immediately; any other text that
// names no colour is kept as an unmapped token.
func (e *Engine) ColorFromText(text string) (core.Color, error) {
	v, err := codec.Parse(text)
	if err != nil {
		return core.Color{}, err
	}
	if name, ok := v.VariableName(); ok {
		return core.NewColor(e.resolver.Resolve(name, e.theme)), nil
	}
	c, _ := v.Color()
	return c, nil
}

// StopFromText reads "<colour> [<position>]" into a stop.
func (e *Engine) StopFromText(text string) (core.ColorStop, error) {
	colorText, pos, err := codec.SplitStop(text)
	if err != nil {
		return core.ColorStop{}, err
	}
	c, err := e.ColorFromText(colorText)
	if err != nil {
		return core.ColorStop{}, err
	}
	return core.ColorStop{Color: c, Position: pos}, nil
}

// SetStopColorText sets stop i's colour from text, resolving references.
func (e *Engine) SetStopColorText(i int, text string) Edit {
	return func(v core.Value) (core.Value, error) {
		c, err := e.ColorFromText(text)
		if err != nil {
			return core.Value{}, err
		}
		return SetStopColor(i, c)(v)
	}
}
