// Package codec converts colour values to and from their compact text form.
//
// The dialect covers simple colours (named, hex, rgb()/rgba()), theme variable
// references (--name or var(--name)) and, for persistence only, single-axis
// linear gradients. Parsing free text never fails on unknown colour names; the
// token is kept as an unmapped colour and only rejected where channels are needed.
package codec

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// VariablePrefix starts every theme variable identifier.
const VariablePrefix = "--"

// Parse converts text into a colour value.
//
// Variable tokens yield a VariableRef; everything else yields a Simple value,
// holding an unmapped token when the text names no colour.
func Parse(text string) (core.Value, error) {
	s := strings.TrimSpace(text)

	if name, ok := variableToken(s); ok {
		return core.Variable(name)
	}

	c, err := ParseColor(s)
	if err != nil {
		return core.Simple(core.UnmappedColor(s)), nil
	}
	return core.Simple(c), nil
}

// IsVariable reports whether text is a variable reference token.
func IsVariable(text string) bool {
	_, ok := variableToken(strings.TrimSpace(text))
	return ok
}

// variableToken extracts the variable name from --name or var(name).
// ok is true for anything shaped like a reference, even with an empty name,
// so that core.Variable can report EmptyVariableName.
func variableToken(s string) (string, bool) {
	if len(s) >= 4 && strings.EqualFold(s[:4], "var(") && strings.HasSuffix(s, ")") {
		inner := strings.TrimSpace(s[4 : len(s)-1])
		if inner == VariablePrefix {
			return "", true
		}
		return inner, true
	}
	if strings.HasPrefix(s, VariablePrefix) {
		if s == VariablePrefix {
			return "", true
		}
		return s, true
	}
	return "", false
}

// ParseColor strictly converts text into a concrete colour. It returns an
// InvalidColor error for anything that does not map to channel values.
func ParseColor(text string) (core.Color, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return core.Color{}, core.ErrInvalidColorText(text)
	}
	lower := strings.ToLower(s)

	if lower == "transparent" {
		return core.NewColor(core.Transparent), nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return core.NewColor(core.RGBA8{R: c.R, G: c.G, B: c.B, A: c.A}), nil
	}

	switch {
	case strings.HasPrefix(lower, "#"):
		return parseHex(lower[1:], text)
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseRGBFunc(lower, text)
	}

	return core.Color{}, core.ErrInvalidColorText(text)
}

// MustParseColor parses a colour and panics if parsing fails.
// Use this only for known-good colour literals.
func MustParseColor(text string) core.Color {
	c, err := ParseColor(text)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexString(s string) bool {
	if len(s) != 3 && len(s) != 4 && len(s) != 6 && len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// parseHex handles rgb, rgba, rrggbb and rrggbbaa digits (already lowercased).
func parseHex(s, original string) (core.Color, error) {
	if !isHexString(s) {
		return core.Color{}, core.ErrInvalidColorText(original)
	}

	var digits [4]string
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			digits[i] = s[i:i+1] + s[i:i+1]
		}
	case 6, 8:
		for i := range len(s) / 2 {
			digits[i] = s[2*i : 2*i+2]
		}
	}
	if digits[3] == "" {
		digits[3] = "ff"
	}

	var ch [4]uint8
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return core.Color{}, core.ErrInvalidColorText(original).WithCause(err)
		}
		ch[i] = uint8(v)
	}
	return core.NewColor(core.RGBA8{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}), nil
}

// parseRGBFunc handles rgb(r, g, b), rgba(r, g, b, a) and the space/slash
// separated form rgb(r g b / a). Channels accept 0-255 or percentages; alpha
// accepts 0-1 or a percentage.
func parseRGBFunc(lower, original string) (core.Color, error) {
	open := strings.IndexByte(lower, '(')
	if !strings.HasSuffix(lower, ")") {
		return core.Color{}, core.ErrInvalidColorText(original)
	}
	body := lower[open+1 : len(lower)-1]
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body)
	args := strings.Fields(body)
	if len(args) != 3 && len(args) != 4 {
		return core.Color{}, core.ErrInvalidColorText(original)
	}

	var out core.RGBA8
	chans := []*uint8{&out.R, &out.G, &out.B}
	for i, arg := range args[:3] {
		v, err := parseChannel(arg)
		if err != nil {
			return core.Color{}, core.ErrInvalidColorText(original).WithCause(err)
		}
		*chans[i] = v
	}

	out.A = 255
	if len(args) == 4 {
		a, err := parseAlpha(args[3])
		if err != nil {
			return core.Color{}, core.ErrInvalidColorText(original).WithCause(err)
		}
		out.A = a
	}
	return core.NewColor(out), nil
}

func parseChannel(s string) (uint8, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		return core.Channel8(f / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return core.Channel8(f / 255), nil
}

func parseAlpha(s string) (uint8, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		return core.Channel8(f / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return core.Channel8(f), nil
}
