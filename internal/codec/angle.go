package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// ParseAngle reads "45deg", "0.25turn", "100grad", "1.5rad", a bare number
// (degrees), or a direction such as "to top right". Empty text is unset.
func ParseAngle(text string) (core.Angle, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return core.Angle{}, nil
	}
	if strings.HasPrefix(s, "to ") || s == "to" {
		d, err := ParseDirection(s)
		if err != nil {
			return core.Angle{}, err
		}
		return core.DirectionAngle(d), nil
	}

	num, unit := splitUnit(s)
	m, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return core.Angle{}, core.ErrValidation(core.CodeInvalidAngle, fmt.Sprintf("invalid angle %q", text)).WithCause(err)
	}
	if unit == "" {
		return core.ConstantAngle(m, core.UnitDeg), nil
	}
	u, err := core.ParseAngleUnit(unit)
	if err != nil {
		return core.Angle{}, err
	}
	return core.ConstantAngle(m, u), nil
}

// ParseDirection reads "to <side> [<side>]".
func ParseDirection(text string) (core.Direction, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) > 0 && fields[0] == "to" {
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return core.Direction{}, core.ErrValidation(core.CodeInvalidAngle, fmt.Sprintf("invalid direction %q", text))
	}

	primary, ok := core.ParseSide(fields[0])
	if !ok {
		return core.Direction{}, core.ErrValidation(core.CodeInvalidAngle, fmt.Sprintf("unknown side %q", fields[0]))
	}
	secondary := core.SideNone
	if len(fields) == 2 {
		if secondary, ok = core.ParseSide(fields[1]); !ok {
			return core.Direction{}, core.ErrValidation(core.CodeInvalidAngle, fmt.Sprintf("unknown side %q", fields[1]))
		}
	}
	return core.NewDirection(primary, secondary)
}

// ParsePosition reads "50%", "12px", "1.5em" or "2rem". Empty text is unset.
func ParsePosition(text string) (core.StopPosition, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return core.StopPosition{}, nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return core.StopPosition{}, core.ErrInvalidUnit(text).WithCause(err)
		}
		return core.Percent(f), nil
	}

	num, unit := splitUnit(s)
	u, err := core.ParseLengthUnit(unit)
	if err != nil {
		return core.StopPosition{}, err
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return core.StopPosition{}, core.ErrInvalidUnit(text).WithCause(err)
	}
	return core.Length(f, u), nil
}

// SplitStop separates "<colour> [<position>]" into its colour text and
// position. The colour text is returned untouched so the caller can decide how
// to resolve it (it may be a variable reference).
func SplitStop(text string) (string, core.StopPosition, error) {
	s := strings.TrimSpace(text)
	i := strings.LastIndexAny(s, " \t")
	if i < 0 {
		return s, core.StopPosition{}, nil
	}
	tail := s[i+1:]
	if !looksLikePosition(tail) {
		return s, core.StopPosition{}, nil
	}
	pos, err := ParsePosition(tail)
	if err != nil {
		return "", core.StopPosition{}, err
	}
	return strings.TrimSpace(s[:i]), pos, nil
}

func looksLikePosition(s string) bool {
	if s == "" || strings.HasSuffix(s, ")") {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

// splitUnit splits a trailing alphabetic unit from a number.
func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c < 'a' || c > 'z' {
			break
		}
		i--
	}
	return s[:i], s[i:]
}
