package edit

import "github.com/hugo-lorenzo-mato/swatch/internal/core"

// Session is a single-owner editing session. It keeps the value the session
// started from so edits can be discarded. A Session is not safe for
// concurrent use.
type Session struct {
	engine  *Engine
	initial core.Value
	current core.Value
}

// NewSession starts editing v.
func (e *Engine) NewSession(v core.Value) *Session {
	return &Session{engine: e, initial: v, current: v}
}

// Initial returns the value the session started from.
func (s *Session) Initial() core.Value { return s.initial }

// Current returns the value being edited.
func (s *Session) Current() core.Value { return s.current }

// Selected returns the variant of the current value.
func (s *Session) Selected() core.Variant { return s.current.Variant() }

// Dirty reports whether the current value differs from the initial one.
func (s *Session) Dirty() bool { return !s.current.Equal(s.initial) }

// Select switches the current value to another variant.
func (s *Session) Select(to core.Variant) core.Value {
	s.current = s.engine.Transition(s.current, to)
	return s.current
}

// Apply runs an edit against the current value. On error the current value
// is left untouched.
func (s *Session) Apply(edit Edit) error {
	next, err := edit(s.current)
	if err != nil {
		return err
	}
	s.current = next
	return nil
}

// Reset discards every edit.
func (s *Session) Reset() {
	s.current = s.initial
}
