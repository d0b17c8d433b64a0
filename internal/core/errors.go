package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors for handling decisions.
type ErrorCategory string

const (
	ErrCatValidation ErrorCategory = "validation" // Invalid input or construction
	ErrCatNotFound   ErrorCategory = "not_found"  // Missing style or theme
	ErrCatInternal   ErrorCategory = "internal"   // Unexpected internal error
)

// DomainError represents a structured error from the domain layer.
type DomainError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Cause    error
	Details  map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError with the same category and code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause wraps an underlying error.
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds contextual information.
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Error codes.
const (
	CodeInvalidColor         = "INVALID_COLOR"
	CodeInvalidDirectionPair = "INVALID_DIRECTION_PAIR"
	CodeEmptyVariableName    = "EMPTY_VARIABLE_NAME"
	CodeEmptyGradient        = "EMPTY_GRADIENT"
	CodeWrongVariant         = "WRONG_VARIANT"
	CodeStopIndex            = "STOP_INDEX_OUT_OF_RANGE"
	CodeInvalidUnit          = "INVALID_UNIT"
	CodeInvalidAngle         = "INVALID_ANGLE"
	CodeInvalidVariant       = "INVALID_VARIANT"
	CodeInvalidRecord        = "INVALID_RECORD"
	CodeInvalidConfig        = "INVALID_CONFIG"
	CodeStyleNotFound        = "STYLE_NOT_FOUND"
	CodeThemeNotFound        = "THEME_NOT_FOUND"
)

// Sentinels for errors.Is; only category and code are compared.
var (
	ErrInvalidColor        = &DomainError{Category: ErrCatValidation, Code: CodeInvalidColor}
	ErrInvalidDirection    = &DomainError{Category: ErrCatValidation, Code: CodeInvalidDirectionPair}
	ErrEmptyVariable       = &DomainError{Category: ErrCatValidation, Code: CodeEmptyVariableName}
	ErrEmptyGradientStops  = &DomainError{Category: ErrCatValidation, Code: CodeEmptyGradient}
	ErrWrongVariantKind    = &DomainError{Category: ErrCatValidation, Code: CodeWrongVariant}
	ErrStopIndexOutOfRange = &DomainError{Category: ErrCatValidation, Code: CodeStopIndex}
	ErrUnknownUnit         = &DomainError{Category: ErrCatValidation, Code: CodeInvalidUnit}
	ErrStyleMissing        = &DomainError{Category: ErrCatNotFound, Code: CodeStyleNotFound}
	ErrThemeMissing        = &DomainError{Category: ErrCatNotFound, Code: CodeThemeNotFound}
)

// ErrValidation creates a validation error.
func ErrValidation(code, message string) *DomainError {
	return &DomainError{
		Category: ErrCatValidation,
		Code:     code,
		Message:  message,
	}
}

// ErrNotFound creates a not found error.
func ErrNotFound(code, resource, id string) *DomainError {
	return &DomainError{
		Category: ErrCatNotFound,
		Code:     code,
		Message:  fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidColorText reports text that maps to no channel values.
func ErrInvalidColorText(text string) *DomainError {
	return ErrValidation(CodeInvalidColor, fmt.Sprintf("cannot map %q to a colour", text)).
		WithDetail("text", text)
}

// ErrInvalidDirectionPair reports a non-orthogonal or empty side pair.
func ErrInvalidDirectionPair(primary, secondary Side) *DomainError {
	return ErrValidation(CodeInvalidDirectionPair,
		fmt.Sprintf("sides %q and %q do not form a direction", primary, secondary))
}

// ErrEmptyVariableName reports a variable reference with no identifier.
func ErrEmptyVariableName() *DomainError {
	return ErrValidation(CodeEmptyVariableName, "variable name is empty")
}

// ErrEmptyGradient reports a gradient with nothing to paint.
func ErrEmptyGradient() *DomainError {
	return ErrValidation(CodeEmptyGradient, "gradient has no stops")
}

// ErrWrongVariant reports an edit that needs a different variant.
func ErrWrongVariant(want, got Variant) *DomainError {
	return ErrValidation(CodeWrongVariant, fmt.Sprintf("expected %s value, got %s", want, got))
}

// ErrStopIndex reports a stop index outside the stop list.
func ErrStopIndex(i, n int) *DomainError {
	return ErrValidation(CodeStopIndex, fmt.Sprintf("stop index %d out of range [0,%d)", i, n)).
		WithDetail("index", i).
		WithDetail("len", n)
}

// ErrInvalidUnit reports an unknown angle or length unit.
func ErrInvalidUnit(unit string) *DomainError {
	return ErrValidation(CodeInvalidUnit, fmt.Sprintf("unknown unit %q", unit))
}

// GetCategory extracts the error category.
func GetCategory(err error) ErrorCategory {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Category
	}
	return ErrCatInternal
}

// IsCategory checks if an error belongs to a category.
func IsCategory(err error, cat ErrorCategory) bool {
	return GetCategory(err) == cat
}
