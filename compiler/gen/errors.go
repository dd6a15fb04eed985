package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidConfig is matched by every ConfigError.
	ErrInvalidConfig = errors.New("faktorgen: invalid generator configuration")
	// ErrGenerationFailed is matched by every GenerationError.
	ErrGenerationFailed = errors.New("faktorgen: java generation failed")
)

// ConfigError reports a generator option that cannot be used.
type ConfigError struct {
	Option string // Config field, e.g. "Provider"
	Value  any    // offending value, nil if absent
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("faktorgen: generator option %s=%v: %s", e.Option, e.Value, e.Reason)
	}
	return fmt.Sprintf("faktorgen: generator option %s: %s", e.Option, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError returns a ConfigError for option.
func NewConfigError(option string, value any, reason string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Reason: reason}
}

// Phase names the generation step that failed.
type Phase string

// Generation phases, in pipeline order.
const (
	PhaseAnnotation Phase = "annotation" // an annotation generator failed
	PhaseCleanup    Phase = "cleanup"    // removing output of a disabled feature
	PhaseWrite      Phase = "write"      // rendering or writing a file
)

// GenerationError reports a failure while producing the Java sources of one
// model element or output file.
type GenerationError struct {
	Phase   Phase
	Element string // qualified model name, element slot or output file
	Detail  string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("faktorgen: ")
	b.WriteString(string(e.Phase))
	if e.Element != "" {
		b.WriteString(" ")
		b.WriteString(e.Element)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError returns a GenerationError.
func NewGenerationError(phase Phase, element, detail string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, Element: element, Detail: detail, Cause: cause}
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsGenerationError reports whether err is or wraps a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
