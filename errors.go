package faktorgen

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrCycleInProductStructure is returned when a product structure refers
	// back to one of its own ancestors.
	ErrCycleInProductStructure = errors.New("faktorgen: cycle in product structure")

	// ErrUnsupportedOperation is returned when a caller asks a persistence
	// provider for a capability it does not declare.
	ErrUnsupportedOperation = errors.New("faktorgen: unsupported operation")

	// ErrUnknownProvider is returned for persistence provider ids outside the
	// supported catalog.
	ErrUnknownProvider = errors.New("faktorgen: unknown persistence provider")

	// ErrInvalidModel is returned when a model snapshot cannot be turned into
	// a navigable object graph.
	ErrInvalidModel = errors.New("faktorgen: invalid model")
)

// CycleInProductStructureError reports a self-referential product structure.
type CycleInProductStructureError struct {
	// Path holds the qualified names from the structure root up to and
	// including the element that closes the cycle.
	Path []string
}

// Error returns the error string.
func (e *CycleInProductStructureError) Error() string {
	return fmt.Sprintf("faktorgen: cycle in product structure: %s", strings.Join(e.Path, " -> "))
}

// Is reports whether the target error matches CycleInProductStructureError.
// This allows errors.Is(cycleErr, ErrCycleInProductStructure) to return true.
func (e *CycleInProductStructureError) Is(err error) bool {
	return err == ErrCycleInProductStructure
}

// NewCycleInProductStructureError returns a new error carrying a copy of path.
func NewCycleInProductStructureError(path []string) *CycleInProductStructureError {
	return &CycleInProductStructureError{Path: append([]string(nil), path...)}
}

// IsCycleInProductStructure returns true if the error is a CycleInProductStructureError.
func IsCycleInProductStructure(err error) bool {
	if err == nil {
		return false
	}
	var e *CycleInProductStructureError
	return errors.As(err, &e) || errors.Is(err, ErrCycleInProductStructure)
}

// UnsupportedCapabilityError is returned when a capability-gated method is
// invoked on a provider whose capability flag is false.
type UnsupportedCapabilityError struct {
	Provider   string // Provider id, e.g. "Generic JPA 2.1"
	Capability string // Capability name, e.g. "index"
}

// Error returns the error string.
func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("faktorgen: persistence provider %q does not support %s", e.Provider, e.Capability)
}

// Is reports whether the target error matches UnsupportedCapabilityError.
func (e *UnsupportedCapabilityError) Is(err error) bool {
	return err == ErrUnsupportedOperation
}

// NewUnsupportedCapabilityError returns a new UnsupportedCapabilityError.
func NewUnsupportedCapabilityError(provider, capability string) *UnsupportedCapabilityError {
	return &UnsupportedCapabilityError{Provider: provider, Capability: capability}
}

// IsUnsupportedCapability returns true if the error is an UnsupportedCapabilityError.
func IsUnsupportedCapability(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedCapabilityError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedOperation)
}

// ModelError wraps a failure to build or resolve part of the model.
type ModelError struct {
	Object  string // Qualified name of the object, if known
	Part    string // Part name inside the object, if applicable
	Message string
	Cause   error
}

// Error returns the error string.
func (e *ModelError) Error() string {
	var b strings.Builder
	b.WriteString("faktorgen: model error")
	if e.Object != "" {
		b.WriteString(" in ")
		b.WriteString(e.Object)
	}
	if e.Part != "" {
		b.WriteString(" part ")
		b.WriteString(e.Part)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ModelError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ModelError.
func (e *ModelError) Is(target error) bool {
	return target == ErrInvalidModel
}

// NewModelError creates a new ModelError.
func NewModelError(object, part, message string, cause error) *ModelError {
	return &ModelError{
		Object:  object,
		Part:    part,
		Message: message,
		Cause:   cause,
	}
}

// IsModelError reports whether the error is a ModelError.
func IsModelError(err error) bool {
	var e *ModelError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "faktorgen: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("faktorgen: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
