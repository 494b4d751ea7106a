package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // translator construction
	PhaseProbe     Phase = "probe"     // capability probing
	PhaseTranslate Phase = "translate" // per-value translation
	PhaseParse     Phase = "parse"     // descriptor parsing
)

// Kind categorizes the error
type Kind string

const (
	KindOracleUnavailable   Kind = "oracle_unavailable"
	KindOracleFailure       Kind = "oracle_failure"
	KindMissingExport       Kind = "missing_export"
	KindInvalidDescriptor   Kind = "invalid_descriptor"
	KindDuplicateTranslator Kind = "duplicate_translator"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Signal string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Signal != "" {
		b.WriteString(" on signal ")
		b.WriteString(e.Signal)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Signal sets the signal name involved
func (b *Builder) Signal(name string) *Builder {
	b.err.Signal = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OracleUnavailable creates a construction-time oracle resource error.
// A translator that fails this way must not be registered with the host.
func OracleUnavailable(source string, cause error) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindOracleUnavailable,
		Detail: fmt.Sprintf("oracle resource %q unusable", source),
		Cause:  cause,
	}
}

// OracleFailure creates a per-call oracle execution error
func OracleFailure(signal string, cause error) *Error {
	return &Error{
		Phase:  PhaseTranslate,
		Kind:   KindOracleFailure,
		Signal: signal,
		Cause:  cause,
	}
}

// MissingExport creates an error for an oracle module that lacks a
// required export
func MissingExport(name string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindMissingExport,
		Detail: fmt.Sprintf("oracle module does not export %q", name),
	}
}

// InvalidDescriptor creates a type-description parsing error
func InvalidDescriptor(source string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidDescriptor,
		Detail: fmt.Sprintf("type description %q is invalid", source),
		Cause:  cause,
	}
}

// DuplicateTranslator creates a registry collision error
func DuplicateTranslator(name string) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindDuplicateTranslator,
		Detail: fmt.Sprintf("translator %q already registered", name),
	}
}

// TranslatorNotFound creates a registry lookup error
func TranslatorNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseProbe,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("no translator named %q", name),
	}
}
