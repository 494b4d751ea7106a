// Package errors provides structured error types for the translation layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the signal name involved, a detail
// message and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConstruct, errors.KindInvalidDescriptor).
//		Detail("width missing for %q", name).
//		Cause(parseErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OracleUnavailable(path, readErr)
//	err := errors.MissingExport("translate_value")
//
// All errors implement the standard error interface and support errors.Is/As.
// Per-value decode problems never become errors: translators express those
// through the result's ValueKind instead.
package errors
