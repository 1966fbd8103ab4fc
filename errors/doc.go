/*
Package errors provides semantic error types for the hydrate library.

The package defines the deserialization failure taxonomy with specific types
that can be checked using the standard errors.Is() function or the provided
helper functions.

Common Errors:

	var (
	    ErrMissingAnnotation     = errors.New("missing data type annotation")
	    ErrExpectedArray         = errors.New("object must be array")
	    ErrArrayNotExpected      = errors.New("array not expected")
	    ErrInvalidDateCast       = errors.New("invalid date cast")
	    ErrMissingConverter      = errors.New("missing required converter")
	    ErrSkipConverterConflict = errors.New("skip and converters are mutually exclusive")
	    ErrInvalidRecord         = errors.New("invalid input record")
	)

Usage:

	order, err := hydrate.As[Order](defaultRegistry, raw)
	if err != nil {
	    if errors.IsMissingAnnotation(err) {
	        // A nested value arrived for a field that was never declared.
	        // Fix the model declaration; this is not a runtime condition.
	    }
	    return nil, err
	}

Every kind signals a programmer or metadata error to be fixed at the
model-declaration level. None of them are transient: given the same type,
input, and registry, a failing call fails the same way every time, so there
is no retry semantics anywhere in the library.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
