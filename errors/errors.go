/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrMissingAnnotation is returned when a structured raw value arrives
	// for a field that has no registered metadata
	ErrMissingAnnotation = errors.New("missing data type annotation")

	// ErrExpectedArray is returned when a field or call site declares an array
	// but the raw value is not one
	ErrExpectedArray = errors.New("object must be array")

	// ErrArrayNotExpected is returned when the raw value is an array but the
	// field does not declare one
	ErrArrayNotExpected = errors.New("array not expected")

	// ErrInvalidDateCast is returned when a date-typed field receives a value
	// that cannot be cast to a date
	ErrInvalidDateCast = errors.New("invalid date cast")

	// ErrMissingConverter is returned when a converter table does not cover
	// the runtime kind of the incoming value
	ErrMissingConverter = errors.New("missing required converter")

	// ErrSkipConverterConflict is returned when a field declares both skip
	// and a converter table
	ErrSkipConverterConflict = errors.New("skip and converters are mutually exclusive")

	// ErrInvalidRecord is returned when top-level input is neither a record
	// nor, when declared, an array of records
	ErrInvalidRecord = errors.New("invalid input record")
)

// MissingAnnotationError reports a structured raw value on an unannotated field
type MissingAnnotationError struct {
	Type  string
	Field string
}

func (e *MissingAnnotationError) Error() string {
	return fmt.Sprintf("field %q of %s holds a structured value but has no data type annotation", e.Field, e.Type)
}

func (e *MissingAnnotationError) Is(target error) bool {
	return target == ErrMissingAnnotation
}

// ExpectedArrayError reports a non-array raw value where an array was declared.
// Field is empty when the mismatch occurred at the top-level call site.
type ExpectedArrayError struct {
	Type  string
	Field string
}

func (e *ExpectedArrayError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: object must be array", e.Type)
	}
	return fmt.Sprintf("field %q of %s must be array", e.Field, e.Type)
}

func (e *ExpectedArrayError) Is(target error) bool {
	return target == ErrExpectedArray
}

// ArrayNotExpectedError reports an array raw value on a non-array field
type ArrayNotExpectedError struct {
	Type  string
	Field string
}

func (e *ArrayNotExpectedError) Error() string {
	return fmt.Sprintf("field %q of %s received an array but does not declare one", e.Field, e.Type)
}

func (e *ArrayNotExpectedError) Is(target error) bool {
	return target == ErrArrayNotExpected
}

// InvalidDateCastError reports a raw value kind that the built-in date
// construction rule cannot handle
type InvalidDateCastError struct {
	Kind string
}

func (e *InvalidDateCastError) Error() string {
	return fmt.Sprintf("cannot cast %s value to date", e.Kind)
}

func (e *InvalidDateCastError) Is(target error) bool {
	return target == ErrInvalidDateCast
}

// MissingConverterError reports a converter table that does not cover the
// runtime kind of the incoming value
type MissingConverterError struct {
	Target string
	Kind   string
}

func (e *MissingConverterError) Error() string {
	return fmt.Sprintf("no converter registered for %s values of target type %s", e.Kind, e.Target)
}

func (e *MissingConverterError) Is(target error) bool {
	return target == ErrMissingConverter
}

// SkipConverterConflictError reports a field declaring both skip and converters
type SkipConverterConflictError struct {
	Type  string
	Field string
}

func (e *SkipConverterConflictError) Error() string {
	return fmt.Sprintf("field %q of %s declares both skip and converters", e.Field, e.Type)
}

func (e *SkipConverterConflictError) Is(target error) bool {
	return target == ErrSkipConverterConflict
}

// InvalidRecordError reports top-level input of an unusable shape
type InvalidRecordError struct {
	Type   string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("cannot deserialize %s: %s", e.Type, e.Reason)
}

func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Helper functions for creating errors

// NewMissingAnnotationError creates a new MissingAnnotationError
func NewMissingAnnotationError(typeName, field string) error {
	return &MissingAnnotationError{Type: typeName, Field: field}
}

// NewExpectedArrayError creates a new ExpectedArrayError for a field
func NewExpectedArrayError(typeName, field string) error {
	return &ExpectedArrayError{Type: typeName, Field: field}
}

// NewTopLevelExpectedArrayError creates a new ExpectedArrayError for a call site
func NewTopLevelExpectedArrayError(typeName string) error {
	return &ExpectedArrayError{Type: typeName}
}

// NewArrayNotExpectedError creates a new ArrayNotExpectedError
func NewArrayNotExpectedError(typeName, field string) error {
	return &ArrayNotExpectedError{Type: typeName, Field: field}
}

// NewInvalidDateCastError creates a new InvalidDateCastError
func NewInvalidDateCastError(kind string) error {
	return &InvalidDateCastError{Kind: kind}
}

// NewMissingConverterError creates a new MissingConverterError
func NewMissingConverterError(target, kind string) error {
	return &MissingConverterError{Target: target, Kind: kind}
}

// NewSkipConverterConflictError creates a new SkipConverterConflictError
func NewSkipConverterConflictError(typeName, field string) error {
	return &SkipConverterConflictError{Type: typeName, Field: field}
}

// NewInvalidRecordError creates a new InvalidRecordError
func NewInvalidRecordError(typeName, reason string) error {
	return &InvalidRecordError{Type: typeName, Reason: reason}
}

// IsMissingAnnotation checks if an error is a missing annotation error
func IsMissingAnnotation(err error) bool {
	return errors.Is(err, ErrMissingAnnotation)
}

// IsExpectedArray checks if an error is an expected array error
func IsExpectedArray(err error) bool {
	return errors.Is(err, ErrExpectedArray)
}

// IsArrayNotExpected checks if an error is an array not expected error
func IsArrayNotExpected(err error) bool {
	return errors.Is(err, ErrArrayNotExpected)
}

// IsInvalidDateCast checks if an error is an invalid date cast error
func IsInvalidDateCast(err error) bool {
	return errors.Is(err, ErrInvalidDateCast)
}

// IsMissingConverter checks if an error is a missing converter error
func IsMissingConverter(err error) bool {
	return errors.Is(err, ErrMissingConverter)
}

// IsSkipConverterConflict checks if an error is a skip/converter conflict error
func IsSkipConverterConflict(err error) bool {
	return errors.Is(err, ErrSkipConverterConflict)
}

// IsInvalidRecord checks if an error is an invalid record error
func IsInvalidRecord(err error) bool {
	return errors.Is(err, ErrInvalidRecord)
}
