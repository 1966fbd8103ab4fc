/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMissingAnnotationError(t *testing.T) {
	err := NewMissingAnnotationError("Order", "vendor")

	expected := `field "vendor" of Order holds a structured value but has no data type annotation`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrMissingAnnotation) {
		t.Error("MissingAnnotationError should match ErrMissingAnnotation")
	}

	if !IsMissingAnnotation(err) {
		t.Error("IsMissingAnnotation should return true for MissingAnnotationError")
	}
}

func TestExpectedArrayError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "field variant",
			err:      NewExpectedArrayError("Order", "products"),
			expected: `field "products" of Order must be array`,
		},
		{
			name:     "top-level variant",
			err:      NewTopLevelExpectedArrayError("Order"),
			expected: "Order: object must be array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, ErrExpectedArray) {
				t.Error("ExpectedArrayError should match ErrExpectedArray")
			}
			if !IsExpectedArray(tt.err) {
				t.Error("IsExpectedArray should return true for ExpectedArrayError")
			}
		})
	}
}

func TestArrayNotExpectedError(t *testing.T) {
	err := NewArrayNotExpectedError("Order", "orderedBy")

	expected := `field "orderedBy" of Order received an array but does not declare one`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrArrayNotExpected) {
		t.Error("ArrayNotExpectedError should match ErrArrayNotExpected")
	}

	if !IsArrayNotExpected(err) {
		t.Error("IsArrayNotExpected should return true for ArrayNotExpectedError")
	}
}

func TestInvalidDateCastError(t *testing.T) {
	err := NewInvalidDateCastError("boolean")

	expected := "cannot cast boolean value to date"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidDateCast) {
		t.Error("InvalidDateCastError should match ErrInvalidDateCast")
	}

	if !IsInvalidDateCast(err) {
		t.Error("IsInvalidDateCast should return true for InvalidDateCastError")
	}
}

func TestMissingConverterError(t *testing.T) {
	err := NewMissingConverterError("Date", "string")

	expected := "no converter registered for string values of target type Date"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrMissingConverter) {
		t.Error("MissingConverterError should match ErrMissingConverter")
	}

	if !IsMissingConverter(err) {
		t.Error("IsMissingConverter should return true for MissingConverterError")
	}
}

func TestSkipConverterConflictError(t *testing.T) {
	err := NewSkipConverterConflictError("Order", "meta")

	expected := `field "meta" of Order declares both skip and converters`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrSkipConverterConflict) {
		t.Error("SkipConverterConflictError should match ErrSkipConverterConflict")
	}

	if !IsSkipConverterConflict(err) {
		t.Error("IsSkipConverterConflict should return true for SkipConverterConflictError")
	}
}

func TestInvalidRecordError(t *testing.T) {
	err := NewInvalidRecordError("Order", "expected an object record, got string")

	expected := "cannot deserialize Order: expected an object record, got string"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidRecord) {
		t.Error("InvalidRecordError should match ErrInvalidRecord")
	}

	if !IsInvalidRecord(err) {
		t.Error("IsInvalidRecord should return true for InvalidRecordError")
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("element 2: %w", NewExpectedArrayError("Order", "products"))

	if !IsExpectedArray(err) {
		t.Error("wrapped errors should still match their sentinel")
	}

	var ea *ExpectedArrayError
	if !errors.As(err, &ea) {
		t.Fatal("errors.As should unwrap to the typed error")
	}
	if ea.Field != "products" {
		t.Errorf("unexpected field: %q", ea.Field)
	}
}
