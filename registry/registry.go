/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/go-openapi/strfmt"
)

// DateType is the built-in date target type. Fields declared with it are
// reconstructed through the date casting rules instead of recursion.
var DateType = reflect.TypeOf(strfmt.DateTime{})

// Converter maps one runtime-kind-tagged raw value to a value assignable to
// the declared field.
type Converter func(raw any) (any, error)

// FieldMetadata is the declared reconstruction rule for one (model type, field)
// pair.
type FieldMetadata struct {
	// TargetType references a model type or DateType. Nil means the field is
	// a primitive and needs no reconstruction.
	TargetType reflect.Type

	// IsArray declares that the raw value must be an ordered sequence whose
	// elements each conform to TargetType.
	IsArray bool

	// Skip copies the raw value onto the instance verbatim, bypassing all
	// conversion and type checking.
	Skip bool

	// Converters selects a conversion function by the runtime kind of the
	// incoming raw value. When present it must cover every kind that can
	// legitimately arrive for the field.
	Converters map[Kind]Converter
}

// fieldKey identifies one declared field. Model types may share field names
// without conflict because metadata keys on the pair.
type fieldKey struct {
	typ   reflect.Type
	field string
}

// Registry holds field metadata for all declared model types.
//
// All declarations must complete before the first deserialization call; the
// engine only ever reads. The mutex exists so that declaration itself is safe
// from init() functions running in parallel tests, not to support mutation
// during deserialization.
type Registry struct {
	mu     sync.RWMutex
	fields map[fieldKey]FieldMetadata
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		fields: make(map[fieldKey]FieldMetadata),
	}
}

// Default is the shared registry used by model declarations that do not
// construct their own. It is created once at startup and passed by reference
// into the engine like any other registry.
var Default = New()

// Lookup returns the metadata declared for a (model type, field) pair, or
// false if the field was never annotated.
func (r *Registry) Lookup(typ reflect.Type, field string) (FieldMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	md, ok := r.fields[fieldKey{typ: normalize(typ), field: field}]
	return md, ok
}

// normalize strips pointer indirection so *Order and Order key identically.
func normalize(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ
}

// TypeFor returns the registry key type for a model type T.
func TypeFor[T any]() reflect.Type {
	var zero T
	return normalize(reflect.TypeOf(zero))
}
