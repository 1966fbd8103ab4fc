/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"

	"github.com/suparena/hydrate/errors"
)

// The declaration API is called once per field at model-definition time,
// typically from an init() function or from generated code. Each call sets
// one metadata attribute for a (model type, field) pair; calls for the same
// pair merge, and redeclaring an attribute overwrites the previous value.
//
// Declaring both skip and converters on one field is the only declaration
// that can fail. The call that completes the conflicting pair returns
// errors.ErrSkipConverterConflict, whichever order the two arrive in.

// DeclareDataType attaches a target type to a field of model type T.
// Pass isArray = true when the raw value must be an ordered sequence of
// elements each conforming to target.
func DeclareDataType[T any](r *Registry, field string, target reflect.Type, isArray bool) {
	r.DeclareDataType(TypeFor[T](), field, target, isArray)
}

// DeclareSkip marks a field of model type T to be copied verbatim.
func DeclareSkip[T any](r *Registry, field string) error {
	return r.DeclareSkip(TypeFor[T](), field)
}

// DeclareConverters attaches a converter table to a field of model type T.
func DeclareConverters[T any](r *Registry, field string, table map[Kind]Converter) error {
	return r.DeclareConverters(TypeFor[T](), field, table)
}

// DeclareDataType attaches target/isArray metadata to a field of typ.
func (r *Registry) DeclareDataType(typ reflect.Type, field string, target reflect.Type, isArray bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fieldKey{typ: normalize(typ), field: field}
	md := r.fields[key]
	md.TargetType = normalize(target)
	md.IsArray = isArray
	r.fields[key] = md
}

// DeclareSkip attaches skip = true to a field of typ.
func (r *Registry) DeclareSkip(typ reflect.Type, field string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fieldKey{typ: normalize(typ), field: field}
	md := r.fields[key]
	if md.Converters != nil {
		return errors.NewSkipConverterConflictError(key.typ.Name(), field)
	}
	md.Skip = true
	r.fields[key] = md
	return nil
}

// DeclareConverters attaches a converter table to a field of typ.
func (r *Registry) DeclareConverters(typ reflect.Type, field string, table map[Kind]Converter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fieldKey{typ: normalize(typ), field: field}
	md := r.fields[key]
	if md.Skip {
		return errors.NewSkipConverterConflictError(key.typ.Name(), field)
	}
	md.Converters = table
	r.fields[key] = md
	return nil
}
