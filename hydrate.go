/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hydrate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/suparena/hydrate/errors"
	"github.com/suparena/hydrate/registry"
)

// Deserialize reconstructs a single instance of typ from a raw record
// (a JSON-style map[string]any). It returns a pointer to the new instance
// as any, or nil when raw is nil.
//
// The walk is depth-first and synchronous. Either a fully built instance
// comes back or the first metadata mismatch fails the whole call; there is
// no partial result.
func Deserialize(r *registry.Registry, typ reflect.Type, raw any) (any, error) {
	typ = indirect(typ)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, errors.NewInvalidRecordError(fmt.Sprint(typ), "target is not a model type")
	}
	if raw == nil {
		return nil, nil
	}

	rec, ok := raw.(map[string]any)
	if !ok {
		if _, isSeq := raw.([]any); isSeq {
			return nil, errors.NewInvalidRecordError(typ.Name(), "input is an array; use the array deserializer")
		}
		return nil, errors.NewInvalidRecordError(typ.Name(), fmt.Sprintf("expected an object record, got %T", raw))
	}

	ptr, err := buildInstance(r, typ, rec)
	if err != nil {
		return nil, err
	}
	return ptr.Interface(), nil
}

// DeserializeSlice reconstructs an ordered sequence of typ instances from a
// raw array. Element order is preserved; each element is rebuilt
// independently with Deserialize semantics.
func DeserializeSlice(r *registry.Registry, typ reflect.Type, raw any) ([]any, error) {
	typ = indirect(typ)
	if raw == nil {
		return nil, nil
	}

	seq, ok := raw.([]any)
	if !ok {
		return nil, errors.NewTopLevelExpectedArrayError(typ.Name())
	}

	out := make([]any, 0, len(seq))
	for _, el := range seq {
		inst, err := Deserialize(r, typ, el)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// As is the typed form of Deserialize for model type T.
func As[T any](r *registry.Registry, raw any) (*T, error) {
	out, err := Deserialize(r, registry.TypeFor[T](), raw)
	if err != nil || out == nil {
		return nil, err
	}
	return out.(*T), nil
}

// SliceAs is the typed form of DeserializeSlice for model type T.
func SliceAs[T any](r *registry.Registry, raw any) ([]*T, error) {
	out, err := DeserializeSlice(r, registry.TypeFor[T](), raw)
	if err != nil || out == nil {
		return nil, err
	}
	instances := make([]*T, len(out))
	for i, el := range out {
		if el != nil {
			instances[i] = el.(*T)
		}
	}
	return instances, nil
}

// buildInstance allocates a fresh instance of typ and populates it from rec,
// consulting the registry for every key present in the record. Keys absent
// from the record leave their fields at the zero value; traversal order over
// keys is unspecified and every key is handled independently.
func buildInstance(r *registry.Registry, typ reflect.Type, rec map[string]any) (reflect.Value, error) {
	ptr := reflect.New(typ)
	elem := ptr.Elem()
	typeName := typ.Name()

	for key, rawVal := range rec {
		md, declared := r.Lookup(typ, key)
		field, bound := bindField(typ, key)

		if declared && md.Skip {
			if bound {
				if err := assignValue(elem.FieldByIndex(field.Index), rawVal); err != nil {
					return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
				}
			}
			continue
		}

		if !declared {
			switch registry.KindOf(rawVal) {
			case registry.KindObject, registry.KindArray:
				return reflect.Value{}, errors.NewMissingAnnotationError(typeName, key)
			default:
				// Primitive passthrough. A key with no matching struct field
				// has nowhere to land on a nominal type and is dropped.
				if bound {
					if err := assignValue(elem.FieldByIndex(field.Index), rawVal); err != nil {
						return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
					}
				}
			}
			continue
		}

		seq, isSeq := rawVal.([]any)

		if md.IsArray {
			if !isSeq {
				return reflect.Value{}, errors.NewExpectedArrayError(typeName, key)
			}
			// No destination field: still walk the elements so metadata
			// mismatches surface, then discard the result.
			if !bound {
				if _, err := buildSequence(r, md, anySliceType, seq); err != nil {
					return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
				}
				continue
			}
			built, err := buildSequence(r, md, field.Type, seq)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
			}
			elem.FieldByIndex(field.Index).Set(built)
			continue
		}

		if isSeq {
			return reflect.Value{}, errors.NewArrayNotExpectedError(typeName, key)
		}

		// Metadata with neither a target type nor converters carries no
		// reconstruction information, so a structured value is unbuildable.
		if md.TargetType == nil && md.Converters == nil && registry.KindOf(rawVal) == registry.KindObject {
			return reflect.Value{}, errors.NewMissingAnnotationError(typeName, key)
		}

		val, err := resolveField(r, md, rawVal)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
		}
		if bound {
			if err := assignValue(elem.FieldByIndex(field.Index), val); err != nil {
				return reflect.Value{}, fmt.Errorf("field %q of %s: %w", key, typeName, err)
			}
		}
	}

	return ptr, nil
}

// buildSequence rebuilds a declared-array field value element by element,
// preserving order. fieldType is the slice type of the destination field.
func buildSequence(r *registry.Registry, md registry.FieldMetadata, fieldType reflect.Type, seq []any) (reflect.Value, error) {
	if fieldType.Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("destination is %s, not a slice", fieldType)
	}

	out := reflect.MakeSlice(fieldType, len(seq), len(seq))
	for i, el := range seq {
		val, err := resolveField(r, md, el)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
		if err := assignValue(out.Index(i), val); err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return out, nil
}

// resolveField produces the value for one field (or one array element) from
// its metadata: converter tables and date targets go through the resolver,
// model targets recurse, anything else passes through.
func resolveField(r *registry.Registry, md registry.FieldMetadata, rawVal any) (any, error) {
	if md.Converters != nil || md.TargetType == registry.DateType || md.TargetType == nil {
		return resolve(md.TargetType, md.Converters, rawVal)
	}

	// Non-date model target: structural rebuild, nulls pass through.
	if rawVal == nil {
		return nil, nil
	}
	return Deserialize(r, md.TargetType, rawVal)
}

// assignValue sets a reflect-addressable destination from a resolved value,
// widening numerics and allocating pointers the way encoding/json would.
func assignValue(dst reflect.Value, val any) error {
	if val == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	rv := reflect.ValueOf(val)

	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
		return nil
	}

	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if err := assignValue(p.Elem(), val); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	}

	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return assignValue(dst, rv.Elem().Interface())
	}

	if isNumericKind(rv.Kind()) && isNumericKind(dst.Kind()) {
		dst.Set(rv.Convert(dst.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", val, dst.Type())
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func indirect(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ
}

// anySliceType is the destination used to validate declared-array values
// that have no struct field to land on.
var anySliceType = reflect.TypeOf([]any(nil))

// fieldIndexCache maps a model type to its raw-key → struct-field binding,
// built once per type.
var fieldIndexCache sync.Map // reflect.Type -> map[string]reflect.StructField

// bindField locates the struct field a raw record key lands on: the json tag
// name first, then the exact field name, then a case-insensitive match.
func bindField(typ reflect.Type, key string) (reflect.StructField, bool) {
	cached, ok := fieldIndexCache.Load(typ)
	if !ok {
		cached, _ = fieldIndexCache.LoadOrStore(typ, buildFieldIndex(typ))
	}
	index := cached.(map[string]reflect.StructField)

	if f, ok := index[key]; ok {
		return f, true
	}
	if f, ok := index[strings.ToLower(key)]; ok {
		return f, true
	}
	return reflect.StructField{}, false
}

func buildFieldIndex(typ reflect.Type) map[string]reflect.StructField {
	index := make(map[string]reflect.StructField, typ.NumField())

	// Lower-cased fallbacks go in first so tag and exact names win.
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		index[strings.ToLower(f.Name)] = f
	}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.PkgPath != "" {
			continue
		}
		index[f.Name] = f
		if tag, ok := f.Tag.Lookup("json"); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" && name != "-" {
				index[name] = f
			}
		}
	}
	return index
}
