/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hydrate

import (
	"reflect"

	"github.com/suparena/hydrate/registry"
)

// Deserializer maps one raw record (or record array) to a reconstructed
// instance (or instance sequence). It is the shape a response-mapping
// pipeline step expects.
type Deserializer func(raw any) (any, error)

// MakeDeserializer returns a Deserializer bound to one target type. With
// isArray set, the returned function expects a raw array and produces an
// ordered sequence of instances.
//
// The closure carries no state beyond the binding; it is safe to call from
// multiple goroutines once all declarations have completed.
func MakeDeserializer(r *registry.Registry, typ reflect.Type, isArray bool) Deserializer {
	if isArray {
		return func(raw any) (any, error) {
			out, err := DeserializeSlice(r, typ, raw)
			if err != nil {
				return nil, err
			}
			return out, nil
		}
	}
	return func(raw any) (any, error) {
		return Deserialize(r, typ, raw)
	}
}

// MakeTypedDeserializer is the typed form of MakeDeserializer for model
// type T.
func MakeTypedDeserializer[T any](r *registry.Registry) func(raw any) (*T, error) {
	return func(raw any) (*T, error) {
		return As[T](r, raw)
	}
}
