/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hydrate

import (
	"testing"

	"github.com/suparena/hydrate/datastore/testmodels"
	"github.com/suparena/hydrate/errors"
	"github.com/suparena/hydrate/registry"
)

func TestMakeDeserializer(t *testing.T) {
	r := registry.New()
	testmodels.Declare(r)

	fn := MakeDeserializer(r, registry.TypeFor[testmodels.User](), false)

	out, err := fn(map[string]any{"id": float64(4), "name": "dana"})
	if err != nil {
		t.Fatalf("deserializer failed: %v", err)
	}
	user, ok := out.(*testmodels.User)
	if !ok {
		t.Fatalf("expected *testmodels.User, got %T", out)
	}
	if user.ID != 4 || user.Name != "dana" {
		t.Errorf("unexpected instance: %+v", user)
	}
}

func TestMakeDeserializerArray(t *testing.T) {
	r := registry.New()
	testmodels.Declare(r)

	fn := MakeDeserializer(r, registry.TypeFor[testmodels.User](), true)

	t.Run("NonArrayInput", func(t *testing.T) {
		_, err := fn(map[string]any{"id": float64(1)})
		if !errors.IsExpectedArray(err) {
			t.Errorf("expected array error, got %v", err)
		}
	})

	t.Run("Sequence", func(t *testing.T) {
		out, err := fn([]any{
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
		})
		if err != nil {
			t.Fatalf("deserializer failed: %v", err)
		}
		seq, ok := out.([]any)
		if !ok {
			t.Fatalf("expected []any, got %T", out)
		}
		if len(seq) != 2 {
			t.Fatalf("expected 2 elements, got %d", len(seq))
		}
		if seq[1].(*testmodels.User).ID != 2 {
			t.Errorf("order not preserved: %+v", seq)
		}
	})
}

func TestMakeTypedDeserializer(t *testing.T) {
	r := registry.New()
	testmodels.Declare(r)

	fn := MakeTypedDeserializer[testmodels.Product](r)
	p, err := fn(map[string]any{"id": float64(11), "name": "gizmo"})
	if err != nil {
		t.Fatalf("deserializer failed: %v", err)
	}
	if p.ID != 11 || p.Name != "gizmo" {
		t.Errorf("unexpected instance: %+v", p)
	}

	// Errors surface to the caller of the returned function unchanged.
	_, err = fn(map[string]any{"unknown": map[string]any{}})
	if !errors.IsMissingAnnotation(err) {
		t.Errorf("expected missing annotation error, got %v", err)
	}
}
