/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
	"testing"

	"github.com/suparena/hydrate/errors"
)

type order struct {
	Lines []orderLine `json:"lines"`
}

type orderLine struct {
	SKU string `json:"sku"`
}

type invoice struct {
	Lines []string `json:"lines"`
}

func TestLookupUnknownField(t *testing.T) {
	r := New()

	if _, ok := r.Lookup(TypeFor[order](), "lines"); ok {
		t.Error("lookup of an undeclared field must report none")
	}
}

func TestDeclareDataType(t *testing.T) {
	r := New()
	DeclareDataType[order](r, "lines", TypeFor[orderLine](), true)

	md, ok := r.Lookup(TypeFor[order](), "lines")
	if !ok {
		t.Fatal("declared field not found")
	}
	if md.TargetType != TypeFor[orderLine]() || !md.IsArray {
		t.Errorf("unexpected metadata: %+v", md)
	}
}

func TestDeclarationsMerge(t *testing.T) {
	r := New()
	DeclareDataType[order](r, "lines", DateType, false)
	if err := DeclareConverters[order](r, "lines", map[Kind]Converter{
		KindNumber: func(raw any) (any, error) { return raw, nil },
	}); err != nil {
		t.Fatalf("DeclareConverters failed: %v", err)
	}

	md, _ := r.Lookup(TypeFor[order](), "lines")
	if md.TargetType != DateType || md.Converters == nil {
		t.Errorf("attributes declared separately must merge, got %+v", md)
	}
}

func TestRedeclarationOverwrites(t *testing.T) {
	r := New()
	DeclareDataType[order](r, "lines", TypeFor[orderLine](), true)
	DeclareDataType[order](r, "lines", DateType, false)

	md, _ := r.Lookup(TypeFor[order](), "lines")
	if md.TargetType != DateType || md.IsArray {
		t.Errorf("last write must win, got %+v", md)
	}
}

func TestSkipConverterConflict(t *testing.T) {
	table := map[Kind]Converter{
		KindString: func(raw any) (any, error) { return raw, nil },
	}

	t.Run("SkipThenConverters", func(t *testing.T) {
		r := New()
		if err := DeclareSkip[order](r, "lines"); err != nil {
			t.Fatalf("DeclareSkip failed: %v", err)
		}
		err := DeclareConverters[order](r, "lines", table)
		if !errors.IsSkipConverterConflict(err) {
			t.Errorf("expected conflict error, got %v", err)
		}
	})

	t.Run("ConvertersThenSkip", func(t *testing.T) {
		r := New()
		if err := DeclareConverters[order](r, "lines", table); err != nil {
			t.Fatalf("DeclareConverters failed: %v", err)
		}
		err := DeclareSkip[order](r, "lines")
		if !errors.IsSkipConverterConflict(err) {
			t.Errorf("expected conflict error, got %v", err)
		}
	})
}

func TestSharedFieldNamesDoNotConflict(t *testing.T) {
	r := New()
	DeclareDataType[order](r, "lines", TypeFor[orderLine](), true)
	if err := DeclareSkip[invoice](r, "lines"); err != nil {
		t.Fatalf("DeclareSkip failed: %v", err)
	}

	om, _ := r.Lookup(TypeFor[order](), "lines")
	im, _ := r.Lookup(TypeFor[invoice](), "lines")
	if om.Skip || !im.Skip {
		t.Error("metadata must key on the (type, field) pair")
	}
}

func TestPointerAndValueTypesKeyIdentically(t *testing.T) {
	r := New()
	DeclareDataType[*order](r, "lines", TypeFor[orderLine](), true)

	if _, ok := r.Lookup(reflect.TypeOf(order{}), "lines"); !ok {
		t.Error("*order declaration must be visible under order")
	}
	if _, ok := r.Lookup(reflect.TypeOf(&order{}), "lines"); !ok {
		t.Error("lookup through a pointer type must normalize")
	}
}

func TestConcurrentReads(t *testing.T) {
	r := New()
	DeclareDataType[order](r, "lines", TypeFor[orderLine](), true)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Lookup(TypeFor[order](), "lines"); !ok {
					t.Error("declared field vanished")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		raw  any
		want Kind
	}{
		{nil, KindNull},
		{"s", KindString},
		{true, KindBool},
		{1.5, KindNumber},
		{42, KindNumber},
		{int64(42), KindNumber},
		{uint8(1), KindNumber},
		{map[string]any{}, KindObject},
		{[]any{}, KindArray},
	}
	for _, tt := range tests {
		if got := KindOf(tt.raw); got != tt.want {
			t.Errorf("KindOf(%v) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}
