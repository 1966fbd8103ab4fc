/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package hydrate

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/hydrate/errors"
	"github.com/suparena/hydrate/registry"
)

// resolve produces the converted value for one field, given the field's
// declared target type, its converter table (possibly nil), and the raw value.
//
// Null passes through unchanged, including for date targets. A converter
// table, when present, must cover the runtime kind of the incoming value;
// partial coverage is a declaration error surfaced here. Without a table,
// only the built-in date casting applies. Non-date model targets never reach
// this function; the engine recurses for those instead.
func resolve(target reflect.Type, table map[registry.Kind]registry.Converter, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	kind := registry.KindOf(raw)

	if table != nil {
		conv, ok := table[kind]
		if !ok {
			return nil, errors.NewMissingConverterError(targetName(target), string(kind))
		}
		return conv(raw)
	}

	if target == registry.DateType {
		return castDate(kind, raw)
	}

	// Neither a converter table nor a date target: primitive passthrough.
	return raw, nil
}

// castDate applies the built-in date construction rule: strings parse as
// RFC3339-style timestamps, numbers are epoch milliseconds.
func castDate(kind registry.Kind, raw any) (any, error) {
	switch kind {
	case registry.KindString:
		dt, err := strfmt.ParseDateTime(raw.(string))
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q: %w", raw, errors.NewInvalidDateCastError(string(kind)))
		}
		return dt, nil
	case registry.KindNumber:
		ms, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		return strfmt.DateTime(time.UnixMilli(ms).UTC()), nil
	default:
		return nil, errors.NewInvalidDateCastError(string(kind))
	}
}

func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", raw, raw)
	}
}

func targetName(target reflect.Type) string {
	switch {
	case target == nil:
		return "untyped"
	case target == registry.DateType:
		return "Date"
	default:
		return target.Name()
	}
}
