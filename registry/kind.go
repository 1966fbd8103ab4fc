/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Kind is the coarse runtime classification of a raw value, used to select a
// converter. The set is closed: every raw value a JSON-style decoder can
// produce maps onto exactly one of these tags.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindNull   Kind = "null"
)

// KindOf classifies a raw value. Integer and float variants all tag as
// KindNumber so converter tables do not depend on which decoder produced
// the record.
func KindOf(raw any) Kind {
	switch raw.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindObject
	}
}
