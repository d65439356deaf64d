package config

import (
	"fmt"
	"reflect"
)

// Kind is the shape of a raw decoded configuration value.
type Kind int

const (
	// KindNull is an absent value or an explicit YAML null.
	KindNull Kind = iota
	// KindScalar is a string, number or boolean.
	KindScalar
	// KindSequence is a list.
	KindSequence
	// KindMapping is a map, keyed by strings after normalization.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies v. Any map type is a mapping, any slice or array is a
// sequence, nil (including typed nil pointers) is null, everything else is a
// scalar.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOf(rv.Elem().Interface())
	default:
		return KindScalar
	}
}

// asMapping converts a mapping value to map[string]any. Non-string keys are
// formatted with %v.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Settings:
		return map[string]any(m), true
	}
	if KindOf(v) != KindMapping {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprintf("%v", iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

// isFalsy reports whether v is null, false, zero, or an empty string,
// sequence or mapping.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch KindOf(v) {
	case KindNull:
		return true
	case KindMapping, KindSequence:
		rv := reflect.ValueOf(v)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
		return rv.Len() == 0
	default:
		return reflect.ValueOf(v).IsZero()
	}
}

func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%v", v)
}
