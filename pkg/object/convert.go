package object

import (
	"fmt"
	"math"
	"reflect"
)

// convertArg converts a raised-signal argument into the semantic type of
// the bound callable's parameter. Numbers cross the boundary in whatever
// width the engine's codec produced, so numeric kinds convert freely —
// but only losslessly: a fractional float never becomes an integer.
func convertArg(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
			reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("nil for %s: %w", t, ErrArgumentTypeMismatch)
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := toInt64(v); ok {
			return reflect.ValueOf(n).Convert(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%v (%T) for %s: %w", v, v, t, ErrArgumentTypeMismatch)
	case reflect.Float32, reflect.Float64:
		if f, ok := toFloat64(v); ok {
			return reflect.ValueOf(f).Convert(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%v (%T) for %s: %w", v, v, t, ErrArgumentTypeMismatch)
	}

	if rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%T for %s: %w", v, t, ErrArgumentTypeMismatch)
}

// toInt64 converts various numeric types to int64, rejecting values that
// would not survive the round trip.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		f := float64(n)
		if f != math.Trunc(f) {
			return 0, false
		}
		return int64(f), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// toFloat64 converts various numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
