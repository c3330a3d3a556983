package spring

import "reflect"

// Kind is the animation shape of a property value.
type Kind int

const (
	// KindScalar is a single number.
	KindScalar Kind = iota
	// KindSequence is a fixed-length list of numbers.
	KindSequence
	// KindStatic is anything else. Static values are passed through as-is.
	KindStatic
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindStatic:
		return "static"
	default:
		return "unknown"
	}
}

// Classify returns the kind of v and, for animatable kinds, its components.
// Any Go integer or float is a scalar. Slices and arrays whose elements are
// integers or floats are sequences.
func Classify(v any) (Kind, []float64) {
	switch n := v.(type) {
	case float64:
		return KindScalar, []float64{n}
	case int:
		return KindScalar, []float64{float64(n)}
	case []float64:
		return KindSequence, append([]float64(nil), n...)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return KindStatic, nil
	}
	if f, ok := number(rv); ok {
		return KindScalar, []float64{f}
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return KindStatic, nil
	}
	if !isNumberKind(rv.Type().Elem().Kind()) {
		return KindStatic, nil
	}
	components := make([]float64, rv.Len())
	for i := range components {
		components[i], _ = number(rv.Index(i))
	}
	return KindSequence, components
}

func number(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
