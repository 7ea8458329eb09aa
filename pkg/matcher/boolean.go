package matcher

import "reflect"

// trueMatcher backs "be_true" (strict) and "be_truthy".
type trueMatcher struct {
	strict bool
}

func (m trueMatcher) Operation() string {
	if m.strict {
		return OpTrue
	}
	return OpTruthy
}

func (trueMatcher) NoExpected() {}

func (m trueMatcher) Match(actual, _ any) (bool, error) {
	if m.strict {
		b, ok := actual.(bool)
		return ok && b, nil
	}
	return Truthy(actual), nil
}

// falseMatcher backs "be_false" (strict) and "be_falsey".
type falseMatcher struct {
	strict bool
}

func (m falseMatcher) Operation() string {
	if m.strict {
		return OpFalse
	}
	return OpFalsey
}

func (falseMatcher) NoExpected() {}

func (m falseMatcher) Match(actual, _ any) (bool, error) {
	if m.strict {
		b, ok := actual.(bool)
		return ok && !b, nil
	}
	return !Truthy(actual), nil
}

// Truthy coerces v to a truth value. nil, false, numeric zero,
// zero-length strings and collections, and nil pointers, funcs and
// interfaces are falsey. Everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func,
		reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
