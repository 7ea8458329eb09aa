package matcher

import "reflect"

// typeMatcher backs "be_of_type". The actual value's dynamic type
// must be identical to the expected reflect.Type; assignability and
// embedding do not count.
type typeMatcher struct{}

func (typeMatcher) Operation() string { return OpOfType }

func (typeMatcher) Match(actual, expected any) (bool, error) {
	t, ok := expected.(reflect.Type)
	if !ok {
		return false, NewTypeError(
			OpOfType, expected, expected,
			"expected a reflect.Type, got %s", typeName(expected),
		)
	}
	return reflect.TypeOf(actual) == t, nil
}

// numericMatcher backs "be_numeric".
type numericMatcher struct{}

func (numericMatcher) Operation() string { return OpNumeric }

func (numericMatcher) NoExpected() {}

func (numericMatcher) Match(actual, _ any) (bool, error) {
	return IsNumeric(actual), nil
}

// IsNumeric reports whether v is an integer, float or complex
// value. Booleans are never numeric.
func IsNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// inheritMatcher backs "inherit". Both operands must be
// reflect.Type values.
type inheritMatcher struct{}

func (inheritMatcher) Operation() string { return OpInherit }

func (inheritMatcher) Match(actual, expected any) (bool, error) {
	child, ok := actual.(reflect.Type)
	if !ok {
		return false, NewTypeError(
			OpInherit, actual, actual,
			"%s of type %s is not a type", Format(actual), typeName(actual),
		)
	}
	parent, ok := expected.(reflect.Type)
	if !ok {
		return false, NewTypeError(
			OpInherit, expected, expected,
			"%s of type %s is not a type", Format(expected), typeName(expected),
		)
	}
	return Inherits(child, parent), nil
}

// Inherits reports whether child is parent, implements parent when
// parent is an interface, or embeds parent at any depth.
func Inherits(child, parent reflect.Type) bool {
	if child == parent {
		return true
	}
	if parent.Kind() == reflect.Interface && child.Implements(parent) {
		return true
	}
	return embeds(child, parent, make(map[reflect.Type]bool))
}

func embeds(
	t, target reflect.Type, seen map[reflect.Type]bool,
) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || seen[t] {
		return false
	}
	seen[t] = true

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		if f.Type == target ||
			(f.Type.Kind() == reflect.Pointer && f.Type.Elem() == target) {
			return true
		}
		if embeds(f.Type, target, seen) {
			return true
		}
	}
	return false
}
