package matcher

import (
	"math"
	"math/big"
	"reflect"
	"strings"
	"time"
)

// greaterMatcher backs "be_greater_than" and, with orEqual,
// "be_greater_than_or_equal_to".
type greaterMatcher struct {
	orEqual bool
}

func (m greaterMatcher) Operation() string {
	if m.orEqual {
		return OpGreaterThanOrEqualTo
	}
	return OpGreaterThan
}

func (m greaterMatcher) Match(actual, expected any) (bool, error) {
	c, ordered, err := Compare(m.Operation(), actual, expected)
	if err != nil || !ordered {
		return false, err
	}
	return c > 0 || (m.orEqual && c == 0), nil
}

// lesserMatcher backs "be_lesser_than" and, with orEqual,
// "be_lesser_than_or_equal_to".
type lesserMatcher struct {
	orEqual bool
}

func (m lesserMatcher) Operation() string {
	if m.orEqual {
		return OpLesserThanOrEqualTo
	}
	return OpLesserThan
}

func (m lesserMatcher) Match(actual, expected any) (bool, error) {
	c, ordered, err := Compare(m.Operation(), actual, expected)
	if err != nil || !ordered {
		return false, err
	}
	return c < 0 || (m.orEqual && c == 0), nil
}

// Compare orders a against b. Numbers of any integer or float kind
// compare exactly against each other, strings against strings and
// time.Time against time.Time. ordered is false when a NaN is
// involved. Any other pairing is a *TypeError; nothing is coerced.
func Compare(op string, a, b any) (c int, ordered bool, err error) {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), true, nil
		}
	}

	if a != nil && b != nil {
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		if av.Kind() == reflect.String && bv.Kind() == reflect.String {
			return strings.Compare(av.String(), bv.String()), true, nil
		}

		x, okA := toBigFloat(av)
		y, okB := toBigFloat(bv)
		if okA && okB {
			if x == nil || y == nil {
				return 0, false, nil
			}
			return x.Cmp(y), true, nil
		}
	}

	return 0, false, NewTypeError(
		op, a, b,
		"cannot order %s against %s", typeName(a), typeName(b),
	)
}

// toBigFloat converts integer and float kinds to an exact big.Float.
// A NaN converts to nil with ok set.
func toBigFloat(v reflect.Value) (*big.Float, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return new(big.Float).SetInt64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Float).SetUint64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) {
			return nil, true
		}
		return new(big.Float).SetFloat64(f), true
	}
	return nil, false
}
