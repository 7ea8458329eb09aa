package matcher

import (
	"bytes"
	"reflect"
	"strings"

	"github.com/stretchr/testify/assert"
)

// containMatcher backs "contain" and, with swapped operands,
// "be_contained_in".
type containMatcher struct {
	swap bool
}

func (m containMatcher) Operation() string {
	if m.swap {
		return OpContainedIn
	}
	return OpContain
}

func (m containMatcher) Match(actual, expected any) (bool, error) {
	if m.swap {
		return contains(m.Operation(), expected, actual)
	}
	return contains(m.Operation(), actual, expected)
}

// contains tests membership of item in container. Strings and byte
// slices test for a substring, slices and arrays for an element,
// maps for a key.
func contains(op string, container, item any) (bool, error) {
	if container == nil {
		return false, cannotContain(op, container, item)
	}

	if b, ok := container.([]byte); ok {
		if needle, ok := item.([]byte); ok {
			return bytes.Contains(b, needle), nil
		}
		if c, ok := byteValue(item); ok {
			return bytes.IndexByte(b, c) >= 0, nil
		}
	}

	v := reflect.ValueOf(container)
	switch v.Kind() {
	case reflect.String:
		if item == nil {
			return false, cannotContain(op, container, item)
		}
		iv := reflect.ValueOf(item)
		switch iv.Kind() {
		case reflect.String:
			return strings.Contains(v.String(), iv.String()), nil
		case reflect.Int32:
			return strings.ContainsRune(
				v.String(), rune(iv.Int()),
			), nil
		}
		return false, cannotContain(op, container, item)

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if assert.ObjectsAreEqual(v.Index(i).Interface(), item) {
				return true, nil
			}
		}
		return false, nil

	case reflect.Map:
		if item == nil {
			return false, nil
		}
		key := reflect.ValueOf(item)
		// Checks the dynamic value; an interface field may hold a slice.
		if !key.Comparable() {
			return false, NewTypeError(
				op, container, item,
				"unhashable key type %s", typeName(item),
			)
		}
		if !key.Type().AssignableTo(v.Type().Key()) {
			return false, nil
		}
		return v.MapIndex(key).IsValid(), nil
	}

	return false, cannotContain(op, container, item)
}

// byteValue converts an integer in 0-255 to a byte, so that
// []byte{1} contains the untyped constant 1.
func byteValue(v any) (byte, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		if n := rv.Int(); n >= 0 && n <= 255 {
			return byte(n), true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n <= 255 {
			return byte(n), true
		}
	}
	return 0, false
}

func cannotContain(op string, container, item any) *TypeError {
	return NewTypeError(
		op, container, item,
		"type %s cannot contain %s", typeName(container), Format(item),
	)
}

// emptyMatcher backs "be_empty".
type emptyMatcher struct{}

func (emptyMatcher) Operation() string { return OpEmpty }

func (emptyMatcher) NoExpected() {}

func (emptyMatcher) Match(actual, _ any) (bool, error) {
	n, ok := Length(actual)
	if !ok {
		return false, NewTypeError(
			OpEmpty, actual, nil,
			"type %s has no length", typeName(actual),
		)
	}
	return n == 0, nil
}

// Length returns the size of strings, slices, arrays, maps and
// channels. ok is false for every other type, including nil.
func Length(v any) (n int, ok bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}
