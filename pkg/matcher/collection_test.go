package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		container any
		item      any
		found     bool
	}{
		{"slice element", []int{1, 2, 3}, 2, true},
		{"slice missing", []int{1, 2, 3}, 4, false},
		{"slice of any", []any{"a", 1}, 1, true},
		{"array element", [3]string{"a", "b", "c"}, "c", true},
		{"substring", "hello world", "lo w", true},
		{"missing substring", "hello", "xyz", false},
		{"rune in string", "hello", 'e', true},
		{"named string", label("prod-eu"), "eu", true},
		{"map key", map[string]int{"a": 1}, "a", true},
		{"map value is not a key", map[string]int{"a": 1}, 1, false},
		{"byte slice", []byte("abc"), []byte("bc"), true},
		{"single byte", []byte("abc"), byte('c'), true},
		{"int in byte slice", []byte{1, 2}, 1, true},
		{"int missing from byte slice", []byte{1, 2}, 3, false},
		{"int out of byte range", []byte{1, 2}, 257, false},
		{"negative int in byte slice", []byte{1, 2}, -1, false},
		{"empty slice", []int{}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := contains(OpContain, tt.container, tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestContains_TypeError(t *testing.T) {
	tests := []struct {
		name      string
		container any
		item      any
	}{
		{"int", 5, 1},
		{"nil", nil, 1},
		{"struct", point{}, 1},
		{"int in string", "abc", 1.5},
		{"unhashable key", map[string]int{}, []int{1}},
		{"unhashable dynamic key", map[any]bool{1: true}, struct{ X any }{[]int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contains(OpContain, tt.container, tt.item)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTypeMismatch))

			var typeErr *TypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, OpContain, typeErr.Operation)
		})
	}
}

func TestContains_TypeErrorMessage(t *testing.T) {
	_, err := containMatcher{}.Match(5, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type int cannot contain 1")
}

func TestContainedIn_SwapsOperands(t *testing.T) {
	m := containMatcher{swap: true}
	assert.Equal(t, OpContainedIn, m.Operation())

	found, err := m.Match(2, []int{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, found)

	_, err = m.Match(1, 5)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestEmptyMatcher(t *testing.T) {
	var nilSlice []int

	tests := []struct {
		name  string
		value any
		empty bool
	}{
		{"empty string", "", true},
		{"empty slice", []int{}, true},
		{"nil slice", nilSlice, true},
		{"empty map", map[string]int{}, true},
		{"empty array", [0]int{}, true},
		{"empty chan", make(chan int), true},
		{"string", "x", false},
		{"slice", []int{1}, false},
		{"map", map[int]int{1: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empty, err := emptyMatcher{}.Match(tt.value, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.empty, empty)
		})
	}
}

func TestEmptyMatcher_TypeError(t *testing.T) {
	for _, v := range []any{0, 42, 3.5, true, nil, point{}, func() {}} {
		_, err := emptyMatcher{}.Match(v, nil)
		assert.ErrorIs(t, err, ErrTypeMismatch, "value %v", v)
	}
}

func TestEmptyMatcher_IsNullary(t *testing.T) {
	assert.True(t, IsNullary(emptyMatcher{}))
	assert.False(t, IsNullary(containMatcher{}))
}
