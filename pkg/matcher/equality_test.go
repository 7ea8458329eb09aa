package matcher

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type threeA struct{}

func (threeA) String() string { return "3" }

type threeB struct{ n int }

func (threeB) String() string { return "3" }

// ticking prints differently on every call and holds a NaN, so
// neither its text nor native equality ever holds. Only the
// serialized form, which ignores String, can match it.
type ticking struct {
	v float64
}

var ticks int

func (ticking) String() string {
	ticks++
	return fmt.Sprintf("tick %d", ticks)
}

type point struct {
	X, Y int
}

func TestSoftEqual(t *testing.T) {
	p1, p2 := &point{1, 2}, &point{1, 2}

	tests := []struct {
		name  string
		a, b  any
		equal bool
	}{
		{"same ints", 3, 3, true},
		{"int and string with same text", 3, "3", true},
		{"different stringers with same text", threeA{}, threeB{n: 7}, true},
		{"distinct pointers same contents", p1, p2, true},
		{"slices", []int{1, 2}, []int{1, 2}, true},
		{"maps", map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}, true},
		{"byte slices", []byte("ab"), []byte("ab"), true},
		{"nil and nil", nil, nil, true},
		{"different ints", 3, 4, false},
		{"different structs", point{1, 2}, point{2, 1}, false},
		{"different strings", "a", "b", false},
		{"serialized form only", ticking{math.NaN()}, ticking{math.NaN()}, true},
		{"serialized form differs", ticking{math.NaN()}, ticking{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, SoftEqual(tt.a, tt.b))
		})
	}
}

func TestSoftEqual_Paths(t *testing.T) {
	nan := ticking{math.NaN()}

	tests := []struct {
		name                 string
		a, b                 any
		text, serial, native bool
	}{
		{"text only", 3, "3", true, false, false},
		{"serialized only", nan, nan, false, true, false},
		{"all three", []int{1, 2}, []int{1, 2}, true, true, true},
		{"stringers with same text", threeA{}, threeB{n: 7}, true, false, false},
		{"nil and empty bytes", []byte(nil), []byte{}, true, false, false},
		{"none", 3, 4, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.text, textEqual(tt.a, tt.b), "text")
			assert.Equal(t, tt.serial, serialEqual(tt.a, tt.b), "serialized")
			assert.Equal(t, tt.native, nativeEqual(tt.a, tt.b), "native")
			assert.Equal(t, tt.text || tt.serial || tt.native, SoftEqual(tt.a, tt.b))
		})
	}
}

func TestEqualMatcher_Operation(t *testing.T) {
	assert.Equal(t, OpEqual, equalMatcher{op: OpEqual}.Operation())
	assert.Equal(t, OpBe, equalMatcher{op: OpBe}.Operation())
}

func TestEqualMatcher_Match(t *testing.T) {
	ok, err := equalMatcher{op: OpBe}.Match(threeA{}, "3")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = equalMatcher{op: OpBe}.Match(1, 2)
	assert.NoError(t, err)
	assert.False(t, ok)
}
