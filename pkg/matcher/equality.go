package matcher

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

// dumper produces a deterministic structural dump used as the
// serialized form of a value. Pointer addresses and capacities are
// left out so that two separately allocated values with the same
// contents dump identically.
var dumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// equalMatcher backs both "equal" and "be".
type equalMatcher struct {
	op string
}

func (m equalMatcher) Operation() string { return m.op }

func (m equalMatcher) Match(actual, expected any) (bool, error) {
	return SoftEqual(actual, expected), nil
}

// SoftEqual reports whether a and b denote the same value. Any one
// of three independent checks is sufficient: equal textual form,
// equal serialized form, or native equality.
func SoftEqual(a, b any) bool {
	return textEqual(a, b) || serialEqual(a, b) || nativeEqual(a, b)
}

func textEqual(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func serialEqual(a, b any) bool {
	return dumper.Sdump(a) == dumper.Sdump(b)
}

func nativeEqual(a, b any) bool {
	return assert.ObjectsAreEqual(a, b)
}
