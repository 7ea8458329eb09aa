package expect

import "digital.vasic.expectations/pkg/matcher"

// Equal asserts that the actual value softly equals expected: equal
// textual form, equal serialized form or native equality.
func (q Qualified) Equal(expected any) error {
	return q.call(matcher.OpEqual, expected)
}

// BeEqualTo is an alias for Equal.
func (q Qualified) BeEqualTo(expected any) error {
	return q.call("be_equal_to", expected)
}

// Be asserts soft equality, like Equal, with its own message.
func (q Qualified) Be(expected any) error {
	return q.call(matcher.OpBe, expected)
}

// Contain asserts that the actual value contains expected.
func (q Qualified) Contain(expected any) error {
	return q.call(matcher.OpContain, expected)
}

// Has is an alias for Contain.
func (q Qualified) Has(expected any) error {
	return q.call("has", expected)
}

// Have is an alias for Contain.
func (q Qualified) Have(expected any) error {
	return q.call("have", expected)
}

// Include is an alias for Contain.
func (q Qualified) Include(expected any) error {
	return q.call("include", expected)
}

// BeContainedIn asserts that expected contains the actual value.
func (q Qualified) BeContainedIn(expected any) error {
	return q.call(matcher.OpContainedIn, expected)
}

// BeIn is an alias for BeContainedIn.
func (q Qualified) BeIn(expected any) error {
	return q.call("be_in", expected)
}

// BeIncludedIn is an alias for BeContainedIn.
func (q Qualified) BeIncludedIn(expected any) error {
	return q.call("be_included_in", expected)
}

// BeEmpty asserts that the actual value has zero length.
func (q Qualified) BeEmpty() error {
	return q.check(matcher.OpEmpty)
}

// BeTrue asserts that the actual value is the bool true.
func (q Qualified) BeTrue() error {
	return q.check(matcher.OpTrue)
}

// BeTruthy asserts that the actual value coerces to true.
func (q Qualified) BeTruthy() error {
	return q.check(matcher.OpTruthy)
}

// BeTrueish is an alias for BeTruthy.
func (q Qualified) BeTrueish() error {
	return q.check("be_trueish")
}

// BeTruey is an alias for BeTruthy.
func (q Qualified) BeTruey() error {
	return q.check("be_truey")
}

// BeFalse asserts that the actual value is the bool false.
func (q Qualified) BeFalse() error {
	return q.check(matcher.OpFalse)
}

// BeFalsey asserts that the actual value coerces to false.
func (q Qualified) BeFalsey() error {
	return q.check(matcher.OpFalsey)
}

// BeFalsish is an alias for BeFalsey.
func (q Qualified) BeFalsish() error {
	return q.check("be_falsish")
}

// BeFalsy is an alias for BeFalsey.
func (q Qualified) BeFalsy() error {
	return q.check("be_falsy")
}

// BeOfType asserts that the dynamic type of the actual value is
// exactly expected, a reflect.Type.
func (q Qualified) BeOfType(expected any) error {
	return q.call(matcher.OpOfType, expected)
}

// BeType is an alias for BeOfType.
func (q Qualified) BeType(expected any) error {
	return q.call("be_type", expected)
}

// HaveType is an alias for BeOfType.
func (q Qualified) HaveType(expected any) error {
	return q.call("have_type", expected)
}

// BeGreaterThan asserts actual > expected.
func (q Qualified) BeGreaterThan(expected any) error {
	return q.call(matcher.OpGreaterThan, expected)
}

// BeGreater is an alias for BeGreaterThan.
func (q Qualified) BeGreater(expected any) error {
	return q.call("be_greater", expected)
}

// BeGreaterThanOrEqualTo asserts actual >= expected.
func (q Qualified) BeGreaterThanOrEqualTo(expected any) error {
	return q.call(matcher.OpGreaterThanOrEqualTo, expected)
}

// BeGreaterOrEqualTo is an alias for BeGreaterThanOrEqualTo.
func (q Qualified) BeGreaterOrEqualTo(expected any) error {
	return q.call("be_greater_or_equal_to", expected)
}

// BeGreaterOrEqual is an alias for BeGreaterThanOrEqualTo.
func (q Qualified) BeGreaterOrEqual(expected any) error {
	return q.call("be_greater_or_equal", expected)
}

// BeLesserThan asserts actual < expected.
func (q Qualified) BeLesserThan(expected any) error {
	return q.call(matcher.OpLesserThan, expected)
}

// BeLessThan is an alias for BeLesserThan.
func (q Qualified) BeLessThan(expected any) error {
	return q.call("be_less_than", expected)
}

// BeLess is an alias for BeLesserThan.
func (q Qualified) BeLess(expected any) error {
	return q.call("be_less", expected)
}

// BeLesser is an alias for BeLesserThan.
func (q Qualified) BeLesser(expected any) error {
	return q.call("be_lesser", expected)
}

// BeLesserThanOrEqualTo asserts actual <= expected.
func (q Qualified) BeLesserThanOrEqualTo(expected any) error {
	return q.call(matcher.OpLesserThanOrEqualTo, expected)
}

// BeLesserOrEqualTo is an alias for BeLesserThanOrEqualTo.
func (q Qualified) BeLesserOrEqualTo(expected any) error {
	return q.call("be_lesser_or_equal_to", expected)
}

// BeLessThanOrEqualTo is an alias for BeLesserThanOrEqualTo.
func (q Qualified) BeLessThanOrEqualTo(expected any) error {
	return q.call("be_less_than_or_equal_to", expected)
}

// BeLessOrEqual is an alias for BeLesserThanOrEqualTo.
func (q Qualified) BeLessOrEqual(expected any) error {
	return q.call("be_less_or_equal", expected)
}

// BeLesserOrEqual is an alias for BeLesserThanOrEqualTo.
func (q Qualified) BeLesserOrEqual(expected any) error {
	return q.call("be_lesser_or_equal", expected)
}

// BeNumeric asserts that the actual value is an integer, float or
// complex number. Booleans are not numeric.
func (q Qualified) BeNumeric() error {
	return q.check(matcher.OpNumeric)
}

// BeANumber is an alias for BeNumeric.
func (q Qualified) BeANumber() error {
	return q.check("be_a_number")
}

// Inherit asserts that the actual reflect.Type is expected,
// implements it, or embeds it.
func (q Qualified) Inherit(expected any) error {
	return q.call(matcher.OpInherit, expected)
}

// HaveParent is an alias for Inherit.
func (q Qualified) HaveParent(expected any) error {
	return q.call("have_parent", expected)
}

// BeSubclassOf is an alias for Inherit.
func (q Qualified) BeSubclassOf(expected any) error {
	return q.call("be_subclass_of", expected)
}
