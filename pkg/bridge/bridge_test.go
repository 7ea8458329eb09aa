package bridge

import (
	"reflect"
	"testing"

	"github.com/onsi/gomega"

	"digital.vasic.expectations/pkg/matcher"
)

func TestVerb_WithGomega(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect([]int{1, 2, 3}).To(Verb("contain", 2))
	g.Expect([]int{1, 2, 3}).ToNot(Verb("include", 5))
	g.Expect("").To(Verb("be_empty"))
	g.Expect(0).To(Verb("be_falsy"))
	g.Expect(3.5).To(Verb("be_greater_than_or_equal_to", 3))
	g.Expect("b").To(Verb("be_in", "abc"))
	g.Expect(1).To(Verb("be_a_number"))
	g.Expect(true).ToNot(Verb("be_numeric"))
	g.Expect(5).To(Verb("be_of_type", reflect.TypeOf(0)))
}

func TestVerbMatcher_Messages(t *testing.T) {
	g := gomega.NewWithT(t)

	m := Verb("be_less", 2)
	ok, err := m.Match(3)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(ok).To(gomega.BeFalse())
	g.Expect(m.FailureMessage(3)).To(gomega.Equal("Expected 3 to be lesser than 2"))
	g.Expect(m.NegatedFailureMessage(1)).To(gomega.Equal("Expected 1 to not be lesser than 2"))

	empty := Verb("be_empty")
	g.Expect(empty.FailureMessage("x")).To(gomega.Equal(`Expected "x" to be empty`))
}

func TestVerbMatcher_TypeMismatch(t *testing.T) {
	g := gomega.NewWithT(t)

	ok, err := Verb("contain", 1).Match(5)
	g.Expect(ok).To(gomega.BeFalse())
	g.Expect(err).To(gomega.MatchError(matcher.ErrTypeMismatch))
}

func TestVerbMatcher_Errors(t *testing.T) {
	tests := []struct {
		name    string
		matcher *VerbMatcher
		want    string
	}{
		{"unknown verb", Verb("be_shiny", 1), "unknown verb: be_shiny"},
		{"nullary with value", Verb("be_empty", 1), "be_empty takes no expected value"},
		{"missing value", Verb("equal"), "equal takes one expected value, got 0"},
		{"extra value", Verb("equal", 1, 2), "equal takes one expected value, got 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)

			ok, err := tt.matcher.Match(1)
			g.Expect(ok).To(gomega.BeFalse())
			g.Expect(err).To(gomega.MatchError(tt.want))
			g.Expect(tt.matcher.FailureMessage(1)).To(gomega.Equal(tt.want))
		})
	}
}

func TestVerbIn_CustomRegistry(t *testing.T) {
	g := gomega.NewWithT(t)

	reg := matcher.NewRegistry()
	g.Expect(reg.RegisterAlias("hold", "contain")).To(gomega.Succeed())

	g.Expect("abc").To(VerbIn(reg, "hold", "b"))

	_, err := Verb("hold", "b").Match("abc")
	g.Expect(err).To(gomega.MatchError(matcher.ErrUnknownVerb))
}
