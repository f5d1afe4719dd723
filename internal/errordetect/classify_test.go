package errordetect

import (
	"testing"

	"github.com/anika/decodequest/internal/profile"
)

func focusPolicy(omission, addition, visual bool) profile.Policy {
	pol := profile.DefaultPolicy()
	pol.ErrorFocus = profile.ErrorFocusFlags{
		OmissionErrors: omission,
		AdditionErrors: addition,
		VisualGuessing: visual,
	}
	return pol
}

func TestClassify_Omission(t *testing.T) {
	got := Classify([]string{"s", "a"}, []string{"s", "a", "t"}, focusPolicy(true, false, false))
	if got != ErrorOmission {
		t.Errorf("Classify = %q, want omission", got)
	}
}

func TestClassify_OmissionRequiresFlag(t *testing.T) {
	got := Classify([]string{"s", "a"}, []string{"s", "a", "t"}, focusPolicy(false, false, false))
	if got != ErrorNone {
		t.Errorf("Classify = %q, want none with omission focus off", got)
	}
}

func TestClassify_OmissionRequiresSubset(t *testing.T) {
	// "x" is not in the correct answer, so the shorter answer is not an
	// omission, it is a substitution.
	got := Classify([]string{"s", "x"}, []string{"s", "a", "t"}, focusPolicy(true, false, false))
	if got != ErrorNone {
		t.Errorf("Classify = %q, want none for substitution", got)
	}
}

func TestClassify_Addition(t *testing.T) {
	got := Classify([]string{"s", "t", "a", "t"}, []string{"s", "a", "t"}, focusPolicy(false, true, false))
	if got != ErrorAddition {
		t.Errorf("Classify = %q, want addition", got)
	}
}

func TestClassify_VisualGuessing(t *testing.T) {
	got := Classify([]string{"s", "x", "t"}, []string{"s", "a", "t"}, focusPolicy(false, false, true))
	if got != ErrorVisualGuessing {
		t.Errorf("Classify = %q, want visual_guessing", got)
	}
}

func TestClassify_VisualGuessingNotIdentical(t *testing.T) {
	got := Classify([]string{"s", "a", "t"}, []string{"s", "a", "t"}, focusPolicy(false, false, true))
	if got != ErrorNone {
		t.Errorf("Classify = %q, want none for identical answers", got)
	}
}

func TestClassify_VisualGuessingEmptyAnswer(t *testing.T) {
	got := Classify(nil, []string{"s", "a", "t"}, focusPolicy(false, false, true))
	if got != ErrorNone {
		t.Errorf("Classify = %q, want none for empty answer", got)
	}
}

func TestClassify_PriorityOmissionBeforeVisual(t *testing.T) {
	// Shorter answer that is both a subset and edge-matching: omission
	// wins because it runs first.
	got := Classify([]string{"s", "t"}, []string{"s", "a", "t"}, focusPolicy(true, false, true))
	if got != ErrorOmission {
		t.Errorf("Classify = %q, want omission to take priority", got)
	}
}

func TestClassify_NoProfilePolicyAlwaysNone(t *testing.T) {
	pol := profile.ResolvePolicy(nil)
	cases := [][2][]string{
		{{"s", "a"}, {"s", "a", "t"}},
		{{"s", "x", "t"}, {"s", "a", "t"}},
		{{"s", "t", "a", "t"}, {"s", "a", "t"}},
	}
	for _, c := range cases {
		if got := Classify(c[0], c[1], pol); got != ErrorNone {
			t.Errorf("Classify(%v, %v) = %q, want none without a profile", c[0], c[1], got)
		}
	}
}
