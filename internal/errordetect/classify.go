// Package errordetect classifies wrong answers into error categories and
// detects rapid-fire guessing, feeding remedial feedback to the exercise UI.
package errordetect

import (
	"strings"

	"github.com/anika/decodequest/internal/profile"
)

// ErrorType labels a classified decoding mistake.
type ErrorType string

const (
	ErrorNone           ErrorType = ""
	ErrorOmission       ErrorType = "omission"
	ErrorAddition       ErrorType = "addition"
	ErrorVisualGuessing ErrorType = "visual_guessing"
)

// Classify labels a wrong constructed answer against the correct one.
// Rules run in priority order, each gated by its policy error-focus flag;
// the first match wins. With no error focus configured (including the
// no-profile policy) the result is always ErrorNone.
func Classify(userAnswer, correctAnswer []string, pol profile.Policy) ErrorType {
	focus := pol.ErrorFocus

	// Omission: sounds left off. Membership check, not ordered subsequence;
	// a learner who drops a sound usually keeps the others recognizable.
	if focus.OmissionErrors && len(userAnswer) < len(correctAnswer) && containsAll(correctAnswer, userAnswer) {
		return ErrorOmission
	}

	// Addition: extra sounds inserted around the correct ones.
	if focus.AdditionErrors && len(userAnswer) > len(correctAnswer) && containsAll(userAnswer, correctAnswer) {
		return ErrorAddition
	}

	// Visual guessing: the word shape matches at the edges but the middle
	// is wrong, the signature of guessing from overall shape.
	if focus.VisualGuessing {
		userStr := strings.Join(userAnswer, "")
		correctStr := strings.Join(correctAnswer, "")
		if userStr != "" && correctStr != "" && userStr != correctStr &&
			userStr[0] == correctStr[0] && userStr[len(userStr)-1] == correctStr[len(correctStr)-1] {
			return ErrorVisualGuessing
		}
	}

	return ErrorNone
}

// containsAll reports whether every token of subset appears in set.
func containsAll(set, subset []string) bool {
	for _, tok := range subset {
		found := false
		for _, s := range set {
			if s == tok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
