package errordetect

import (
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

// Result is the combined outcome of the error-detection pipeline for one
// incorrect attempt.
type Result struct {
	IsGuessing       bool
	ErrorType        ErrorType
	ForceScaffold    bool
	ReduceDifficulty bool
	Feedback         string
}

// Detect runs the full pipeline for an attempt. Guessing is evaluated first
// and overrides classification: a guessing learner needs scaffolding and
// easier content before category-specific remediation makes sense.
func Detect(current mastery.ItemAttempt, recent []mastery.ItemAttempt, userAnswer, correctAnswer []string, pol profile.Policy) Result {
	isGuessing := DetectGuessing(current, recent)

	errorType := ErrorNone
	if !current.Correct {
		errorType = Classify(userAnswer, correctAnswer, pol)
	}

	r := Result{
		IsGuessing:       isGuessing,
		ErrorType:        errorType,
		ForceScaffold:    isGuessing,
		ReduceDifficulty: isGuessing,
	}
	if isGuessing {
		r.Feedback = guessingFeedback
	} else {
		r.Feedback = FeedbackFor(errorType)
	}
	return r
}
