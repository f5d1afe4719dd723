package errordetect

// Feedback text is always supportive and names a concrete next step.
// Never blame the learner.

const guessingFeedback = "Let's slow down and work through this step by step. No rush!"

// FeedbackFor returns the remedial feedback line for an error type, or ""
// for ErrorNone.
func FeedbackFor(et ErrorType) string {
	switch et {
	case ErrorOmission:
		return "Almost! Let's check — it looks like a sound might be missing. Tap through each sound carefully."
	case ErrorAddition:
		return "Close! There might be an extra sound in there. Let's listen to each part one at a time."
	case ErrorVisualGuessing:
		return "That word looks similar! Let's slow down and decode it sound by sound instead of guessing the shape."
	default:
		return ""
	}
}
