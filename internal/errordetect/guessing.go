package errordetect

import "github.com/anika/decodequest/internal/mastery"

// FastAnswerThresholdMs is the response time under which a wrong answer is
// suspiciously fast.
const FastAnswerThresholdMs = 3000

// DetectGuessing reports whether the current attempt looks like random
// guessing: two consecutive fast, unaided, wrong answers. A single fast
// miss is not enough; genuine decoding errors are often fast too.
// Profile-independent.
func DetectGuessing(current mastery.ItemAttempt, recent []mastery.ItemAttempt) bool {
	if current.Correct || current.TimeMs >= FastAnswerThresholdMs || current.HintsUsed != 0 {
		return false
	}
	if len(recent) == 0 {
		return false
	}
	prev := recent[len(recent)-1]
	return !prev.Correct && prev.HintsUsed == 0
}
