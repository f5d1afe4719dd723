package errordetect

import (
	"testing"

	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

func fastMiss() mastery.ItemAttempt {
	return mastery.ItemAttempt{Correct: false, TimeMs: 1500, HintsUsed: 0}
}

func TestDetectGuessing_TwoFastMisses(t *testing.T) {
	recent := []mastery.ItemAttempt{fastMiss()}
	if !DetectGuessing(fastMiss(), recent) {
		t.Error("two consecutive fast unaided misses should flag guessing")
	}
}

func TestDetectGuessing_EmptyHistory(t *testing.T) {
	if DetectGuessing(fastMiss(), nil) {
		t.Error("first miss of a session is not guessing")
	}
}

func TestDetectGuessing_SlowAnswer(t *testing.T) {
	a := fastMiss()
	a.TimeMs = 3000
	if DetectGuessing(a, []mastery.ItemAttempt{fastMiss()}) {
		t.Error("answers at or above 3s are not guessing")
	}
}

func TestDetectGuessing_HintUsed(t *testing.T) {
	a := fastMiss()
	a.HintsUsed = 1
	if DetectGuessing(a, []mastery.ItemAttempt{fastMiss()}) {
		t.Error("hint use rules out guessing on the current attempt")
	}

	prev := fastMiss()
	prev.HintsUsed = 1
	if DetectGuessing(fastMiss(), []mastery.ItemAttempt{prev}) {
		t.Error("hint use rules out guessing on the prior attempt")
	}
}

func TestDetectGuessing_CorrectAnswer(t *testing.T) {
	a := fastMiss()
	a.Correct = true
	if DetectGuessing(a, []mastery.ItemAttempt{fastMiss()}) {
		t.Error("correct answers are never guessing")
	}
}

func TestDetectGuessing_PriorCorrect(t *testing.T) {
	prev := fastMiss()
	prev.Correct = true
	if DetectGuessing(fastMiss(), []mastery.ItemAttempt{prev}) {
		t.Error("a single miss after a hit is not guessing")
	}
}

func TestDetect_GuessingOverridesClassification(t *testing.T) {
	pol := focusPolicy(true, true, true)
	recent := []mastery.ItemAttempt{fastMiss()}

	// The answer would classify as omission, but guessing takes over.
	r := Detect(fastMiss(), recent, []string{"s", "a"}, []string{"s", "a", "t"}, pol)
	if !r.IsGuessing {
		t.Fatal("expected guessing to be detected")
	}
	if !r.ForceScaffold || !r.ReduceDifficulty {
		t.Error("guessing must force scaffold mode and a difficulty reduction")
	}
	if r.Feedback != guessingFeedback {
		t.Errorf("Feedback = %q, want the guessing message", r.Feedback)
	}
}

func TestDetect_FallsBackToClassifier(t *testing.T) {
	pol := focusPolicy(true, false, false)
	miss := mastery.ItemAttempt{Correct: false, TimeMs: 8000, HintsUsed: 1}

	r := Detect(miss, nil, []string{"s", "a"}, []string{"s", "a", "t"}, pol)
	if r.IsGuessing {
		t.Fatal("slow hinted miss should not flag guessing")
	}
	if r.ErrorType != ErrorOmission {
		t.Errorf("ErrorType = %q, want omission", r.ErrorType)
	}
	if r.Feedback != FeedbackFor(ErrorOmission) {
		t.Errorf("Feedback = %q, want omission feedback", r.Feedback)
	}
	if r.ForceScaffold || r.ReduceDifficulty {
		t.Error("classified errors alone do not force scaffold or reduce difficulty")
	}
}

func TestDetect_CorrectAttemptNoClassification(t *testing.T) {
	pol := focusPolicy(true, true, true)
	hit := mastery.ItemAttempt{Correct: true, TimeMs: 2000}

	r := Detect(hit, nil, []string{"s", "a"}, []string{"s", "a", "t"}, pol)
	if r.ErrorType != ErrorNone || r.Feedback != "" {
		t.Errorf("correct attempts must not classify: %+v", r)
	}
}

func TestDetect_NoProfileNoFeedback(t *testing.T) {
	pol := profile.ResolvePolicy(nil)
	miss := mastery.ItemAttempt{Correct: false, TimeMs: 8000}

	r := Detect(miss, nil, []string{"s", "a"}, []string{"s", "a", "t"}, pol)
	if r.ErrorType != ErrorNone || r.Feedback != "" {
		t.Errorf("no-profile policy must yield none: %+v", r)
	}
}
