package mastery

import (
	"testing"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/profile"
)

func neutralPolicy() profile.Policy {
	return profile.DefaultPolicy()
}

func attentionPolicy() profile.Policy {
	p := &profile.LearnerProfile{}
	p.Learner.Diagnoses = []string{"ADHD (combined presentation)"}
	return profile.ResolvePolicy(p)
}

func TestScoreAttempt_FastCorrectNoHints(t *testing.T) {
	a := ItemAttempt{Game: content.GameSoundSnap, Correct: true, HintsUsed: 0, TimeMs: 5000}
	got := ScoreAttempt(a, neutralPolicy())
	if got != 100 {
		t.Errorf("ScoreAttempt = %d, want 100", got)
	}
}

func TestScoreAttempt_IncorrectNoHintsFast(t *testing.T) {
	a := ItemAttempt{Correct: false, HintsUsed: 0, TimeMs: 5000}
	// accuracy=0, hints=100, time=100: 0*0.6 + 100*0.2 + 100*0.2 = 40
	got := ScoreAttempt(a, neutralPolicy())
	if got != 40 {
		t.Errorf("ScoreAttempt = %d, want 40", got)
	}
}

func TestScoreAttempt_HintPenaltyLinear(t *testing.T) {
	// 2 of 4 hints: hint score 50. 100*0.6 + 50*0.2 + 100*0.2 = 90.
	a := ItemAttempt{Correct: true, HintsUsed: 2, TimeMs: 10000}
	got := ScoreAttempt(a, neutralPolicy())
	if got != 90 {
		t.Errorf("ScoreAttempt = %d, want 90", got)
	}
}

func TestScoreAttempt_HintPenaltyClamped(t *testing.T) {
	// 10 hints exceeds the ladder; hint score floors at 0.
	a := ItemAttempt{Correct: true, HintsUsed: 10, TimeMs: 10000}
	got := ScoreAttempt(a, neutralPolicy())
	// 100*0.6 + 0*0.2 + 100*0.2 = 80
	if got != 80 {
		t.Errorf("ScoreAttempt = %d, want 80", got)
	}
}

func TestScoreAttempt_TimeDecay(t *testing.T) {
	// 60s: time score = 100 - 30*2 = 40. 100*0.6 + 100*0.2 + 40*0.2 = 88.
	a := ItemAttempt{Correct: true, HintsUsed: 0, TimeMs: 60000}
	got := ScoreAttempt(a, neutralPolicy())
	if got != 88 {
		t.Errorf("ScoreAttempt = %d, want 88", got)
	}
}

func TestScoreAttempt_TimeFloorsAtZero(t *testing.T) {
	// 200s is far past the decay floor; score must stay in [0,100].
	a := ItemAttempt{Correct: true, HintsUsed: 0, TimeMs: 200000}
	got := ScoreAttempt(a, neutralPolicy())
	// 100*0.6 + 100*0.2 + 0*0.2 = 80
	if got != 80 {
		t.Errorf("ScoreAttempt = %d, want 80", got)
	}
}

func TestScoreAttempt_AttentionProfileShrinkTimeGap(t *testing.T) {
	fast := ItemAttempt{Correct: true, HintsUsed: 0, TimeMs: 5000}
	slow := ItemAttempt{Correct: true, HintsUsed: 0, TimeMs: 60000}

	neutralGap := ScoreAttempt(fast, neutralPolicy()) - ScoreAttempt(slow, neutralPolicy())
	attentionGap := ScoreAttempt(fast, attentionPolicy()) - ScoreAttempt(slow, attentionPolicy())

	if attentionGap >= neutralGap {
		t.Errorf("attention gap %d should be smaller than neutral gap %d", attentionGap, neutralGap)
	}
}

func TestScoreAttempt_ProcessingSpeedTriggersAttentionWeights(t *testing.T) {
	p := &profile.LearnerProfile{}
	p.AssessmentSummary.ProcessingSpeed = "Variable"
	pol := profile.ResolvePolicy(p)

	if pol.Weights.Time != 0.05 {
		t.Errorf("time weight = %v, want 0.05", pol.Weights.Time)
	}
	if pol.Weights.Accuracy != 0.75 {
		t.Errorf("accuracy weight = %v, want 0.75", pol.Weights.Accuracy)
	}
}

func TestScoreAttempt_RangeAlwaysValid(t *testing.T) {
	policies := []profile.Policy{neutralPolicy(), attentionPolicy()}
	attempts := []ItemAttempt{
		{Correct: true, HintsUsed: 0, TimeMs: 0},
		{Correct: false, HintsUsed: 8, TimeMs: 500000},
		{Correct: true, HintsUsed: 4, TimeMs: 90000},
	}
	for _, pol := range policies {
		for _, a := range attempts {
			got := ScoreAttempt(a, pol)
			if got < 0 || got > 100 {
				t.Errorf("ScoreAttempt(%+v) = %d, out of [0,100]", a, got)
			}
		}
	}
}
