package mastery

import (
	"testing"
	"time"
)

var trackerNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestUpdateSkillMastery_FirstAttempt(t *testing.T) {
	a := ItemAttempt{Correct: true, Timestamp: trackerNow}
	sm := UpdateSkillMastery(nil, a, 85)

	if sm.Mastery != 85 {
		t.Errorf("Mastery = %d, want 85 (attempt score)", sm.Mastery)
	}
	if sm.TotalAttempts != 1 || sm.CorrectAttempts != 1 {
		t.Errorf("attempts = %d/%d, want 1/1", sm.CorrectAttempts, sm.TotalAttempts)
	}
	if sm.Streak != 1 {
		t.Errorf("Streak = %d, want 1", sm.Streak)
	}
	if sm.NeedsReview {
		t.Error("NeedsReview should be false after a correct first attempt")
	}
}

func TestUpdateSkillMastery_FirstAttemptIncorrect(t *testing.T) {
	a := ItemAttempt{Correct: false, Timestamp: trackerNow}
	sm := UpdateSkillMastery(nil, a, 20)

	if sm.CorrectAttempts != 0 || sm.Streak != 0 {
		t.Errorf("correct=%d streak=%d, want 0/0", sm.CorrectAttempts, sm.Streak)
	}
	if !sm.NeedsReview {
		t.Error("NeedsReview should be true after an incorrect attempt")
	}
	if !sm.LastCorrect.IsZero() {
		t.Error("LastCorrect should stay zero without a correct attempt")
	}
}

func TestUpdateSkillMastery_EMAExactValue(t *testing.T) {
	existing := &SkillMastery{Skill: "digraphs", Pattern: "sh", Mastery: 50, TotalAttempts: 3, CorrectAttempts: 2}
	a := ItemAttempt{Correct: true, Timestamp: trackerNow}

	// round(50*0.7 + 100*0.3) = 65
	sm := UpdateSkillMastery(existing, a, 100)
	if sm.Mastery != 65 {
		t.Errorf("Mastery = %d, want 65", sm.Mastery)
	}
}

func TestUpdateSkillMastery_DoesNotMutateExisting(t *testing.T) {
	existing := &SkillMastery{Mastery: 50, TotalAttempts: 3, Streak: 2}
	a := ItemAttempt{Correct: false, Timestamp: trackerNow}

	_ = UpdateSkillMastery(existing, a, 0)
	if existing.Mastery != 50 || existing.TotalAttempts != 3 || existing.Streak != 2 {
		t.Errorf("existing record was mutated: %+v", existing)
	}
}

func TestUpdateSkillMastery_StreakResetsOnMiss(t *testing.T) {
	existing := &SkillMastery{Mastery: 90, Streak: 5}
	a := ItemAttempt{Correct: false, Timestamp: trackerNow}

	sm := UpdateSkillMastery(existing, a, 20)
	if sm.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after a miss", sm.Streak)
	}
	if !sm.NeedsReview {
		t.Error("NeedsReview should be true immediately after any miss")
	}
}

func TestUpdateSkillMastery_NeedsReviewBelowThreshold(t *testing.T) {
	// Correct attempt, but smoothed mastery stays below 70.
	existing := &SkillMastery{Mastery: 40}
	a := ItemAttempt{Correct: true, Timestamp: trackerNow}

	// round(40*0.7 + 80*0.3) = 52 < 70
	sm := UpdateSkillMastery(existing, a, 80)
	if sm.Mastery != 52 {
		t.Errorf("Mastery = %d, want 52", sm.Mastery)
	}
	if !sm.NeedsReview {
		t.Error("NeedsReview should be true while mastery < 70")
	}
}

func TestUpdateSkillMastery_ClampedToRange(t *testing.T) {
	high := &SkillMastery{Mastery: 100}
	sm := UpdateSkillMastery(high, ItemAttempt{Correct: true, Timestamp: trackerNow}, 100)
	if sm.Mastery > 100 {
		t.Errorf("Mastery = %d, want <= 100", sm.Mastery)
	}

	low := &SkillMastery{Mastery: 0}
	sm = UpdateSkillMastery(low, ItemAttempt{Correct: false, Timestamp: trackerNow}, 0)
	if sm.Mastery < 0 {
		t.Errorf("Mastery = %d, want >= 0", sm.Mastery)
	}
}

func TestUpdateSkillMastery_ConvergesTowardScore(t *testing.T) {
	sm := UpdateSkillMastery(nil, ItemAttempt{Correct: true, Timestamp: trackerNow}, 50)
	for i := 0; i < 30; i++ {
		sm = UpdateSkillMastery(&sm, ItemAttempt{Correct: true, Timestamp: trackerNow}, 100)
	}
	if sm.Mastery < 98 {
		t.Errorf("Mastery = %d after 30 perfect attempts, want near 100", sm.Mastery)
	}
}
