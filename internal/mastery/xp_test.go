package mastery

import (
	"testing"

	"github.com/anika/decodequest/internal/content"
)

func TestCalculateXP_IncorrectAlwaysParticipation(t *testing.T) {
	a := ItemAttempt{Correct: false, HintsUsed: 0}
	for d := 1; d <= 5; d++ {
		for _, score := range []int{0, 40, 100} {
			if got := CalculateXP(a, content.Difficulty(d), score); got != 2 {
				t.Errorf("CalculateXP(incorrect, d=%d, score=%d) = %d, want 2", d, score, got)
			}
		}
	}
}

func TestCalculateXP_CorrectNoHints(t *testing.T) {
	a := ItemAttempt{Correct: true, HintsUsed: 0}
	// 10 + 3*3 + round(100/20) + 5 = 29
	if got := CalculateXP(a, 3, 100); got != 29 {
		t.Errorf("CalculateXP = %d, want 29", got)
	}
}

func TestCalculateXP_CorrectWithHints(t *testing.T) {
	a := ItemAttempt{Correct: true, HintsUsed: 2}
	// 10 + 3*2 + round(80/20) = 20, no hint-free bonus
	if got := CalculateXP(a, 2, 80); got != 20 {
		t.Errorf("CalculateXP = %d, want 20", got)
	}
}

func TestCalculateXP_MonotonicInDifficulty(t *testing.T) {
	a := ItemAttempt{Correct: true, HintsUsed: 1}
	prev := -1
	for d := 1; d <= 5; d++ {
		got := CalculateXP(a, content.Difficulty(d), 75)
		if got <= prev {
			t.Errorf("XP at difficulty %d = %d, not increasing (prev %d)", d, got, prev)
		}
		prev = got
	}
}

func TestCalculateXP_MonotonicInScore(t *testing.T) {
	a := ItemAttempt{Correct: true, HintsUsed: 1}
	prev := -1
	for _, score := range []int{0, 30, 60, 90} {
		got := CalculateXP(a, 3, score)
		if got < prev {
			t.Errorf("XP at score %d = %d, decreased (prev %d)", score, got, prev)
		}
		prev = got
	}
}

func TestUpdateGameProgress(t *testing.T) {
	gp := NewGameProgress("sound_snap")
	if gp.CurrentDifficulty != 1 {
		t.Fatalf("new progress difficulty = %d, want 1", gp.CurrentDifficulty)
	}

	var attempts []ItemAttempt
	for i := 0; i < 10; i++ {
		attempts = append(attempts, ItemAttempt{Game: "sound_snap", Correct: true, Timestamp: trackerNow})
	}
	a := attempts[len(attempts)-1]

	updated := UpdateGameProgress(gp, a, attempts, 25)
	if updated.TotalXP != 25 {
		t.Errorf("TotalXP = %d, want 25", updated.TotalXP)
	}
	if updated.CurrentDifficulty != 2 {
		t.Errorf("CurrentDifficulty = %d, want 2 after a perfect window", updated.CurrentDifficulty)
	}
	if updated.RecentAccuracy != 100 {
		t.Errorf("RecentAccuracy = %d, want 100", updated.RecentAccuracy)
	}
	if !updated.LastPlayed.Equal(trackerNow) {
		t.Errorf("LastPlayed = %v, want %v", updated.LastPlayed, trackerNow)
	}
	if gp.TotalXP != 0 {
		t.Error("input progress was mutated")
	}
}
