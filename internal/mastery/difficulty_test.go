package mastery

import (
	"testing"

	"github.com/anika/decodequest/internal/content"
)

func TestAdaptDifficulty_IncreaseOnHighAccuracy(t *testing.T) {
	got := AdaptDifficulty(2, 90, 0.2)
	if got != 3 {
		t.Errorf("AdaptDifficulty = %d, want 3", got)
	}
}

func TestAdaptDifficulty_HintUsageSuppressesIncrease(t *testing.T) {
	got := AdaptDifficulty(2, 90, 0.8)
	if got != 2 {
		t.Errorf("AdaptDifficulty = %d, want 2 (hints suppress increase)", got)
	}
}

func TestAdaptDifficulty_DecreaseOnLowAccuracy(t *testing.T) {
	got := AdaptDifficulty(3, 50, 0)
	if got != 2 {
		t.Errorf("AdaptDifficulty = %d, want 2", got)
	}
}

func TestAdaptDifficulty_MiddleBandUnchanged(t *testing.T) {
	got := AdaptDifficulty(3, 70, 0.3)
	if got != 3 {
		t.Errorf("AdaptDifficulty = %d, want 3", got)
	}
}

func TestAdaptDifficulty_Boundaries(t *testing.T) {
	if got := AdaptDifficulty(content.DifficultyMax, 100, 0); got != content.DifficultyMax {
		t.Errorf("AdaptDifficulty at cap = %d, want %d", got, content.DifficultyMax)
	}
	if got := AdaptDifficulty(content.DifficultyMin, 0, 0); got != content.DifficultyMin {
		t.Errorf("AdaptDifficulty at floor = %d, want %d", got, content.DifficultyMin)
	}
}

func TestRecentAccuracy_Window(t *testing.T) {
	// 15 attempts: first 5 incorrect, last 10 correct. Window of 10 sees
	// only the correct ones.
	var attempts []ItemAttempt
	for i := 0; i < 5; i++ {
		attempts = append(attempts, ItemAttempt{Correct: false})
	}
	for i := 0; i < 10; i++ {
		attempts = append(attempts, ItemAttempt{Correct: true})
	}

	got := RecentAccuracy(attempts, RecentWindow)
	if got != 100 {
		t.Errorf("RecentAccuracy = %d, want 100", got)
	}
}

func TestRecentAccuracy_Empty(t *testing.T) {
	if got := RecentAccuracy(nil, RecentWindow); got != 0 {
		t.Errorf("RecentAccuracy(nil) = %d, want 0", got)
	}
}

func TestRecentAccuracy_Rounds(t *testing.T) {
	attempts := []ItemAttempt{{Correct: true}, {Correct: true}, {Correct: false}}
	// 2/3 = 66.67 rounds to 67
	if got := RecentAccuracy(attempts, RecentWindow); got != 67 {
		t.Errorf("RecentAccuracy = %d, want 67", got)
	}
}

func TestRecentAvgHints(t *testing.T) {
	attempts := []ItemAttempt{{HintsUsed: 2}, {HintsUsed: 0}, {HintsUsed: 1}}
	got := RecentAvgHints(attempts, RecentWindow)
	if got != 1.0 {
		t.Errorf("RecentAvgHints = %v, want 1.0", got)
	}
}
