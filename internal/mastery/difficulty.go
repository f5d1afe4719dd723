package mastery

import (
	"math"

	"github.com/anika/decodequest/internal/content"
)

// RecentWindow is the rolling window size for accuracy and hint averages.
const RecentWindow = 10

// RecentAccuracy returns the percentage of correct attempts over the last
// `window` entries, rounded to the nearest integer. Empty input yields 0.
func RecentAccuracy(attempts []ItemAttempt, window int) int {
	if len(attempts) == 0 {
		return 0
	}
	recent := lastN(attempts, window)
	correct := 0
	for _, a := range recent {
		if a.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(recent)) * 100))
}

// RecentAvgHints returns the average hints used per attempt over the last
// `window` entries. Empty input yields 0.
func RecentAvgHints(attempts []ItemAttempt, window int) float64 {
	recent := lastN(attempts, window)
	if len(recent) == 0 {
		return 0
	}
	sum := 0
	for _, a := range recent {
		sum += a.HintsUsed
	}
	return float64(sum) / float64(len(recent))
}

// AdaptDifficulty adjusts a game's difficulty from rolling performance.
// High hint usage suppresses the increase even at high accuracy: hint-assisted
// mastery should not be rewarded with harder content.
func AdaptDifficulty(current content.Difficulty, recentAccuracy int, recentAvgHints float64) content.Difficulty {
	if recentAccuracy >= 85 && recentAvgHints < 0.5 {
		return (current + 1).Clamp()
	}
	if recentAccuracy < 60 {
		return (current - 1).Clamp()
	}
	return current.Clamp()
}

func lastN(attempts []ItemAttempt, n int) []ItemAttempt {
	if n <= 0 || len(attempts) <= n {
		return attempts
	}
	return attempts[len(attempts)-n:]
}
