package mastery

import (
	"math"

	"github.com/anika/decodequest/internal/profile"
)

// Attempt scoring. Accuracy is the dominant factor; hint usage is penalized
// gently to encourage hint use without shame, and the time component is
// generous so slower decoders aren't punished for working carefully.

// ScoreAttempt converts one attempt into a 0-100 quality score using the
// policy's weights. Side-effect free.
func ScoreAttempt(a ItemAttempt, pol profile.Policy) int {
	w := pol.Weights

	accuracyScore := 0.0
	if a.Correct {
		accuracyScore = 100
	}

	maxHints := pol.MaxHints
	if maxHints <= 0 {
		maxHints = profile.DefaultMaxHints
	}
	hintPenalty := math.Min(float64(a.HintsUsed)/float64(maxHints), 1)
	hintScore := (1 - hintPenalty) * 100

	// Full marks up to 30s, then 2 points off per second, floored at 0.
	timeSec := float64(a.TimeMs) / 1000
	timeScore := 100.0
	if timeSec > 30 {
		timeScore = math.Max(0, 100-(timeSec-30)*2)
	}

	return int(math.Round(accuracyScore*w.Accuracy + hintScore*w.Hints + timeScore*w.Time))
}
