package mastery

import "github.com/anika/decodequest/internal/content"

const (
	baseXP = 10
	// participationXP is awarded for every incorrect attempt. Never zero:
	// the reward model has no punishment path.
	participationXP = 2
	noHintBonus     = 5
)

// CalculateXP derives the XP reward for one attempt. Monotonically
// increasing in difficulty and score; the hint-free bonus is flat.
func CalculateXP(a ItemAttempt, difficulty content.Difficulty, attemptScore int) int {
	if !a.Correct {
		return participationXP
	}

	difficultyBonus := int(difficulty) * 3
	scoreBonus := (attemptScore + 10) / 20 // round(score/20)
	xp := baseXP + difficultyBonus + scoreBonus
	if a.HintsUsed == 0 {
		xp += noHintBonus
	}
	return xp
}
