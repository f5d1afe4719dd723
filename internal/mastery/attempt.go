package mastery

import (
	"time"

	"github.com/anika/decodequest/internal/content"
)

// ItemAttempt records one answer to one exercise item. Created by the
// exercise UI when an answer is submitted; every engine function consumes
// it read-only.
type ItemAttempt struct {
	ItemID      string           `json:"item_id"`
	Game        content.GameType `json:"game_type"`
	Timestamp   time.Time        `json:"timestamp"`
	Correct     bool             `json:"correct"`
	HintsUsed   int              `json:"hints_used"`
	TimeMs      int              `json:"time_ms"`
	ErrorType   string           `json:"error_type,omitempty"`
	WasGuessing bool             `json:"was_guessing,omitempty"`
}

// LatestForItem returns the most recent attempt on the given item id,
// or nil if the item has never been attempted.
func LatestForItem(attempts []ItemAttempt, itemID string) *ItemAttempt {
	var latest *ItemAttempt
	for i := range attempts {
		a := &attempts[i]
		if a.ItemID != itemID {
			continue
		}
		if latest == nil || a.Timestamp.After(latest.Timestamp) {
			latest = a
		}
	}
	return latest
}

// ForGame filters attempts down to a single game type, preserving order.
func ForGame(attempts []ItemAttempt, gt content.GameType) []ItemAttempt {
	var result []ItemAttempt
	for _, a := range attempts {
		if a.Game == gt {
			result = append(result, a)
		}
	}
	return result
}
