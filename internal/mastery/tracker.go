package mastery

import (
	"math"
	"time"
)

const (
	// SmoothingAlpha is the EMA smoothing factor: each attempt shifts
	// mastery 30% of the way toward the attempt score.
	SmoothingAlpha = 0.3

	// ReviewThreshold is the mastery level below which a skill is flagged
	// for review.
	ReviewThreshold = 70

	masteryMax = 100
	masteryMin = 0
)

// SkillMastery tracks a learner's proficiency on one (skill, pattern) pair.
type SkillMastery struct {
	Skill           string    `json:"skill"`
	Pattern         string    `json:"pattern"`
	Mastery         int       `json:"mastery"` // 0-100, EMA-smoothed
	TotalAttempts   int       `json:"total_attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	LastAttempted   time.Time `json:"last_attempted"`
	LastCorrect     time.Time `json:"last_correct"`
	Streak          int       `json:"streak"`
	NeedsReview     bool      `json:"needs_review"`
}

// Key returns the map key for a (skill, pattern) pair.
func Key(skill, pattern string) string {
	return skill + "|" + pattern
}

// Accuracy returns the lifetime accuracy ratio for this skill.
func (sm *SkillMastery) Accuracy() float64 {
	if sm.TotalAttempts == 0 {
		return 0
	}
	return float64(sm.CorrectAttempts) / float64(sm.TotalAttempts)
}

// UpdateSkillMastery folds one attempt into a mastery record and returns the
// new record; the existing record is never mutated. A nil existing record
// initializes mastery at the attempt score. The caller assigns skill and
// pattern keys; the tracker is key-agnostic.
func UpdateSkillMastery(existing *SkillMastery, a ItemAttempt, attemptScore int) SkillMastery {
	if existing == nil {
		sm := SkillMastery{
			Mastery:       attemptScore,
			TotalAttempts: 1,
			LastAttempted: a.Timestamp,
			NeedsReview:   !a.Correct,
		}
		if a.Correct {
			sm.CorrectAttempts = 1
			sm.LastCorrect = a.Timestamp
			sm.Streak = 1
		}
		return sm
	}

	smoothed := float64(existing.Mastery)*(1-SmoothingAlpha) + float64(attemptScore)*SmoothingAlpha
	newMastery := int(math.Round(clamp(smoothed, masteryMin, masteryMax)))

	updated := *existing
	updated.Mastery = newMastery
	updated.TotalAttempts++
	updated.LastAttempted = a.Timestamp
	if a.Correct {
		updated.CorrectAttempts++
		updated.LastCorrect = a.Timestamp
		updated.Streak++
	} else {
		updated.Streak = 0
	}
	updated.NeedsReview = newMastery < ReviewThreshold || !a.Correct
	return updated
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
