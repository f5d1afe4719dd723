// Package selection scores and assembles candidate exercise items for a
// game round, mixing recently missed, new, and review material.
package selection

import (
	"math"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

// Priority term constants. Fixed design choices, not configurable.
const (
	difficultyFitUnit = 10
	masteryGapFactor  = 0.5
	reviewBonus       = 20
	unseenBonus       = 30
	missedRecencyCap  = 40
	missedDecayPerHr  = 2
	correctRecencyCap = 10
	correctGainPerHr  = 0.5
	topTargetBonus    = 15
)

// ItemPriority computes a selection-priority score for one candidate item.
// Higher is more urgent; the scale is unbounded and can go negative for
// items far from the target difficulty.
func ItemPriority(item content.Item, targetDifficulty content.Difficulty, masteries map[string]mastery.SkillMastery, recentAttempts []mastery.ItemAttempt, pol profile.Policy, now time.Time) float64 {
	base := item.Base()
	priority := 0.0

	// Difficulty fit: exact match contributes 30, each unit of mismatch
	// subtracts 10.
	diffDelta := math.Abs(float64(base.Difficulty) - float64(targetDifficulty))
	priority += (3 - diffDelta) * difficultyFitUnit

	// Mastery gap: weaker skills surface sooner. A never-attempted skill
	// gets moderate, not maximal, priority so new learners aren't flooded
	// with unfamiliar material.
	if sm, ok := masteries[mastery.Key(base.Skill, base.Pattern)]; ok {
		priority += float64(100-sm.Mastery) * masteryGapFactor
		if sm.NeedsReview {
			priority += reviewBonus
		}
	} else {
		priority += unseenBonus
	}

	// Recency: a missed item starts at full urgency and decays over ~20
	// hours; a correctly answered item slowly regains review priority over
	// the same span.
	if last := mastery.LatestForItem(recentAttempts, base.ID); last != nil {
		hoursSince := now.Sub(last.Timestamp).Hours()
		if !last.Correct {
			priority += math.Min(missedRecencyCap, missedRecencyCap-hoursSince*missedDecayPerHr)
		} else {
			priority += math.Min(correctRecencyCap, hoursSince*correctGainPerHr)
		}
	}

	if pol.MatchesTarget(base.Skill) {
		priority += topTargetBonus
	}

	return priority
}
