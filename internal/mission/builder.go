// Package mission allocates the game rounds that make up one timed
// practice session.
package mission

import (
	"math"
	"math/rand/v2"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

const (
	// secondsPerItem is the budgeted time for one exercise item.
	secondsPerItem = 45
	// itemsPerRound is the batch size of a single game round.
	itemsPerRound = 5
	// minRounds keeps even the shortest session from being a single game.
	minRounds = 2
)

// Error-focus boosts: omission/addition concerns shift session time toward
// the blending and sound games, within caps.
const (
	focusBoost      = 0.05
	blendBuilderCap = 0.5
	soundSnapCap    = 0.4
)

// Build produces the ordered list of game rounds for a session, one entry
// per round, weighted by the policy and shuffled for variety. progress is
// part of the planning contract but round allocation currently depends only
// on the policy weights.
func Build(pol profile.Policy, progress map[content.GameType]mastery.GameProgress, sessionMinutes int, rng *rand.Rand) []content.GameType {
	totalItems := sessionMinutes * 60 / secondsPerItem
	totalRounds := totalItems / itemsPerRound
	if totalRounds < minRounds {
		totalRounds = minRounds
	}

	weights := adjustedWeights(pol)

	// Allocation iterates the canonical game order; together with the
	// end-truncation below this keeps round counts reproducible.
	var allocation []content.GameType
	for _, gt := range content.AllGameTypes() {
		rounds := int(math.Round(weights[gt] * float64(totalRounds)))
		if rounds < 1 {
			rounds = 1
		}
		for i := 0; i < rounds; i++ {
			allocation = append(allocation, gt)
		}
	}

	// Drop excess rounds from the end until the budget fits.
	if len(allocation) > totalRounds {
		allocation = allocation[:totalRounds]
	}

	rng.Shuffle(len(allocation), func(i, j int) {
		allocation[i], allocation[j] = allocation[j], allocation[i]
	})
	return allocation
}

// adjustedWeights applies error-focus boosts, renormalizing to sum to 1
// when a boost fires. Unboosted weights pass through as supplied; they need
// not sum exactly to 1.
func adjustedWeights(pol profile.Policy) map[content.GameType]float64 {
	weights := make(map[content.GameType]float64, 4)
	for _, gt := range content.AllGameTypes() {
		weights[gt] = pol.GameWeights[gt]
	}

	if pol.ErrorFocus.OmissionErrors || pol.ErrorFocus.AdditionErrors {
		weights[content.GameBlendBuilder] = math.Min(blendBuilderCap, weights[content.GameBlendBuilder]+focusBoost)
		weights[content.GameSoundSnap] = math.Min(soundSnapCap, weights[content.GameSoundSnap]+focusBoost)

		total := 0.0
		for _, w := range weights {
			total += w
		}
		if total > 0 {
			for gt := range weights {
				weights[gt] /= total
			}
		}
	}
	return weights
}
