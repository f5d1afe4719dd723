package mission

import (
	"math/rand/v2"
	"testing"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/profile"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func countRounds(rounds []content.GameType) map[content.GameType]int {
	counts := make(map[content.GameType]int)
	for _, gt := range rounds {
		counts[gt]++
	}
	return counts
}

func TestBuild_DefaultSessionLength(t *testing.T) {
	// 6 minutes: 360s / 45s = 8 items, 8/5 = 1 round, floored up to 2.
	rounds := Build(profile.DefaultPolicy(), nil, 6, testRNG())
	if len(rounds) != 2 {
		t.Errorf("got %d rounds for a 6-minute session, want 2", len(rounds))
	}
}

func TestBuild_LongerSessionMoreRounds(t *testing.T) {
	// 30 minutes: 1800/45 = 40 items, 40/5 = 8 rounds, 2 per game.
	rounds := Build(profile.DefaultPolicy(), nil, 30, testRNG())
	if len(rounds) != 8 {
		t.Errorf("got %d rounds for a 30-minute session, want 8", len(rounds))
	}
}

func TestBuild_OnlyValidGameTypes(t *testing.T) {
	rounds := Build(profile.DefaultPolicy(), nil, 30, testRNG())
	for _, gt := range rounds {
		if !gt.Valid() {
			t.Errorf("allocated unknown game type %q", gt)
		}
	}
}

func TestBuild_WeightedGameAppearsMoreOften(t *testing.T) {
	p := &profile.LearnerProfile{}
	p.SkillWeighting = profile.SkillWeighting{
		SoundSnap:      0.1,
		BlendBuilder:   0.6,
		SyllableSprint: 0.1,
		MorphemeMatch:  0.2,
	}
	pol := profile.ResolvePolicy(p)

	blendTotal, sprintTotal := 0, 0
	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		counts := countRounds(Build(pol, nil, 30, rng))
		blendTotal += counts[content.GameBlendBuilder]
		sprintTotal += counts[content.GameSyllableSprint]
	}
	if blendTotal <= sprintTotal {
		t.Errorf("blend_builder rounds (%d) should exceed syllable_sprint rounds (%d)", blendTotal, sprintTotal)
	}
}

func TestBuild_ErrorFocusBoostsBlendAndSnap(t *testing.T) {
	p := &profile.LearnerProfile{}
	p.SkillWeighting = profile.SkillWeighting{SoundSnap: 0.25, BlendBuilder: 0.25, SyllableSprint: 0.25, MorphemeMatch: 0.25}
	p.ErrorFocus.OmissionErrors = true
	pol := profile.ResolvePolicy(p)

	weights := adjustedWeights(pol)
	if weights[content.GameBlendBuilder] <= weights[content.GameSyllableSprint] {
		t.Error("blend_builder weight should rise above unboosted games")
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("boosted weights sum to %v, want 1", sum)
	}
}

// Allocation iterates the fixed game-type order and drops excess rounds
// from the end of the list, so a tight budget cuts the later game types.
// This pins that behavior.
func TestBuild_TruncationDropsFromEnd(t *testing.T) {
	// Equal weights and a 2-round budget: one round each is allocated, then
	// syllable_sprint and morpheme_match are cut from the end.
	counts := countRounds(Build(profile.DefaultPolicy(), nil, 6, testRNG()))
	if counts[content.GameSyllableSprint] != 0 || counts[content.GameMorphemeMatch] != 0 {
		t.Errorf("truncation should drop the later game types: %v", counts)
	}
	if counts[content.GameSoundSnap] != 1 || counts[content.GameBlendBuilder] != 1 {
		t.Errorf("surviving rounds = %v, want one sound_snap and one blend_builder", counts)
	}
}

func TestBuild_EveryGameGetsARoundWhenBudgetAllows(t *testing.T) {
	counts := countRounds(Build(profile.DefaultPolicy(), nil, 30, testRNG()))
	for _, gt := range content.AllGameTypes() {
		if counts[gt] == 0 {
			t.Errorf("game %s got no rounds", gt)
		}
	}
}
