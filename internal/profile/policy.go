package profile

import (
	"strings"

	"github.com/anika/decodequest/internal/content"
)

// ScoreWeights weight the three sub-scores of an attempt score.
// They always sum to 1.
type ScoreWeights struct {
	Accuracy float64
	Hints    float64
	Time     float64
}

// Policy is the resolved, immutable per-session configuration derived from a
// raw learner profile. Engine packages take a Policy instead of re-deriving
// behavior from diagnosis strings on every call. The zero value is not
// meaningful; use DefaultPolicy or ResolvePolicy.
type Policy struct {
	Weights        ScoreWeights
	ErrorFocus     ErrorFocusFlags
	TopTargets     []string // normalized to underscore separators
	Reduce         []string
	GameWeights    map[content.GameType]float64
	SessionMinutes int
	MaxHints       int
}

// DefaultSessionMinutes is used when no profile recommends a session length.
const DefaultSessionMinutes = 6

// DefaultMaxHints is the hint ladder depth used for score scaling.
const DefaultMaxHints = 4

// DefaultPolicy returns the policy used when no profile is loaded:
// neutral scoring weights, no error focus, equal game weighting.
func DefaultPolicy() Policy {
	return Policy{
		Weights: ScoreWeights{Accuracy: 0.60, Hints: 0.20, Time: 0.20},
		GameWeights: map[content.GameType]float64{
			content.GameSoundSnap:      0.25,
			content.GameBlendBuilder:   0.25,
			content.GameSyllableSprint: 0.25,
			content.GameMorphemeMatch:  0.25,
		},
		SessionMinutes: DefaultSessionMinutes,
		MaxHints:       DefaultMaxHints,
	}
}

// ResolvePolicy converts a raw profile into a Policy. Called once per
// session; the result is shared by every engine call. A nil profile yields
// DefaultPolicy.
func ResolvePolicy(p *LearnerProfile) Policy {
	if p == nil {
		return DefaultPolicy()
	}

	policy := DefaultPolicy()

	if hasAttentionConcerns(p) || hasProcessingSpeedConcerns(p) {
		// Precision over speed: time barely counts for learners with
		// attention or processing speed concerns.
		policy.Weights = ScoreWeights{Accuracy: 0.75, Hints: 0.20, Time: 0.05}
	}

	policy.ErrorFocus = p.ErrorFocus

	policy.TopTargets = make([]string, len(p.InstructionalPriorities.TopTargets))
	for i, t := range p.InstructionalPriorities.TopTargets {
		policy.TopTargets[i] = strings.ReplaceAll(t, "-", "_")
	}
	policy.Reduce = append([]string(nil), p.InstructionalPriorities.Reduce...)

	policy.GameWeights = map[content.GameType]float64{
		content.GameSoundSnap:      p.SkillWeighting.SoundSnap,
		content.GameBlendBuilder:   p.SkillWeighting.BlendBuilder,
		content.GameSyllableSprint: p.SkillWeighting.SyllableSprint,
		content.GameMorphemeMatch:  p.SkillWeighting.MorphemeMatch,
	}

	if p.RecommendedSettings.SessionMinutes > 0 {
		policy.SessionMinutes = p.RecommendedSettings.SessionMinutes
	}

	return policy
}

// MatchesTarget reports whether an item skill matches one of the policy's
// top targets. Matching tolerates "-" vs "_" separator differences in
// either direction, in either containment order.
func (p Policy) MatchesTarget(skill string) bool {
	dashed := strings.ReplaceAll(skill, "_", "-")
	for _, t := range p.TopTargets {
		if strings.Contains(skill, t) || strings.Contains(strings.ReplaceAll(t, "_", "-"), dashed) {
			return true
		}
	}
	return false
}

func hasAttentionConcerns(p *LearnerProfile) bool {
	for _, d := range p.Learner.Diagnoses {
		lower := strings.ToLower(d)
		if strings.Contains(lower, "adhd") || strings.Contains(lower, "attention") {
			return true
		}
	}
	return false
}

func hasProcessingSpeedConcerns(p *LearnerProfile) bool {
	ps := p.AssessmentSummary.ProcessingSpeed
	return ps == "Variable" || ps == "Low"
}
