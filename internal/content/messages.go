package content

import "math/rand/v2"

// MessageType categorizes a confidence message by where it is shown.
type MessageType string

const (
	MsgEncouragement MessageType = "encouragement"
	MsgProgress      MessageType = "progress"
	MsgMastery       MessageType = "mastery"
	MsgStreak        MessageType = "streak"
)

// ConfidenceMessage is a supportive line shown during or after play.
// MinMastery gates mastery messages so praise matches actual skill level.
type ConfidenceMessage struct {
	Type       MessageType
	Message    string
	MinMastery int
}

var confidenceMessages = []ConfidenceMessage{
	{Type: MsgEncouragement, Message: "You're working through this — keep going."},
	{Type: MsgEncouragement, Message: "Take your time. Accuracy beats speed."},
	{Type: MsgEncouragement, Message: "Every attempt builds your skills."},
	{Type: MsgEncouragement, Message: "Mistakes are part of learning. You've got this."},
	{Type: MsgEncouragement, Message: "Slow and steady is a smart strategy."},

	{Type: MsgProgress, Message: "You're moving forward — that's what counts."},
	{Type: MsgProgress, Message: "Consistent practice makes a real difference."},
	{Type: MsgProgress, Message: "Look how far you've come since you started."},
	{Type: MsgProgress, Message: "Your accuracy is improving. Keep it up."},

	{Type: MsgMastery, Message: "You've locked this in. Solid work.", MinMastery: 80},
	{Type: MsgMastery, Message: "This pattern is really clicking for you.", MinMastery: 75},
	{Type: MsgMastery, Message: "Expert level on this one. Well earned.", MinMastery: 90},

	{Type: MsgStreak, Message: "Streak going strong — consistency is key."},
	{Type: MsgStreak, Message: "Another day, another step forward."},
	{Type: MsgStreak, Message: "You're building a real habit here."},
}

// RandomMessage picks a message of the given type. For mastery messages,
// only messages whose MinMastery is at or below the given mastery qualify.
func RandomMessage(rng *rand.Rand, t MessageType, mastery int) string {
	var eligible []ConfidenceMessage
	for _, m := range confidenceMessages {
		if m.Type != t {
			continue
		}
		if m.MinMastery > 0 && mastery < m.MinMastery {
			continue
		}
		eligible = append(eligible, m)
	}
	if len(eligible) == 0 {
		return "Keep going — you're doing great."
	}
	return eligible[rng.IntN(len(eligible))].Message
}

// GameDisplayName returns a human-readable name for a game type.
func GameDisplayName(gt GameType) string {
	switch gt {
	case GameSoundSnap:
		return "Sound Snap"
	case GameBlendBuilder:
		return "Blend Builder"
	case GameSyllableSprint:
		return "Syllable Sprint"
	case GameMorphemeMatch:
		return "Morpheme Match"
	default:
		return string(gt)
	}
}

// GameDescription returns a one-line description for a game type.
func GameDescription(gt GameType) string {
	switch gt {
	case GameSoundSnap:
		return "Match sounds to their letter patterns"
	case GameBlendBuilder:
		return "Build words by blending sounds together"
	case GameSyllableSprint:
		return "Break words into syllables and find the stress"
	case GameMorphemeMatch:
		return "Combine word parts to build meaning"
	default:
		return ""
	}
}
