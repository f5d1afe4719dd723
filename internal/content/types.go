package content

// GameType identifies one of the four mini-games.
type GameType string

const (
	GameSoundSnap      GameType = "sound_snap"
	GameBlendBuilder   GameType = "blend_builder"
	GameSyllableSprint GameType = "syllable_sprint"
	GameMorphemeMatch  GameType = "morpheme_match"
)

// AllGameTypes returns the four game types in canonical order.
// Mission allocation iterates this order, so it must stay stable.
func AllGameTypes() []GameType {
	return []GameType{
		GameSoundSnap,
		GameBlendBuilder,
		GameSyllableSprint,
		GameMorphemeMatch,
	}
}

// Valid reports whether gt is one of the four known game types.
func (gt GameType) Valid() bool {
	switch gt {
	case GameSoundSnap, GameBlendBuilder, GameSyllableSprint, GameMorphemeMatch:
		return true
	}
	return false
}

// Difficulty is an item or game difficulty level, 1 (easiest) to 5.
type Difficulty int

const (
	DifficultyMin Difficulty = 1
	DifficultyMax Difficulty = 5
)

// Clamp returns d constrained to the valid 1..5 range.
func (d Difficulty) Clamp() Difficulty {
	if d < DifficultyMin {
		return DifficultyMin
	}
	if d > DifficultyMax {
		return DifficultyMax
	}
	return d
}

// BaseItem holds the fields shared by every exercise item.
type BaseItem struct {
	ID         string     `json:"id"`
	Game       GameType   `json:"game_type"`
	Difficulty Difficulty `json:"difficulty"`
	Skill      string     `json:"skill"`   // coarse category, e.g. "digraphs"
	Pattern    string     `json:"pattern"` // specific instance, e.g. "sh"
	IsNonword  bool       `json:"is_nonword,omitempty"`
}

// Item is a candidate exercise of any game type. The selection engine only
// needs the shared fields; game UIs type-switch to reach their payload.
type Item interface {
	Base() *BaseItem
}

// SnapMode distinguishes the two directions of a Sound Snap question.
type SnapMode string

const (
	GraphemeToSound SnapMode = "grapheme_to_sound"
	SoundToGrapheme SnapMode = "sound_to_grapheme"
)

// SoundSnapItem tests grapheme-phoneme mapping with distractors.
type SoundSnapItem struct {
	BaseItem
	Mode                     SnapMode `json:"mode"`
	Target                   string   `json:"target"`
	TargetPronunciation      string   `json:"target_pronunciation"`
	Word                     string   `json:"word"`
	Distractors              []string `json:"distractors"`
	DistractorPronunciations []string `json:"distractor_pronunciations"`
}

func (i *SoundSnapItem) Base() *BaseItem { return &i.BaseItem }

// BlendBuilderItem asks the learner to assemble a word from phoneme tiles.
type BlendBuilderItem struct {
	BaseItem
	Phonemes           []string `json:"phonemes"`
	TargetWord         string   `json:"target_word"`
	SlowBlend          string   `json:"slow_blend"`
	SmoothBlend        string   `json:"smooth_blend"`
	DistractorPhonemes []string `json:"distractor_phonemes"`
}

func (i *BlendBuilderItem) Base() *BaseItem { return &i.BaseItem }

// SyllableSprintItem asks for syllable divisions and the stressed syllable.
type SyllableSprintItem struct {
	BaseItem
	Word           string   `json:"word"`
	Syllables      []string `json:"syllables"`
	StressIndex    int      `json:"stress_index"`
	VowelPositions []int    `json:"vowel_positions"`
}

func (i *SyllableSprintItem) Base() *BaseItem { return &i.BaseItem }

// MorphemeMatchItem asks the learner to build a word from morphemes and
// pick its meaning.
type MorphemeMatchItem struct {
	BaseItem
	Morphemes          []string          `json:"morphemes"`
	TargetWord         string            `json:"target_word"`
	Meaning            string            `json:"meaning"`
	MeaningDistractors []string          `json:"meaning_distractors"`
	MorphemeMeanings   map[string]string `json:"morpheme_meanings"`
}

func (i *MorphemeMatchItem) Base() *BaseItem { return &i.BaseItem }
