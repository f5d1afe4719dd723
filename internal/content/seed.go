package content

// The seed bank ships with the app. Items are authored here rather than
// loaded from files so the engine has no I/O dependency on content.

// registry indexes every seed item by ID.
var registry map[string]Item

// byGame indexes seed items by game type, preserving authoring order.
var byGame map[GameType][]Item

func init() {
	registry = make(map[string]Item)
	byGame = make(map[GameType][]Item)
	for _, it := range seedItems() {
		registry[it.Base().ID] = it
		byGame[it.Base().Game] = append(byGame[it.Base().Game], it)
	}
}

// GetItem returns the item with the given ID, or nil if unknown.
func GetItem(id string) Item {
	return registry[id]
}

// AllItems returns every item in the bank.
func AllItems() []Item {
	result := make([]Item, 0, len(registry))
	for _, gt := range AllGameTypes() {
		result = append(result, byGame[gt]...)
	}
	return result
}

// ItemsForGame returns all items of one game type.
func ItemsForGame(gt GameType) []Item {
	return byGame[gt]
}

func seedItems() []Item {
	items := make([]Item, 0, len(soundSnapSeed)+len(blendBuilderSeed)+len(syllableSprintSeed)+len(morphemeMatchSeed))
	for i := range soundSnapSeed {
		items = append(items, &soundSnapSeed[i])
	}
	for i := range blendBuilderSeed {
		items = append(items, &blendBuilderSeed[i])
	}
	for i := range syllableSprintSeed {
		items = append(items, &syllableSprintSeed[i])
	}
	for i := range morphemeMatchSeed {
		items = append(items, &morphemeMatchSeed[i])
	}
	return items
}

var soundSnapSeed = []SoundSnapItem{
	{
		BaseItem: BaseItem{ID: "ss-01", Game: GameSoundSnap, Difficulty: 1, Skill: "digraphs", Pattern: "sh"},
		Mode:     GraphemeToSound, Target: "sh", TargetPronunciation: "shh",
		Word: "ship", Distractors: []string{"ch", "th"}, DistractorPronunciations: []string{"chh", "thh"},
	},
	{
		BaseItem: BaseItem{ID: "ss-02", Game: GameSoundSnap, Difficulty: 1, Skill: "digraphs", Pattern: "ch"},
		Mode:     GraphemeToSound, Target: "ch", TargetPronunciation: "chh",
		Word: "chip", Distractors: []string{"sh", "th"}, DistractorPronunciations: []string{"shh", "thh"},
	},
	{
		BaseItem: BaseItem{ID: "ss-03", Game: GameSoundSnap, Difficulty: 1, Skill: "digraphs", Pattern: "th"},
		Mode:     GraphemeToSound, Target: "th", TargetPronunciation: "thh",
		Word: "thin", Distractors: []string{"sh", "ph"}, DistractorPronunciations: []string{"shh", "ff"},
	},
	{
		BaseItem: BaseItem{ID: "ss-04", Game: GameSoundSnap, Difficulty: 2, Skill: "digraphs", Pattern: "ph"},
		Mode:     GraphemeToSound, Target: "ph", TargetPronunciation: "ff",
		Word: "phone", Distractors: []string{"th", "wh"}, DistractorPronunciations: []string{"thh", "wh"},
	},
	{
		BaseItem: BaseItem{ID: "ss-05", Game: GameSoundSnap, Difficulty: 2, Skill: "digraphs", Pattern: "sh"},
		Mode:     SoundToGrapheme, Target: "sh", TargetPronunciation: "shh",
		Word: "flash", Distractors: []string{"ss", "ch"}, DistractorPronunciations: []string{"sss", "chh"},
	},
	{
		BaseItem: BaseItem{ID: "ss-06", Game: GameSoundSnap, Difficulty: 3, Skill: "digraphs", Pattern: "ng"},
		Mode:     GraphemeToSound, Target: "ng", TargetPronunciation: "ng",
		Word: "ring", Distractors: []string{"n", "nk"}, DistractorPronunciations: []string{"nn", "nk"},
	},
	{
		BaseItem: BaseItem{ID: "ss-07", Game: GameSoundSnap, Difficulty: 2, Skill: "vowel_teams", Pattern: "ai"},
		Mode:     GraphemeToSound, Target: "ai", TargetPronunciation: "long a",
		Word: "rain", Distractors: []string{"ay", "ea"}, DistractorPronunciations: []string{"ay", "ee"},
	},
	{
		BaseItem: BaseItem{ID: "ss-08", Game: GameSoundSnap, Difficulty: 2, Skill: "vowel_teams", Pattern: "ea"},
		Mode:     GraphemeToSound, Target: "ea", TargetPronunciation: "long e",
		Word: "beam", Distractors: []string{"ee", "ie"}, DistractorPronunciations: []string{"ee", "eye"},
	},
	{
		BaseItem: BaseItem{ID: "ss-09", Game: GameSoundSnap, Difficulty: 3, Skill: "vowel_teams", Pattern: "ow"},
		Mode:     GraphemeToSound, Target: "ow", TargetPronunciation: "ow as in cow",
		Word: "plow", Distractors: []string{"ou", "oa"}, DistractorPronunciations: []string{"ow", "oh"},
	},
	{
		BaseItem: BaseItem{ID: "ss-10", Game: GameSoundSnap, Difficulty: 2, Skill: "silent_e", Pattern: "a_e"},
		Mode:     GraphemeToSound, Target: "a_e", TargetPronunciation: "long a",
		Word: "cake", Distractors: []string{"short a", "ar"}, DistractorPronunciations: []string{"ah", "ar"},
	},
	{
		BaseItem: BaseItem{ID: "ss-11", Game: GameSoundSnap, Difficulty: 2, Skill: "r_controlled", Pattern: "ar"},
		Mode:     GraphemeToSound, Target: "ar", TargetPronunciation: "ar",
		Word: "star", Distractors: []string{"or", "er"}, DistractorPronunciations: []string{"or", "er"},
	},
	{
		BaseItem: BaseItem{ID: "ss-12", Game: GameSoundSnap, Difficulty: 3, Skill: "r_controlled", Pattern: "er"},
		Mode:     SoundToGrapheme, Target: "er", TargetPronunciation: "er",
		Word: "fern", Distractors: []string{"ir", "ur"}, DistractorPronunciations: []string{"er", "er"},
	},
	{
		BaseItem: BaseItem{ID: "ss-13", Game: GameSoundSnap, Difficulty: 4, Skill: "tion_sion", Pattern: "tion"},
		Mode:     GraphemeToSound, Target: "tion", TargetPronunciation: "shun",
		Word: "nation", Distractors: []string{"sion", "tien"}, DistractorPronunciations: []string{"zhun", "tee-en"},
	},
	{
		BaseItem: BaseItem{ID: "ss-14", Game: GameSoundSnap, Difficulty: 4, Skill: "tion_sion", Pattern: "sion"},
		Mode:     GraphemeToSound, Target: "sion", TargetPronunciation: "zhun",
		Word: "vision", Distractors: []string{"tion", "sian"}, DistractorPronunciations: []string{"shun", "see-an"},
	},
}

var blendBuilderSeed = []BlendBuilderItem{
	{
		BaseItem: BaseItem{ID: "bb-01", Game: GameBlendBuilder, Difficulty: 1, Skill: "blending", Pattern: "cvc"},
		Phonemes: []string{"s", "a", "t"}, TargetWord: "sat", SlowBlend: "s...a...t",
		SmoothBlend: "sat", DistractorPhonemes: []string{"m", "e"},
	},
	{
		BaseItem: BaseItem{ID: "bb-02", Game: GameBlendBuilder, Difficulty: 1, Skill: "blending", Pattern: "cvc"},
		Phonemes: []string{"p", "i", "n"}, TargetWord: "pin", SlowBlend: "p...i...n",
		SmoothBlend: "pin", DistractorPhonemes: []string{"b", "a"},
	},
	{
		BaseItem: BaseItem{ID: "bb-03", Game: GameBlendBuilder, Difficulty: 1, Skill: "blending", Pattern: "cvc"},
		Phonemes: []string{"m", "a", "p"}, TargetWord: "map", SlowBlend: "m...a...p",
		SmoothBlend: "map", DistractorPhonemes: []string{"n", "i"},
	},
	{
		BaseItem: BaseItem{ID: "bb-04", Game: GameBlendBuilder, Difficulty: 2, Skill: "blending", Pattern: "ccvc"},
		Phonemes: []string{"s", "t", "o", "p"}, TargetWord: "stop", SlowBlend: "s...t...o...p",
		SmoothBlend: "stop", DistractorPhonemes: []string{"r", "a"},
	},
	{
		BaseItem: BaseItem{ID: "bb-05", Game: GameBlendBuilder, Difficulty: 2, Skill: "blending", Pattern: "ccvc"},
		Phonemes: []string{"g", "r", "a", "b"}, TargetWord: "grab", SlowBlend: "g...r...a...b",
		SmoothBlend: "grab", DistractorPhonemes: []string{"d", "i"},
	},
	{
		BaseItem: BaseItem{ID: "bb-06", Game: GameBlendBuilder, Difficulty: 2, Skill: "blending_digraphs", Pattern: "digraph"},
		Phonemes: []string{"sh", "i", "p"}, TargetWord: "ship", SlowBlend: "sh...i...p",
		SmoothBlend: "ship", DistractorPhonemes: []string{"ch", "a"},
	},
	{
		BaseItem: BaseItem{ID: "bb-07", Game: GameBlendBuilder, Difficulty: 2, Skill: "blending_digraphs", Pattern: "digraph"},
		Phonemes: []string{"ch", "e", "s", "t"}, TargetWord: "chest", SlowBlend: "ch...e...s...t",
		SmoothBlend: "chest", DistractorPhonemes: []string{"sh", "a"},
	},
	{
		BaseItem: BaseItem{ID: "bb-08", Game: GameBlendBuilder, Difficulty: 3, Skill: "blending_vowel_teams", Pattern: "vowel_team"},
		Phonemes: []string{"r", "ai", "n"}, TargetWord: "rain", SlowBlend: "r...ai...n",
		SmoothBlend: "rain", DistractorPhonemes: []string{"p", "ea"},
	},
	{
		BaseItem: BaseItem{ID: "bb-09", Game: GameBlendBuilder, Difficulty: 3, Skill: "blending_vowel_teams", Pattern: "vowel_team"},
		Phonemes: []string{"b", "oa", "t"}, TargetWord: "boat", SlowBlend: "b...oa...t",
		SmoothBlend: "boat", DistractorPhonemes: []string{"g", "ee"},
	},
	{
		BaseItem: BaseItem{ID: "bb-10", Game: GameBlendBuilder, Difficulty: 4, Skill: "blending", Pattern: "complex"},
		Phonemes: []string{"s", "p", "l", "a", "sh"}, TargetWord: "splash", SlowBlend: "s...p...l...a...sh",
		SmoothBlend: "splash", DistractorPhonemes: []string{"t", "r"},
	},
	{
		BaseItem: BaseItem{ID: "bb-11", Game: GameBlendBuilder, Difficulty: 2, Skill: "blending", Pattern: "cvc", IsNonword: true},
		Phonemes: []string{"n", "u", "p"}, TargetWord: "nup", SlowBlend: "n...u...p",
		SmoothBlend: "nup", DistractorPhonemes: []string{"m", "a"},
	},
	{
		BaseItem: BaseItem{ID: "bb-12", Game: GameBlendBuilder, Difficulty: 3, Skill: "blending_digraphs", Pattern: "digraph", IsNonword: true},
		Phonemes: []string{"th", "o", "b"}, TargetWord: "thob", SlowBlend: "th...o...b",
		SmoothBlend: "thob", DistractorPhonemes: []string{"sh", "i"},
	},
}

var syllableSprintSeed = []SyllableSprintItem{
	{
		BaseItem: BaseItem{ID: "sy-01", Game: GameSyllableSprint, Difficulty: 1, Skill: "syllabication", Pattern: "2_syllable"},
		Word:     "happen", Syllables: []string{"hap", "pen"}, StressIndex: 0, VowelPositions: []int{1, 4},
	},
	{
		BaseItem: BaseItem{ID: "sy-02", Game: GameSyllableSprint, Difficulty: 1, Skill: "syllabication", Pattern: "2_syllable"},
		Word:     "rabbit", Syllables: []string{"rab", "bit"}, StressIndex: 0, VowelPositions: []int{1, 4},
	},
	{
		BaseItem: BaseItem{ID: "sy-03", Game: GameSyllableSprint, Difficulty: 2, Skill: "syllabication", Pattern: "2_syllable"},
		Word:     "silent", Syllables: []string{"si", "lent"}, StressIndex: 0, VowelPositions: []int{1, 3},
	},
	{
		BaseItem: BaseItem{ID: "sy-04", Game: GameSyllableSprint, Difficulty: 2, Skill: "syllabication", Pattern: "2_syllable"},
		Word:     "below", Syllables: []string{"be", "low"}, StressIndex: 1, VowelPositions: []int{1, 3},
	},
	{
		BaseItem: BaseItem{ID: "sy-05", Game: GameSyllableSprint, Difficulty: 3, Skill: "syllabication", Pattern: "3_syllable"},
		Word:     "important", Syllables: []string{"im", "por", "tant"}, StressIndex: 1, VowelPositions: []int{0, 3, 6},
	},
	{
		BaseItem: BaseItem{ID: "sy-06", Game: GameSyllableSprint, Difficulty: 3, Skill: "syllabication", Pattern: "3_syllable"},
		Word:     "discover", Syllables: []string{"dis", "cov", "er"}, StressIndex: 1, VowelPositions: []int{1, 4, 6},
	},
	{
		BaseItem: BaseItem{ID: "sy-07", Game: GameSyllableSprint, Difficulty: 4, Skill: "syllabication", Pattern: "4_syllable"},
		Word:     "caterpillar", Syllables: []string{"cat", "er", "pil", "lar"}, StressIndex: 0, VowelPositions: []int{1, 3, 6, 9},
	},
	{
		BaseItem: BaseItem{ID: "sy-08", Game: GameSyllableSprint, Difficulty: 5, Skill: "syllabication", Pattern: "4_syllable"},
		Word:     "understanding", Syllables: []string{"un", "der", "stand", "ing"}, StressIndex: 2, VowelPositions: []int{0, 3, 7, 11},
	},
}

var morphemeMatchSeed = []MorphemeMatchItem{
	{
		BaseItem:  BaseItem{ID: "mm-01", Game: GameMorphemeMatch, Difficulty: 2, Skill: "morphemic_awareness", Pattern: "prefix_un"},
		Morphemes: []string{"un", "happy"}, TargetWord: "unhappy",
		Meaning: "not happy", MeaningDistractors: []string{"very happy", "somewhat happy"},
		MorphemeMeanings: map[string]string{"un": "not", "happy": "feeling good"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-02", Game: GameMorphemeMatch, Difficulty: 2, Skill: "morphemic_awareness", Pattern: "prefix_re"},
		Morphemes: []string{"re", "play"}, TargetWord: "replay",
		Meaning: "play again", MeaningDistractors: []string{"stop playing", "play faster"},
		MorphemeMeanings: map[string]string{"re": "again", "play": "to participate in a game"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-03", Game: GameMorphemeMatch, Difficulty: 2, Skill: "morphemic_awareness", Pattern: "suffix_ful"},
		Morphemes: []string{"help", "ful"}, TargetWord: "helpful",
		Meaning: "full of help", MeaningDistractors: []string{"needing help", "without help"},
		MorphemeMeanings: map[string]string{"help": "to assist", "ful": "full of"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-04", Game: GameMorphemeMatch, Difficulty: 3, Skill: "morphemic_awareness", Pattern: "suffix_less"},
		Morphemes: []string{"fear", "less"}, TargetWord: "fearless",
		Meaning: "without fear", MeaningDistractors: []string{"full of fear", "causing fear"},
		MorphemeMeanings: map[string]string{"fear": "feeling afraid", "less": "without"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-05", Game: GameMorphemeMatch, Difficulty: 3, Skill: "morphemic_awareness", Pattern: "prefix_suffix"},
		Morphemes: []string{"un", "break", "able"}, TargetWord: "unbreakable",
		Meaning: "cannot be broken", MeaningDistractors: []string{"easy to break", "already broken"},
		MorphemeMeanings: map[string]string{"un": "not", "break": "to split apart", "able": "can be done"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-06", Game: GameMorphemeMatch, Difficulty: 4, Skill: "morphemic_awareness", Pattern: "root_port"},
		Morphemes: []string{"trans", "port"}, TargetWord: "transport",
		Meaning: "carry across", MeaningDistractors: []string{"stand still", "build something"},
		MorphemeMeanings: map[string]string{"trans": "across", "port": "to carry"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-07", Game: GameMorphemeMatch, Difficulty: 4, Skill: "morphemic_awareness", Pattern: "root_dict"},
		Morphemes: []string{"pre", "dict"}, TargetWord: "predict",
		Meaning: "say before (foretell)", MeaningDistractors: []string{"say after", "say clearly"},
		MorphemeMeanings: map[string]string{"pre": "before", "dict": "to say or speak"},
	},
	{
		BaseItem:  BaseItem{ID: "mm-08", Game: GameMorphemeMatch, Difficulty: 5, Skill: "morphemic_awareness", Pattern: "root_rupt"},
		Morphemes: []string{"inter", "rupt"}, TargetWord: "interrupt",
		Meaning: "break between", MeaningDistractors: []string{"continue smoothly", "start over"},
		MorphemeMeanings: map[string]string{"inter": "between", "rupt": "to break"},
	},
}
