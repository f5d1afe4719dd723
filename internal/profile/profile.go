// Package profile loads the learner profile and resolves it into the
// immutable scoring policy consumed by the engine packages.
package profile

// LearnerProfile mirrors profile.json. It is supplied once per session by an
// external collaborator and never mutated by the engine. A nil profile is a
// fully supported input everywhere; fallbacks are defined by DefaultPolicy.
type LearnerProfile struct {
	Learner                 Learner            `json:"learner"`
	AssessmentSummary       AssessmentSummary  `json:"assessment_summary"`
	InstructionalPriorities Priorities         `json:"instructional_priorities"`
	RecommendedSettings     Settings           `json:"recommended_settings"`
	SkillWeighting          SkillWeighting     `json:"skill_weighting"`
	ErrorFocus              ErrorFocusFlags    `json:"error_focus"`
}

// Learner holds basic facts about the learner.
type Learner struct {
	Age       int      `json:"age"`
	Diagnoses []string `json:"diagnoses"`
	Notes     []string `json:"notes"`
}

// AssessmentSummary holds assessment ratings per sub-skill.
// Ratings are free-form strings like "Low", "Variable", "Average".
type AssessmentSummary struct {
	BasicReadingSkills string `json:"basic_reading_skills"`
	ReadingFluency     string `json:"reading_fluency"`
	Spelling           string `json:"spelling"`
	OralLanguage       string `json:"oral_language"`
	WorkingMemory      string `json:"working_memory"`
	ProcessingSpeed    string `json:"processing_speed"`
}

// Priorities lists skills to emphasize and de-emphasize.
type Priorities struct {
	TopTargets []string `json:"top_targets"`
	Reduce     []string `json:"reduce"`
}

// Settings holds recommended defaults for the exercise UI.
type Settings struct {
	SessionMinutes           int  `json:"session_minutes"`
	AudioInstructionsDefault bool `json:"audio_instructions_default"`
	TimersDefault            bool `json:"timers_default"`
	ReducedMotionDefault     bool `json:"reduced_motion_default"`
	ExtendedHintLadder       bool `json:"extended_hint_ladder"`
}

// SkillWeighting distributes session time across the four game types.
// Values need not sum exactly to 1.
type SkillWeighting struct {
	SoundSnap      float64 `json:"sound_snap"`
	BlendBuilder   float64 `json:"blend_builder"`
	SyllableSprint float64 `json:"syllable_sprint"`
	MorphemeMatch  float64 `json:"morpheme_match"`
}

// ErrorFocusFlags enables per-category error classification.
type ErrorFocusFlags struct {
	OmissionErrors bool `json:"omission_errors"`
	AdditionErrors bool `json:"addition_errors"`
	VisualGuessing bool `json:"visual_guessing"`
}
