package profile

// profileSchema is the JSON Schema for profile.json. Top-level sections are
// required so a malformed profile fails fast instead of silently defaulting;
// the nil-profile path is the only sanctioned fallback.
var profileSchema = map[string]any{
	"type": "object",
	"required": []any{
		"learner", "assessment_summary", "instructional_priorities",
		"recommended_settings", "skill_weighting", "error_focus",
	},
	"properties": map[string]any{
		"learner": map[string]any{
			"type":     "object",
			"required": []any{"age", "diagnoses"},
			"properties": map[string]any{
				"age":       map[string]any{"type": "integer", "minimum": 3},
				"diagnoses": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"notes":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
		"assessment_summary": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"basic_reading_skills": map[string]any{"type": "string"},
				"reading_fluency":      map[string]any{"type": "string"},
				"spelling":             map[string]any{"type": "string"},
				"oral_language":        map[string]any{"type": "string"},
				"working_memory":       map[string]any{"type": "string"},
				"processing_speed":     map[string]any{"type": "string"},
			},
		},
		"instructional_priorities": map[string]any{
			"type":     "object",
			"required": []any{"top_targets"},
			"properties": map[string]any{
				"top_targets": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"reduce":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		},
		"recommended_settings": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"session_minutes":            map[string]any{"type": "integer", "minimum": 1},
				"audio_instructions_default": map[string]any{"type": "boolean"},
				"timers_default":             map[string]any{"type": "boolean"},
				"reduced_motion_default":     map[string]any{"type": "boolean"},
				"extended_hint_ladder":       map[string]any{"type": "boolean"},
			},
		},
		"skill_weighting": map[string]any{
			"type":     "object",
			"required": []any{"sound_snap", "blend_builder", "syllable_sprint", "morpheme_match"},
			"properties": map[string]any{
				"sound_snap":      map[string]any{"type": "number", "minimum": 0},
				"blend_builder":   map[string]any{"type": "number", "minimum": 0},
				"syllable_sprint": map[string]any{"type": "number", "minimum": 0},
				"morpheme_match":  map[string]any{"type": "number", "minimum": 0},
			},
		},
		"error_focus": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"omission_errors": map[string]any{"type": "boolean"},
				"addition_errors": map[string]any{"type": "boolean"},
				"visual_guessing": map[string]any{"type": "boolean"},
			},
		},
	},
}
