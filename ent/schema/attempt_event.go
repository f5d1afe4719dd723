package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered exercise item within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("item_id").
			NotEmpty().
			Comment("Exercise item answered"),
		field.String("game_type").
			NotEmpty().
			Comment("sound_snap, blend_builder, syllable_sprint, or morpheme_match"),
		field.String("skill").
			NotEmpty().
			Comment("Coarse skill category, e.g. digraphs"),
		field.String("pattern").
			NotEmpty().
			Comment("Specific pattern within the skill, e.g. sh"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("hints_used").
			Default(0).
			Comment("Hints taken before answering"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("score").
			Comment("Attempt score 0-100"),
		field.Int("xp").
			Comment("XP awarded for this attempt"),
		field.String("error_type").
			Optional().
			Comment("omission, addition, or visual_guessing when classified"),
		field.Bool("was_guessing").
			Default(false).
			Comment("Flagged by the guessing detector"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_type"),
		index.Fields("skill", "pattern"),
		index.Fields("correct"),
	}
}
