package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.JSON("games_played", []string{}).
			Optional().
			Comment("Game rounds in play order (on start: the mission plan)"),
		field.Int("total_items").
			Default(0).
			Comment("Items served (on end only)"),
		field.Int("correct_items").
			Default(0).
			Comment("Items answered correctly (on end only)"),
		field.Int("hints_used").
			Default(0).
			Comment("Total hints taken (on end only)"),
		field.Int("xp_earned").
			Default(0).
			Comment("XP accrued over the session (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
