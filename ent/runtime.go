// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anika/decodequest/ent/attemptevent"
	"github.com/anika/decodequest/ent/schema"
	"github.com/anika/decodequest/ent/sessionevent"
	"github.com/anika/decodequest/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[1].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescGameType is the schema descriptor for game_type field.
	attempteventDescGameType := attempteventFields[2].Descriptor()
	// attemptevent.GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	attemptevent.GameTypeValidator = attempteventDescGameType.Validators[0].(func(string) error)
	// attempteventDescSkill is the schema descriptor for skill field.
	attempteventDescSkill := attempteventFields[3].Descriptor()
	// attemptevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	attemptevent.SkillValidator = attempteventDescSkill.Validators[0].(func(string) error)
	// attempteventDescPattern is the schema descriptor for pattern field.
	attempteventDescPattern := attempteventFields[4].Descriptor()
	// attemptevent.PatternValidator is a validator for the "pattern" field. It is called by the builders before save.
	attemptevent.PatternValidator = attempteventDescPattern.Validators[0].(func(string) error)
	// attempteventDescHintsUsed is the schema descriptor for hints_used field.
	attempteventDescHintsUsed := attempteventFields[6].Descriptor()
	// attemptevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	attemptevent.DefaultHintsUsed = attempteventDescHintsUsed.Default.(int)
	// attempteventDescWasGuessing is the schema descriptor for was_guessing field.
	attempteventDescWasGuessing := attempteventFields[11].Descriptor()
	// attemptevent.DefaultWasGuessing holds the default value on creation for the was_guessing field.
	attemptevent.DefaultWasGuessing = attempteventDescWasGuessing.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTotalItems is the schema descriptor for total_items field.
	sessioneventDescTotalItems := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalItems holds the default value on creation for the total_items field.
	sessionevent.DefaultTotalItems = sessioneventDescTotalItems.Default.(int)
	// sessioneventDescCorrectItems is the schema descriptor for correct_items field.
	sessioneventDescCorrectItems := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectItems holds the default value on creation for the correct_items field.
	sessionevent.DefaultCorrectItems = sessioneventDescCorrectItems.Default.(int)
	// sessioneventDescHintsUsed is the schema descriptor for hints_used field.
	sessioneventDescHintsUsed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sessionevent.DefaultHintsUsed = sessioneventDescHintsUsed.Default.(int)
	// sessioneventDescXpEarned is the schema descriptor for xp_earned field.
	sessioneventDescXpEarned := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	sessionevent.DefaultXpEarned = sessioneventDescXpEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
