package store

import (
	"context"
	"fmt"

	"github.com/anika/decodequest/ent"
	"github.com/anika/decodequest/ent/attemptevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetGameType(data.GameType).
		SetSkill(data.Skill).
		SetPattern(data.Pattern).
		SetCorrect(data.Correct).
		SetHintsUsed(data.HintsUsed).
		SetTimeMs(data.TimeMs).
		SetScore(data.Score).
		SetXp(data.XP).
		SetWasGuessing(data.WasGuessing)

	if data.ErrorType != "" {
		builder = builder.SetErrorType(data.ErrorType)
	}
	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, limit int) ([]AttemptEventData, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	// Reverse into chronological order.
	out := make([]AttemptEventData, len(events))
	for i, e := range events {
		out[len(events)-1-i] = AttemptEventData{
			SessionID:   e.SessionID,
			ItemID:      e.ItemID,
			GameType:    e.GameType,
			Skill:       e.Skill,
			Pattern:     e.Pattern,
			Correct:     e.Correct,
			HintsUsed:   e.HintsUsed,
			TimeMs:      e.TimeMs,
			Score:       e.Score,
			XP:          e.Xp,
			ErrorType:   e.ErrorType,
			WasGuessing: e.WasGuessing,
			Timestamp:   e.Timestamp,
		}
	}
	return out, nil
}

func (r *eventRepo) GameAccuracy(ctx context.Context, gameType string, lastN int) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.GameType(gameType)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query game accuracy: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}
	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(count), count, nil
}
