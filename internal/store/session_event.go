package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTotalItems(data.TotalItems).
		SetCorrectItems(data.CorrectItems).
		SetHintsUsed(data.HintsUsed).
		SetXpEarned(data.XPEarned).
		SetDurationSecs(data.DurationSecs)

	if len(data.GamesPlayed) > 0 {
		builder = builder.SetGamesPlayed(data.GamesPlayed)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
