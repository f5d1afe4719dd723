package store

import (
	"context"
	"time"

	"github.com/anika/decodequest/internal/session"
)

// SnapshotData is the JSON payload of a progress snapshot.
type SnapshotData struct {
	Version  int                  `json:"version"`
	Progress session.ProgressData `json:"progress"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots. Save enforces the
// attempt and session history caps before writing.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one answered item for the event log.
type AttemptEventData struct {
	SessionID   string
	ItemID      string
	GameType    string
	Skill       string
	Pattern     string
	Correct     bool
	HintsUsed   int
	TimeMs      int
	Score       int
	XP          int
	ErrorType   string
	WasGuessing bool
	Timestamp   time.Time // zero means "now"
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	GamesPlayed  []string
	TotalItems   int
	CorrectItems int
	HintsUsed    int
	XPEarned     int
	DurationSecs int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAttempt records one answered item.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSession records a session start or end.
	AppendSession(ctx context.Context, data SessionEventData) error

	// RecentAttempts returns the newest attempt events, oldest first.
	RecentAttempts(ctx context.Context, limit int) ([]AttemptEventData, error)

	// GameAccuracy returns the accuracy over the last N attempts of one
	// game, with the number of attempts considered.
	GameAccuracy(ctx context.Context, gameType string, lastN int) (float64, int, error)
}
