package store

import (
	"context"
	"testing"
	"time"

	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	progress := *session.NewProgressData(now)
	progress.TotalXP = 120
	progress.CurrentStreak = 3

	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: session.SchemaVersion, Progress: progress},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Progress.TotalXP != 120 {
		t.Errorf("restored total xp = %d, want 120", snap.Data.Progress.TotalXP)
	}
	if snap.Data.Progress.CurrentStreak != 3 {
		t.Errorf("restored streak = %d, want 3", snap.Data.Progress.CurrentStreak)
	}
}

func TestSnapshotSaveEnforcesHistoryCaps(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	progress := *session.NewProgressData(now)
	for i := 0; i < session.MaxRecentAttempts+40; i++ {
		progress.RecentAttempts = append(progress.RecentAttempts, mastery.ItemAttempt{ItemID: "ss-01"})
	}
	for i := 0; i < session.MaxSessionHistory+4; i++ {
		progress.SessionHistory = append(progress.SessionHistory, session.SessionSummary{})
	}

	err := repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data:      SnapshotData{Version: session.SchemaVersion, Progress: progress},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got := len(snap.Data.Progress.RecentAttempts); got != session.MaxRecentAttempts {
		t.Errorf("stored attempts = %d, want %d", got, session.MaxRecentAttempts)
	}
	if got := len(snap.Data.Progress.SessionHistory); got != session.MaxSessionHistory {
		t.Errorf("stored sessions = %d, want %d", got, session.MaxSessionHistory)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		progress := *session.NewProgressData(base)
		progress.TotalXP = (i + 1) * 10
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: session.SchemaVersion, Progress: progress},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Progress.TotalXP != 30 {
		t.Errorf("total xp = %d, want 30", snap.Data.Progress.TotalXP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: session.SchemaVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: session.SchemaVersion},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	attempts := []AttemptEventData{
		{SessionID: "sess-1", ItemID: "ss-01", GameType: "sound_snap", Skill: "digraphs", Pattern: "sh", Correct: true, TimeMs: 9000, Score: 100, XP: 23, Timestamp: base},
		{SessionID: "sess-1", ItemID: "ss-02", GameType: "sound_snap", Skill: "digraphs", Pattern: "ch", Correct: false, TimeMs: 15000, Score: 30, XP: 2, ErrorType: "omission", Timestamp: base.Add(time.Minute)},
		{SessionID: "sess-1", ItemID: "bb-01", GameType: "blend_builder", Skill: "blends", Pattern: "st", Correct: true, TimeMs: 12000, Score: 95, XP: 20, Timestamp: base.Add(2 * time.Minute)},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	got, err := repo.RecentAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("recent attempts = %d, want 3", len(got))
	}
	// Chronological order, oldest first.
	if got[0].ItemID != "ss-01" || got[2].ItemID != "bb-01" {
		t.Errorf("wrong order: %s .. %s", got[0].ItemID, got[2].ItemID)
	}
	if got[1].ErrorType != "omission" {
		t.Errorf("error type = %q, want omission", got[1].ErrorType)
	}

	// Limit applies from the newest end.
	got, err = repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts limited: %v", err)
	}
	if len(got) != 2 || got[0].ItemID != "ss-02" {
		t.Errorf("limited query should keep the newest attempts: %+v", got)
	}
}

func TestEventRepoGameAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty log.
	acc, n, err := repo.GameAccuracy(ctx, "sound_snap", 10)
	if err != nil {
		t.Fatalf("game accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("empty log accuracy = %v over %d, want 0 over 0", acc, n)
	}

	outcomes := []bool{true, true, false, true}
	for i, correct := range outcomes {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "sess-1", ItemID: "ss-01", GameType: "sound_snap",
			Skill: "digraphs", Pattern: "sh", Correct: correct, TimeMs: 5000 + i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// A different game must not count.
	err = repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "sess-1", ItemID: "bb-01", GameType: "blend_builder",
		Skill: "blends", Pattern: "st", Correct: false, TimeMs: 5000,
	})
	if err != nil {
		t.Fatalf("append other game: %v", err)
	}

	acc, n, err = repo.GameAccuracy(ctx, "sound_snap", 10)
	if err != nil {
		t.Fatalf("game accuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("attempts counted = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestEventRepoAppendSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSession(ctx, SessionEventData{
		SessionID:   "sess-1",
		Action:      "start",
		GamesPlayed: []string{"sound_snap", "blend_builder"},
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSession(ctx, SessionEventData{
		SessionID:    "sess-1",
		Action:       "end",
		TotalItems:   10,
		CorrectItems: 8,
		HintsUsed:    3,
		XPEarned:     140,
		DurationSecs: 360,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	count, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("session events = %d, want 2", count)
	}
}
