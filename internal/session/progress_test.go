package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
)

func TestNewProgressData_Defaults(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	p := NewProgressData(now)

	if p.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", p.Version, SchemaVersion)
	}
	if !p.FirstLoad.Equal(now) {
		t.Errorf("first load = %v, want %v", p.FirstLoad, now)
	}
	if p.TotalXP != 0 || p.CurrentStreak != 0 {
		t.Error("fresh progress should have no XP or streak")
	}
	for _, gt := range content.AllGameTypes() {
		gp := p.Progress(gt)
		if gp.CurrentDifficulty != content.DifficultyMin {
			t.Errorf("%s starts at difficulty %d, want %d", gt, gp.CurrentDifficulty, content.DifficultyMin)
		}
	}
}

func TestProgress_FallbackForMissingGame(t *testing.T) {
	p := &ProgressData{}
	gp := p.Progress(content.GameMorphemeMatch)
	if gp.Game != content.GameMorphemeMatch || gp.CurrentDifficulty != content.DifficultyMin {
		t.Errorf("missing game should fall back to a fresh record: %+v", gp)
	}
}

func TestMastery_NilForUnseenSkill(t *testing.T) {
	p := NewProgressData(time.Now())
	if sm := p.Mastery("digraphs", "sh"); sm != nil {
		t.Errorf("unseen skill should return nil, got %+v", sm)
	}
}

func TestTrim_CapsHistories(t *testing.T) {
	p := &ProgressData{}
	for i := 0; i < MaxRecentAttempts+50; i++ {
		p.RecentAttempts = append(p.RecentAttempts, mastery.ItemAttempt{ItemID: strconv.Itoa(i)})
	}
	for i := 0; i < MaxSessionHistory+5; i++ {
		p.SessionHistory = append(p.SessionHistory, SessionSummary{ID: strconv.Itoa(i)})
	}

	p.Trim()

	if len(p.RecentAttempts) != MaxRecentAttempts {
		t.Errorf("attempts after trim = %d, want %d", len(p.RecentAttempts), MaxRecentAttempts)
	}
	// Newest entries survive.
	if got := p.RecentAttempts[len(p.RecentAttempts)-1].ItemID; got != strconv.Itoa(MaxRecentAttempts+49) {
		t.Errorf("newest attempt = %s, want %d", got, MaxRecentAttempts+49)
	}
	if got := p.RecentAttempts[0].ItemID; got != "50" {
		t.Errorf("oldest surviving attempt = %s, want 50", got)
	}

	if len(p.SessionHistory) != MaxSessionHistory {
		t.Errorf("sessions after trim = %d, want %d", len(p.SessionHistory), MaxSessionHistory)
	}
	if got := p.SessionHistory[0].ID; got != "5" {
		t.Errorf("oldest surviving session = %s, want 5", got)
	}
}

func TestTrim_NoopUnderCap(t *testing.T) {
	p := &ProgressData{
		RecentAttempts: []mastery.ItemAttempt{{ItemID: "a"}},
		SessionHistory: []SessionSummary{{ID: "s"}},
	}
	p.Trim()
	if len(p.RecentAttempts) != 1 || len(p.SessionHistory) != 1 {
		t.Error("trim should not touch histories under the cap")
	}
}
