// Package session owns the learner's accumulated progress state and the
// attempt-recording pipeline that feeds it.
package session

import (
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
)

// SchemaVersion tags persisted progress snapshots for future migration.
const SchemaVersion = 1

// History caps enforced when progress is persisted.
const (
	MaxRecentAttempts = 200
	MaxSessionHistory = 30
)

// SessionSummary captures one finished practice session.
type SessionSummary struct {
	ID           string             `json:"id"`
	Date         time.Time          `json:"date"`
	Duration     time.Duration      `json:"duration"`
	GamesPlayed  []content.GameType `json:"games_played"`
	TotalItems   int                `json:"total_items"`
	CorrectItems int                `json:"correct_items"`
	HintsUsed    int                `json:"hints_used"`
	XPEarned     int                `json:"xp_earned"`
	Improvements []string           `json:"improvements,omitempty"`
	NextFocus    []string           `json:"next_focus,omitempty"`
}

// ProgressData is the learner's full accumulated state. The caller owns it;
// engine packages never retain references across calls.
type ProgressData struct {
	Version        int                                       `json:"version"`
	FirstLoad      time.Time                                 `json:"first_load"`
	LastSession    time.Time                                 `json:"last_session"`
	TotalXP        int                                       `json:"total_xp"`
	CurrentStreak  int                                       `json:"current_streak"`
	LongestStreak  int                                       `json:"longest_streak"`
	SkillMasteries map[string]mastery.SkillMastery           `json:"skill_masteries"`
	GameProgress   map[content.GameType]mastery.GameProgress `json:"game_progress"`
	RecentAttempts []mastery.ItemAttempt                     `json:"recent_attempts"`
	SessionHistory []SessionSummary                          `json:"session_history"`
}

// NewProgressData returns fresh progress: zero XP, difficulty 1 everywhere,
// empty history.
func NewProgressData(now time.Time) *ProgressData {
	gp := make(map[content.GameType]mastery.GameProgress, len(content.AllGameTypes()))
	for _, gt := range content.AllGameTypes() {
		gp[gt] = mastery.NewGameProgress(gt)
	}
	return &ProgressData{
		Version:        SchemaVersion,
		FirstLoad:      now,
		SkillMasteries: make(map[string]mastery.SkillMastery),
		GameProgress:   gp,
	}
}

// Progress returns the progress record for a game, falling back to a fresh
// record when the map has no entry (old snapshots, new game types).
func (p *ProgressData) Progress(gt content.GameType) mastery.GameProgress {
	if gp, ok := p.GameProgress[gt]; ok {
		return gp
	}
	return mastery.NewGameProgress(gt)
}

// Mastery looks up the mastery record for a (skill, pattern) pair, or nil
// when the pair has never been attempted.
func (p *ProgressData) Mastery(skill, pattern string) *mastery.SkillMastery {
	if sm, ok := p.SkillMasteries[mastery.Key(skill, pattern)]; ok {
		return &sm
	}
	return nil
}

// Trim enforces the history caps, keeping the newest entries. The caps
// belong to the persistence layer; in-memory state between saves may run
// over them.
func (p *ProgressData) Trim() {
	if n := len(p.RecentAttempts); n > MaxRecentAttempts {
		p.RecentAttempts = append([]mastery.ItemAttempt(nil), p.RecentAttempts[n-MaxRecentAttempts:]...)
	}
	if n := len(p.SessionHistory); n > MaxSessionHistory {
		p.SessionHistory = append([]SessionSummary(nil), p.SessionHistory[n-MaxSessionHistory:]...)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
