package session

import (
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/errordetect"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

// Recorder runs the attempt pipeline against a ProgressData owned by the
// caller. Single-writer semantics: one recorder, one progress value, no
// concurrent calls.
type Recorder struct {
	Policy profile.Policy
}

// NewRecorder returns a recorder bound to a resolved policy.
func NewRecorder(pol profile.Policy) *Recorder {
	return &Recorder{Policy: pol}
}

// AttemptResult is everything the exercise UI needs after one answer.
type AttemptResult struct {
	Score     int
	XP        int
	Mastery   mastery.SkillMastery
	Detection errordetect.Result
}

// RecordAttempt folds one attempt into the progress state: error detection
// against the prior attempt history, then score, mastery update, game
// progress and difficulty update, and XP accrual. The attempt's error
// fields are stamped from the detection result before it is stored.
func (r *Recorder) RecordAttempt(p *ProgressData, a mastery.ItemAttempt, skill, pattern string, userAnswer, correctAnswer []string) AttemptResult {
	if p.SkillMasteries == nil {
		p.SkillMasteries = make(map[string]mastery.SkillMastery)
	}
	if p.GameProgress == nil {
		p.GameProgress = make(map[content.GameType]mastery.GameProgress)
	}

	det := errordetect.Detect(a, p.RecentAttempts, userAnswer, correctAnswer, r.Policy)
	a.ErrorType = string(det.ErrorType)
	a.WasGuessing = det.IsGuessing

	score := mastery.ScoreAttempt(a, r.Policy)

	key := mastery.Key(skill, pattern)
	var existing *mastery.SkillMastery
	if sm, ok := p.SkillMasteries[key]; ok {
		existing = &sm
	}
	updated := mastery.UpdateSkillMastery(existing, a, score)
	updated.Skill = skill
	updated.Pattern = pattern
	p.SkillMasteries[key] = updated

	// XP uses the difficulty in effect when the attempt was made, before
	// the adapter reacts to it.
	gp := p.Progress(a.Game)
	xp := mastery.CalculateXP(a, gp.CurrentDifficulty, score)

	p.RecentAttempts = append(p.RecentAttempts, a)
	p.GameProgress[a.Game] = mastery.UpdateGameProgress(gp, a, mastery.ForGame(p.RecentAttempts, a.Game), xp)
	p.TotalXP += xp

	return AttemptResult{
		Score:     score,
		XP:        xp,
		Mastery:   updated,
		Detection: det,
	}
}

// FinishSession appends the summary and advances the day streak: a second
// session the same day leaves the streak alone, a session the day after the
// last one extends it, anything else restarts it at 1. Per-attempt XP is
// already accrued by RecordAttempt; summary.XPEarned is informational.
func (r *Recorder) FinishSession(p *ProgressData, summary SessionSummary, now time.Time) {
	yesterday := now.AddDate(0, 0, -1)
	switch {
	case !p.LastSession.IsZero() && sameDay(p.LastSession, now):
		// same day, streak unchanged
	case !p.LastSession.IsZero() && sameDay(p.LastSession, yesterday):
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.LastSession = now

	if p.GameProgress == nil {
		p.GameProgress = make(map[content.GameType]mastery.GameProgress)
	}
	for _, gt := range uniqueGames(summary.GamesPlayed) {
		gp := p.Progress(gt)
		gp.SessionsCompleted++
		p.GameProgress[gt] = gp
	}

	p.SessionHistory = append(p.SessionHistory, summary)
}

func uniqueGames(games []content.GameType) []content.GameType {
	seen := make(map[content.GameType]bool, len(games))
	var out []content.GameType
	for _, gt := range games {
		if !seen[gt] {
			seen[gt] = true
			out = append(out, gt)
		}
	}
	return out
}
