package session

import (
	"testing"
	"time"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/errordetect"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/profile"
)

var recorderNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestRecorder() (*Recorder, *ProgressData) {
	return NewRecorder(profile.DefaultPolicy()), NewProgressData(recorderNow)
}

func attempt(correct bool, hints, timeMs int) mastery.ItemAttempt {
	return mastery.ItemAttempt{
		ItemID:    "ss-01",
		Game:      content.GameSoundSnap,
		Timestamp: recorderNow,
		Correct:   correct,
		HintsUsed: hints,
		TimeMs:    timeMs,
	}
}

func TestRecordAttempt_FirstAttempt(t *testing.T) {
	r, p := newTestRecorder()

	res := r.RecordAttempt(p, attempt(true, 0, 10_000), "digraphs", "sh", nil, nil)

	if res.Score != 100 {
		t.Errorf("score = %d, want 100 for a clean fast correct answer", res.Score)
	}
	// 10 base + 3*difficulty(1) + (100+10)/20 + 5 no-hint bonus.
	if res.XP != 23 {
		t.Errorf("xp = %d, want 23", res.XP)
	}
	if p.TotalXP != 23 {
		t.Errorf("total xp = %d, want 23", p.TotalXP)
	}

	sm := p.Mastery("digraphs", "sh")
	if sm == nil {
		t.Fatal("mastery record not created")
	}
	if sm.Mastery != 100 || sm.Streak != 1 || sm.NeedsReview {
		t.Errorf("mastery record = %+v, want mastery 100, streak 1, no review", sm)
	}
	if sm.Skill != "digraphs" || sm.Pattern != "sh" {
		t.Errorf("keys not assigned: %+v", sm)
	}

	if len(p.RecentAttempts) != 1 {
		t.Errorf("attempt not appended to history")
	}
	if gp := p.Progress(content.GameSoundSnap); gp.TotalXP != 23 {
		t.Errorf("game xp = %d, want 23", gp.TotalXP)
	}
}

func TestRecordAttempt_IncorrectEarnsParticipationXP(t *testing.T) {
	r, p := newTestRecorder()

	res := r.RecordAttempt(p, attempt(false, 2, 40_000), "digraphs", "sh", nil, nil)

	if res.XP != 2 {
		t.Errorf("xp = %d, want 2 for any incorrect attempt", res.XP)
	}
	sm := p.Mastery("digraphs", "sh")
	if sm == nil || !sm.NeedsReview {
		t.Errorf("incorrect first attempt should flag review: %+v", sm)
	}
}

func TestRecordAttempt_StampsGuessing(t *testing.T) {
	r, p := newTestRecorder()

	r.RecordAttempt(p, attempt(false, 0, 1_500), "digraphs", "sh", nil, nil)
	res := r.RecordAttempt(p, attempt(false, 0, 2_000), "digraphs", "ch", nil, nil)

	if !res.Detection.IsGuessing {
		t.Fatal("second consecutive fast unaided miss should be flagged as guessing")
	}
	if !res.Detection.ForceScaffold || !res.Detection.ReduceDifficulty {
		t.Error("guessing should force scaffolding and easier content")
	}
	stored := p.RecentAttempts[len(p.RecentAttempts)-1]
	if !stored.WasGuessing {
		t.Error("stored attempt should carry the guessing flag")
	}
}

func TestRecordAttempt_StampsErrorType(t *testing.T) {
	pol := profile.DefaultPolicy()
	pol.ErrorFocus.OmissionErrors = true
	r := NewRecorder(pol)
	p := NewProgressData(recorderNow)

	res := r.RecordAttempt(p, attempt(false, 1, 12_000), "blends", "st",
		[]string{"s", "op"}, []string{"s", "t", "op"})

	if res.Detection.ErrorType != errordetect.ErrorOmission {
		t.Fatalf("error type = %q, want omission", res.Detection.ErrorType)
	}
	stored := p.RecentAttempts[0]
	if stored.ErrorType != string(errordetect.ErrorOmission) {
		t.Errorf("stored error type = %q, want omission", stored.ErrorType)
	}
	if res.Detection.Feedback == "" {
		t.Error("classified errors should carry feedback")
	}
}

func TestRecordAttempt_XPUsesDifficultyBeforeAdaptation(t *testing.T) {
	r, p := newTestRecorder()
	gp := p.Progress(content.GameBlendBuilder)
	gp.CurrentDifficulty = 3
	p.GameProgress[content.GameBlendBuilder] = gp

	a := attempt(true, 0, 10_000)
	a.Game = content.GameBlendBuilder
	res := r.RecordAttempt(p, a, "blends", "st", nil, nil)

	// 10 + 3*3 + 5 + 5 with the pre-attempt difficulty of 3.
	if res.XP != 29 {
		t.Errorf("xp = %d, want 29", res.XP)
	}
}

func TestFinishSession_StreakProgression(t *testing.T) {
	r, p := newTestRecorder()

	day1 := time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)
	r.FinishSession(p, SessionSummary{Date: day1}, day1)
	if p.CurrentStreak != 1 {
		t.Fatalf("first session: streak = %d, want 1", p.CurrentStreak)
	}

	// Second session the same day leaves the streak alone.
	r.FinishSession(p, SessionSummary{}, day1.Add(2*time.Hour))
	if p.CurrentStreak != 1 {
		t.Errorf("same-day session: streak = %d, want 1", p.CurrentStreak)
	}

	// Next calendar day extends it.
	day2 := day1.AddDate(0, 0, 1)
	r.FinishSession(p, SessionSummary{}, day2)
	if p.CurrentStreak != 2 {
		t.Errorf("next-day session: streak = %d, want 2", p.CurrentStreak)
	}

	// A gap resets to 1 but the longest streak is kept.
	day5 := day1.AddDate(0, 0, 4)
	r.FinishSession(p, SessionSummary{}, day5)
	if p.CurrentStreak != 1 {
		t.Errorf("after gap: streak = %d, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", p.LongestStreak)
	}
	if len(p.SessionHistory) != 4 {
		t.Errorf("session history length = %d, want 4", len(p.SessionHistory))
	}
}

func TestFinishSession_SessionsCompletedPerGame(t *testing.T) {
	r, p := newTestRecorder()

	summary := SessionSummary{
		GamesPlayed: []content.GameType{
			content.GameSoundSnap,
			content.GameBlendBuilder,
			content.GameSoundSnap, // duplicate round, one session
		},
	}
	r.FinishSession(p, summary, recorderNow)

	if got := p.Progress(content.GameSoundSnap).SessionsCompleted; got != 1 {
		t.Errorf("sound_snap sessions = %d, want 1", got)
	}
	if got := p.Progress(content.GameBlendBuilder).SessionsCompleted; got != 1 {
		t.Errorf("blend_builder sessions = %d, want 1", got)
	}
	if got := p.Progress(content.GameSyllableSprint).SessionsCompleted; got != 0 {
		t.Errorf("syllable_sprint sessions = %d, want 0", got)
	}
}
