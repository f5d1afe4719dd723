package mastery

import (
	"time"

	"github.com/anika/decodequest/internal/content"
)

// GameProgress tracks per-game aggregates: XP, sessions, adaptive
// difficulty and the rolling accuracy window.
type GameProgress struct {
	Game              content.GameType   `json:"game_type"`
	TotalXP           int                `json:"total_xp"`
	SessionsCompleted int                `json:"sessions_completed"`
	CurrentDifficulty content.Difficulty `json:"current_difficulty"`
	RecentAccuracy    int                `json:"recent_accuracy"`
	LastPlayed        time.Time          `json:"last_played"`
}

// NewGameProgress returns the starting progress for a game: difficulty 1,
// nothing earned yet.
func NewGameProgress(gt content.GameType) GameProgress {
	return GameProgress{Game: gt, CurrentDifficulty: content.DifficultyMin}
}

// UpdateGameProgress folds one attempt into a game's progress and returns
// the new value. gameAttempts must already be filtered to this game type
// and include the new attempt; xp is the reward already computed for it.
func UpdateGameProgress(gp GameProgress, a ItemAttempt, gameAttempts []ItemAttempt, xp int) GameProgress {
	recentAccuracy := RecentAccuracy(gameAttempts, RecentWindow)
	avgHints := RecentAvgHints(gameAttempts, RecentWindow)

	updated := gp
	updated.TotalXP += xp
	updated.CurrentDifficulty = AdaptDifficulty(gp.CurrentDifficulty, recentAccuracy, avgHints)
	updated.RecentAccuracy = recentAccuracy
	updated.LastPlayed = a.Timestamp
	return updated
}
