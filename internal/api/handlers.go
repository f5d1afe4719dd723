package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/mastery"
	"github.com/anika/decodequest/internal/mission"
	"github.com/anika/decodequest/internal/selection"
	"github.com/anika/decodequest/internal/store"
)

type missionRound struct {
	Game        content.GameType `json:"game"`
	DisplayName string           `json:"display_name"`
	Description string           `json:"description"`
}

type missionResponse struct {
	SessionID      string         `json:"session_id"`
	SessionMinutes int            `json:"session_minutes"`
	Rounds         []missionRound `json:"rounds"`
}

func (s *Server) handleMission(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	minutes := s.pol.SessionMinutes
	if v := r.URL.Query().Get("minutes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "minutes must be a positive integer", http.StatusBadRequest)
			return
		}
		minutes = n
	}

	games := mission.Build(s.pol, s.progress.GameProgress, minutes, s.rng)
	rounds := make([]missionRound, len(games))
	for i, gt := range games {
		rounds[i] = missionRound{
			Game:        gt,
			DisplayName: content.GameDisplayName(gt),
			Description: content.GameDescription(gt),
		}
	}

	writeJSON(w, missionResponse{
		SessionID:      s.sessionID,
		SessionMinutes: minutes,
		Rounds:         rounds,
	})
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gt := content.GameType(r.URL.Query().Get("game"))
	if !gt.Valid() {
		http.Error(w, "unknown game type", http.StatusBadRequest)
		return
	}

	count := selection.ItemsPerRound
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "count must be a positive integer", http.StatusBadRequest)
			return
		}
		count = n
	}

	difficulty := s.progress.Progress(gt).CurrentDifficulty
	if v := r.URL.Query().Get("difficulty"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "difficulty must be an integer", http.StatusBadRequest)
			return
		}
		difficulty = content.Difficulty(n).Clamp()
	}

	items := selection.SelectItems(content.AllItems(), gt, difficulty,
		s.progress.SkillMasteries, s.progress.RecentAttempts, s.pol,
		count, s.now(), s.rng)

	writeJSON(w, map[string]any{
		"game":       gt,
		"difficulty": difficulty,
		"items":      items,
	})
}

type attemptRequest struct {
	ItemID        string   `json:"item_id"`
	Correct       bool     `json:"correct"`
	HintsUsed     int      `json:"hints_used"`
	TimeMs        int      `json:"time_ms"`
	UserAnswer    []string `json:"user_answer,omitempty"`
	CorrectAnswer []string `json:"correct_answer,omitempty"`
}

type attemptResponse struct {
	Score            int                   `json:"score"`
	XP               int                   `json:"xp"`
	TotalXP          int                   `json:"total_xp"`
	Mastery          mastery.SkillMastery  `json:"mastery"`
	IsGuessing       bool                  `json:"is_guessing"`
	ErrorType        string                `json:"error_type,omitempty"`
	ForceScaffold    bool                  `json:"force_scaffold"`
	ReduceDifficulty bool                  `json:"reduce_difficulty"`
	Feedback         string                `json:"feedback,omitempty"`
}

func (s *Server) handleAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	item := content.GetItem(req.ItemID)
	if item == nil {
		http.Error(w, "unknown item", http.StatusNotFound)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := item.Base()
	attempt := mastery.ItemAttempt{
		ItemID:    base.ID,
		Game:      base.Game,
		Timestamp: s.now(),
		Correct:   req.Correct,
		HintsUsed: req.HintsUsed,
		TimeMs:    req.TimeMs,
	}
	res := s.recorder.RecordAttempt(s.progress, attempt, base.Skill, base.Pattern, req.UserAnswer, req.CorrectAnswer)

	if s.events != nil {
		err := s.events.AppendAttempt(r.Context(), store.AttemptEventData{
			SessionID:   s.sessionID,
			ItemID:      base.ID,
			GameType:    string(base.Game),
			Skill:       base.Skill,
			Pattern:     base.Pattern,
			Correct:     req.Correct,
			HintsUsed:   req.HintsUsed,
			TimeMs:      req.TimeMs,
			Score:       res.Score,
			XP:          res.XP,
			ErrorType:   string(res.Detection.ErrorType),
			WasGuessing: res.Detection.IsGuessing,
			Timestamp:   attempt.Timestamp,
		})
		if err != nil {
			http.Error(w, "persist attempt: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, attemptResponse{
		Score:            res.Score,
		XP:               res.XP,
		TotalXP:          s.progress.TotalXP,
		Mastery:          res.Mastery,
		IsGuessing:       res.Detection.IsGuessing,
		ErrorType:        string(res.Detection.ErrorType),
		ForceScaffold:    res.Detection.ForceScaffold,
		ReduceDifficulty: res.Detection.ReduceDifficulty,
		Feedback:         res.Detection.Feedback,
	})
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.progress)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
