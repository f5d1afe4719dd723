package api

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anika/decodequest/internal/content"
	"github.com/anika/decodequest/internal/profile"
	"github.com/anika/decodequest/internal/session"
)

var apiNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(Config{
		Policy:   profile.DefaultPolicy(),
		Progress: session.NewProgressData(apiNow),
		Rand:     rand.New(rand.NewPCG(1, 2)),
		Now:      func() time.Time { return apiNow },
	})
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetMission(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/api/mission", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp missionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, profile.DefaultSessionMinutes, resp.SessionMinutes)
	assert.GreaterOrEqual(t, len(resp.Rounds), 2)
	for _, round := range resp.Rounds {
		assert.True(t, round.Game.Valid())
		assert.NotEmpty(t, round.DisplayName)
	}
}

func TestGetMission_BadMinutes(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/api/mission?minutes=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetItems(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/api/items?game=sound_snap&count=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Game       content.GameType  `json:"game"`
		Difficulty int               `json:"difficulty"`
		Items      []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, content.GameSoundSnap, resp.Game)
	assert.Equal(t, 1, resp.Difficulty)
	assert.NotEmpty(t, resp.Items)
	assert.LessOrEqual(t, len(resp.Items), 5)
}

func TestGetItems_UnknownGame(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodGet, "/api/items?game=word_scramble", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostAttempt(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/attempts", attemptRequest{
		ItemID:    "ss-01",
		Correct:   true,
		HintsUsed: 0,
		TimeMs:    10_000,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp attemptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Score)
	assert.Greater(t, resp.XP, 0)
	assert.Equal(t, resp.XP, resp.TotalXP)
	assert.False(t, resp.IsGuessing)
	assert.Equal(t, 100, resp.Mastery.Mastery)

	// Progress reflects the attempt.
	rec = doJSON(t, router, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress session.ProgressData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, resp.TotalXP, progress.TotalXP)
	assert.Len(t, progress.RecentAttempts, 1)
}

func TestPostAttempt_GuessingFlagged(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	first := doJSON(t, router, http.MethodPost, "/api/attempts", attemptRequest{
		ItemID: "ss-01", Correct: false, TimeMs: 1_500,
	})
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/attempts", attemptRequest{
		ItemID: "ss-02", Correct: false, TimeMs: 2_000,
	})
	require.Equal(t, http.StatusOK, second.Code)

	var resp attemptResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.True(t, resp.IsGuessing)
	assert.True(t, resp.ForceScaffold)
	assert.True(t, resp.ReduceDifficulty)
	assert.NotEmpty(t, resp.Feedback)
}

func TestPostAttempt_UnknownItem(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.Router(), http.MethodPost, "/api/attempts", attemptRequest{
		ItemID: "nope-99", Correct: true, TimeMs: 5_000,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostAttempt_BadJSON(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
