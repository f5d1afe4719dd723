// Package api exposes the engine to a local web front end over a small
// JSON API.
package api

import (
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/anika/decodequest/internal/profile"
	"github.com/anika/decodequest/internal/session"
	"github.com/anika/decodequest/internal/store"
)

// Config wires a Server to its collaborators. Events and Snapshots are
// optional; without them the server is memory-only.
type Config struct {
	Policy    profile.Policy
	Progress  *session.ProgressData
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Rand      *rand.Rand       // nil means a fresh source
	Now       func() time.Time // nil means time.Now
}

// Server serves the engine over HTTP for a single learner. The mutex
// upholds single-writer semantics over the progress state.
type Server struct {
	mu        sync.Mutex
	pol       profile.Policy
	progress  *session.ProgressData
	recorder  *session.Recorder
	events    store.EventRepo
	snapshots store.SnapshotRepo
	sessionID string
	rng       *rand.Rand
	now       func() time.Time
}

// NewServer builds a Server from the config, assigning a fresh session id.
func NewServer(cfg Config) *Server {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	progress := cfg.Progress
	if progress == nil {
		progress = session.NewProgressData(now())
	}
	return &Server{
		pol:       cfg.Policy,
		progress:  progress,
		recorder:  session.NewRecorder(cfg.Policy),
		events:    cfg.Events,
		snapshots: cfg.Snapshots,
		sessionID: uuid.NewString(),
		rng:       rng,
		now:       now,
	}
}

// Router returns the HTTP handler with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/mission", s.handleMission)
		r.Get("/items", s.handleItems)
		r.Post("/attempts", s.handleAttempt)
		r.Get("/progress", s.handleProgress)
	})
	return r
}
