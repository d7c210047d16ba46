// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/debatehub/podium/internal/adapters/repository"
	"github.com/debatehub/podium/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Leaderboard returns the ranked list; limit <= 0 means all entries.
	Leaderboard(ctx context.Context, limit int, includeHistory bool) (model.LeaderboardResult, error)

	// Students returns the aggregated roster.
	Students(ctx context.Context) ([]model.Student, error)

	// SnapshotWeeks and Snapshot expose persisted weekly captures.
	SnapshotWeeks(ctx context.Context) ([]string, error)
	Snapshot(ctx context.Context, week string) (model.Snapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	studentsHandler    *StudentsHandler
	snapshotsHandler   *SnapshotsHandler
}

// NewServer creates a new API server with all handlers. defaultLimit and
// maxLimit bound GET /leaderboard?limit.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaultLimit, maxLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		leaderboardHandler: NewLeaderboardHandler(deps, defaultLimit, maxLimit),
		studentsHandler:    NewStudentsHandler(deps),
		snapshotsHandler:   NewSnapshotsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard", RequestIDMiddleware(MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard")))
	mux.HandleFunc("/students", RequestIDMiddleware(MetricsMiddleware(s.studentsHandler.HandleGetStudents, "students")))
	mux.HandleFunc("/snapshots", RequestIDMiddleware(MetricsMiddleware(s.snapshotsHandler.HandleListSnapshots, "snapshots")))
	mux.HandleFunc("/snapshots/", RequestIDMiddleware(MetricsMiddleware(s.snapshotsHandler.HandleGetSnapshot, "snapshot")))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
