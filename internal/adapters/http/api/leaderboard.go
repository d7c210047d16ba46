// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/debatehub/podium/internal/domain/model"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context, limit int, includeHistory bool) (model.LeaderboardResult, error)
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps         LeaderboardDependencies
	defaultLimit int
	maxLimit     int
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies, defaultLimit, maxLimit int) *LeaderboardHandler {
	return &LeaderboardHandler{
		deps:         deps,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// leaderboardResponse mirrors the JSON consumed by the front-end.
type leaderboardResponse struct {
	Leaderboard          []model.LeaderboardEntry `json:"leaderboard"`
	TotalDebaters        int                      `json:"totalDebaters"`
	LastUpdated          string                   `json:"lastUpdated"`
	PreviousSnapshotDate *string                  `json:"previousSnapshotDate,omitempty"`
	HasPositionChanges   *bool                    `json:"hasPositionChanges,omitempty"`
}

// HandleGetLeaderboard handles GET /leaderboard?limit=N|all&includeHistory=bool.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limitStr == "all" {
			limit = 0
		} else {
			n, err := strconv.Atoi(limitStr)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
				return
			}
			if n > h.maxLimit {
				writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
				return
			}
			limit = n
		}
	}
	includeHistory := r.URL.Query().Get("includeHistory") == "true"

	result, err := h.deps.Leaderboard(r.Context(), limit, includeHistory)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	resp := leaderboardResponse{
		Leaderboard:   result.Entries,
		TotalDebaters: result.TotalDebaters,
		LastUpdated:   result.GeneratedAt.Format(time.RFC3339),
	}
	if includeHistory {
		prev := result.PreviousSnapshotDate
		var prevPtr *string
		if prev != "" {
			prevPtr = &prev
		}
		has := result.HasPositionChanges
		resp.PreviousSnapshotDate = prevPtr
		resp.HasPositionChanges = &has
	}
	writeJSON(w, http.StatusOK, resp)
}
