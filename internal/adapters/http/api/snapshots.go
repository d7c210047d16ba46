// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/debatehub/podium/internal/domain/model"
)

// SnapshotsDependencies defines the interface for snapshot reads.
type SnapshotsDependencies interface {
	SnapshotWeeks(ctx context.Context) ([]string, error)
	Snapshot(ctx context.Context, week string) (model.Snapshot, error)
}

// SnapshotsHandler handles snapshot listing and reads.
type SnapshotsHandler struct {
	deps SnapshotsDependencies
}

// NewSnapshotsHandler creates a new snapshots handler.
func NewSnapshotsHandler(deps SnapshotsDependencies) *SnapshotsHandler {
	return &SnapshotsHandler{deps: deps}
}

// weekKeyRE validates the /snapshots/{week} path parameter.
var weekKeyRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type snapshotsResponse struct {
	Weeks []string `json:"weeks"`
}

// HandleListSnapshots handles GET /snapshots requests.
func (h *SnapshotsHandler) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_snapshots"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	weeks, err := h.deps.SnapshotWeeks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snapshotsResponse{Weeks: weeks})
}

// HandleGetSnapshot handles GET /snapshots/{week} requests, where week is a
// Sunday date formatted YYYY-MM-DD.
func (h *SnapshotsHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_snapshot"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	week := strings.TrimPrefix(r.URL.Path, "/snapshots/")
	if !weekKeyRE.MatchString(week) {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	snap, err := h.deps.Snapshot(r.Context(), week)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
