// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/debatehub/podium/internal/domain/model"
)

// StudentsDependencies defines the interface for roster reads.
type StudentsDependencies interface {
	Students(ctx context.Context) ([]model.Student, error)
}

// StudentsHandler handles roster requests.
type StudentsHandler struct {
	deps StudentsDependencies
}

// NewStudentsHandler creates a new students handler.
func NewStudentsHandler(deps StudentsDependencies) *StudentsHandler {
	return &StudentsHandler{deps: deps}
}

type studentsResponse struct {
	Students []model.Student `json:"students"`
}

// HandleGetStudents handles GET /students requests.
func (h *StudentsHandler) HandleGetStudents(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_students"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	students, err := h.deps.Students(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, studentsResponse{Students: students})
}
