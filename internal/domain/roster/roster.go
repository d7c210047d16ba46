// Package roster maintains the canonical per-run student registry.
package roster

import (
	"strings"

	"github.com/debatehub/podium/internal/domain/model"
	"github.com/debatehub/podium/internal/domain/parse"
)

// Registry dedupes students by the name|school identity key and accumulates
// achievements in row-processing order. It lives for one parse-and-score
// pass and is discarded afterward.
type Registry struct {
	byKey map[string]*model.Student
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byKey: make(map[string]*model.Student)}
}

// AddOrGet returns the student for name|school, creating the record on first
// reference. Name and school are trimmed before use as identity.
func (r *Registry) AddOrGet(name, school string) *model.Student {
	name = strings.TrimSpace(name)
	school = strings.TrimSpace(school)
	key := model.Key(name, school)

	if s, ok := r.byKey[key]; ok {
		return s
	}
	s := &model.Student{Name: name, School: school}
	r.byKey[key] = s
	r.order = append(r.order, key)
	return s
}

// AddAchievement appends one achievement. Identical achievements are kept:
// a result reported twice in the source data is additive on purpose.
func (r *Registry) AddAchievement(s *model.Student, tournament, date, description string, t model.AchievementType) {
	s.Achievements = append(s.Achievements, model.Achievement{
		Tournament:  tournament,
		Date:        date,
		Type:        t,
		Description: description,
	})
}

// IngestRows parses every row's cells into the registry. Rows with an empty
// tournament name are skipped entirely.
func (r *Registry) IngestRows(rows []parse.Row) {
	for _, row := range rows {
		if strings.TrimSpace(row.Tournament) == "" {
			continue
		}
		for _, e := range parse.RowEntries(row) {
			s := r.AddOrGet(e.Name, e.School)
			r.AddAchievement(s, row.Tournament, row.Date, e.Description, e.Type)
		}
	}
}

// Len returns the number of distinct students.
func (r *Registry) Len() int {
	return len(r.byKey)
}

// Students returns the registry contents in first-seen order.
func (r *Registry) Students() []model.Student {
	out := make([]model.Student, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.byKey[key])
	}
	return out
}
