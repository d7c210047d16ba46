// Package app provides the core business service that implements the
// dependencies required by the HTTP API: roster loading, leaderboard
// generation, and weekly history tracking as one synchronous pipeline.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/debatehub/podium/internal/adapters/repository"
	"github.com/debatehub/podium/internal/adapters/spreadsheet"
	"github.com/debatehub/podium/internal/domain/history"
	"github.com/debatehub/podium/internal/domain/model"
	"github.com/debatehub/podium/internal/domain/rank"
	"github.com/debatehub/podium/internal/domain/roster"
	"github.com/debatehub/podium/internal/domain/scoring"
	"github.com/debatehub/podium/pkg/logger"
	"github.com/debatehub/podium/pkg/metrics"
)

// ErrNotStarted is returned when the service is used before Start.
var ErrNotStarted = errors.New("service not started")

// Service implements the API dependencies for the leaderboard system.
type Service struct {
	mu sync.RWMutex

	// Core components
	students  []model.Student
	generator *rank.Generator
	tracker   *history.Tracker
	store     repository.Store

	// Configuration
	workbookPath     string
	studentsJSONPath string
	snapshotDir      string
	majorTournaments []string
	clock            func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkbookPath sets the achievements spreadsheet location.
func WithWorkbookPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.workbookPath = path
		}
	}
}

// WithStudentsJSONPath sets the fallback roster file location.
func WithStudentsJSONPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.studentsJSONPath = path
		}
	}
}

// WithSnapshotDir sets the weekly snapshot directory.
func WithSnapshotDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.snapshotDir = dir
		}
	}
}

// WithMajorTournaments sets the championship tokens scoring at 2x.
func WithMajorTournaments(tokens []string) Option {
	return func(s *Service) {
		if len(tokens) > 0 {
			s.majorTournaments = tokens
		}
	}
}

// WithSnapshotStore injects a snapshot store, replacing the filesystem
// store built from SnapshotDir. Used by tests.
func WithSnapshotStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithClock overrides the time source used for week keys and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workbookPath:     "data/debate_achievements.xlsx",
		studentsJSONPath: "data/students.json",
		snapshotDir:      "data/leaderboard-snapshots",
		majorTournaments: []string{"ASDC", "WSDC"},
		clock:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the roster and wires the scoring pipeline. A roster that can
// be read from neither the workbook nor the fallback JSON is a precondition
// failure and aborts startup.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	classifier := scoring.NewClassifier(scoring.WithMajorTournaments(s.majorTournaments))
	s.generator = rank.NewGenerator(scoring.NewScorer(classifier))

	if s.store == nil {
		store, err := repository.NewFSStore(s.snapshotDir)
		if err != nil {
			return fmt.Errorf("snapshot store: %w", err)
		}
		s.store = store
	}
	s.tracker = history.NewTracker(s.store, history.WithClock(s.clock))

	students, err := s.loadRoster(ctx)
	if err != nil {
		return err
	}
	s.students = students
	s.started = true

	metrics.UpdateStudentsTotal(len(students))
	s.logger.Info(ctx, "leaderboard service started",
		logger.Int("students", len(students)),
		logger.String("snapshotDir", s.snapshotDir),
	)
	return nil
}

// Stop releases the service. The pipeline holds no background resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "leaderboard service stopped")
}

// loadRoster ingests the workbook, falling back to the students JSON file.
func (s *Service) loadRoster(ctx context.Context) ([]model.Student, error) {
	rows, wbErr := spreadsheet.ReadRows(s.workbookPath)
	if wbErr == nil {
		reg := roster.New()
		reg.IngestRows(rows)
		students := reg.Students()
		for range rows {
			metrics.RecordRowParsed()
		}
		for _, st := range students {
			for _, a := range st.Achievements {
				metrics.RecordAchievementParsed(string(a.Type))
			}
		}
		s.logger.Info(ctx, "roster loaded from workbook",
			logger.String("path", s.workbookPath),
			logger.Int("rows", len(rows)),
			logger.Int("students", len(students)),
		)
		return students, nil
	}

	s.logger.Warn(ctx, "workbook unavailable, trying students JSON",
		logger.String("path", s.workbookPath),
		logger.Error(wbErr),
	)

	students, jsonErr := loadStudentsJSON(s.studentsJSONPath)
	if jsonErr != nil {
		return nil, fmt.Errorf("no roster source: workbook: %v; json: %w", wbErr, jsonErr)
	}
	s.logger.Info(ctx, "roster loaded from JSON",
		logger.String("path", s.studentsJSONPath),
		logger.Int("students", len(students)),
	)
	return students, nil
}

// studentsFile mirrors the on-disk roster JSON shape.
type studentsFile struct {
	Students []model.Student `json:"students"`
}

func loadStudentsJSON(path string) ([]model.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read students file: %w", err)
	}
	var f studentsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode students file: %w", err)
	}
	return f.Students, nil
}

// Leaderboard generates the ranked list, best-effort persists this week's
// snapshot, and attaches week-over-week changes when includeHistory is set.
// limit <= 0 returns the full list. History failures degrade the result
// (no diff fields) but never invalidate the ranking.
func (s *Service) Leaderboard(ctx context.Context, limit int, includeHistory bool) (model.LeaderboardResult, error) {
	s.mu.RLock()
	started := s.started
	students := s.students
	s.mu.RUnlock()

	if !started {
		return model.LeaderboardResult{}, ErrNotStarted
	}

	start := s.clock()
	board := s.generator.Leaderboard(students)
	metrics.RecordLeaderboardGeneration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateLeaderboardEntries(len(board))

	total := len(board)

	if wrote, err := s.tracker.SaveSnapshot(ctx, board); err != nil {
		metrics.RecordSnapshotWriteError()
		s.logger.Warn(ctx, "weekly snapshot save failed", logger.Error(err))
	} else if wrote {
		metrics.RecordSnapshotWrite()
	}

	var previousDate string
	hasChanges := false
	if includeHistory {
		prev, err := s.tracker.PreviousSnapshot(ctx)
		if err != nil {
			s.logger.Warn(ctx, "previous snapshot unavailable", logger.Error(err))
		} else {
			board = history.PositionChanges(board, prev)
			if prev != nil {
				previousDate = prev.Date
				hasChanges = true
			}
		}
	}

	if limit > 0 && limit < len(board) {
		board = board[:limit]
	}

	return model.LeaderboardResult{
		Entries:              board,
		TotalDebaters:        total,
		GeneratedAt:          s.clock(),
		PreviousSnapshotDate: previousDate,
		HasPositionChanges:   hasChanges,
	}, nil
}

// Students returns the roster sorted by name, then school.
func (s *Service) Students(_ context.Context) ([]model.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	out := make([]model.Student, len(s.students))
	copy(out, s.students)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].School < out[j].School
	})
	return out, nil
}

// SnapshotWeeks lists persisted snapshot week keys, newest first.
func (s *Service) SnapshotWeeks(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	store := s.store
	started := s.started
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}
	return store.ListAll(ctx)
}

// Snapshot loads one persisted weekly snapshot.
func (s *Service) Snapshot(ctx context.Context, week string) (model.Snapshot, error) {
	s.mu.RLock()
	store := s.store
	started := s.started
	s.mu.RUnlock()
	if !started {
		return model.Snapshot{}, ErrNotStarted
	}
	return store.Read(ctx, week)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievements := 0
	for _, st := range s.students {
		achievements += len(st.Achievements)
	}

	stats := map[string]interface{}{
		"started":      s.started,
		"students":     len(s.students),
		"achievements": achievements,
	}
	if s.started {
		if weeks, err := s.store.ListAll(context.Background()); err == nil {
			stats["snapshotWeeks"] = len(weeks)
		}
	}
	return stats
}
