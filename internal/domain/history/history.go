// Package history persists weekly leaderboard snapshots and computes
// week-over-week position changes. Snapshots are keyed by the most recent
// Sunday and written at most once per week.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/debatehub/podium/internal/adapters/repository"
	"github.com/debatehub/podium/internal/domain/model"
)

// weekKeyLayout formats a week's Sunday for use as a store key.
const weekKeyLayout = "2006-01-02"

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithClock overrides the time source; used by tests to pin the week.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// Tracker captures weekly snapshots into an injected store and diffs the
// current leaderboard against the most recent prior week.
type Tracker struct {
	store repository.Store
	now   func() time.Time
}

// NewTracker creates a tracker over the given snapshot store.
func NewTracker(store repository.Store, opts ...Option) *Tracker {
	t := &Tracker{store: store, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// WeekStart returns the most recent Sunday at local midnight (today when now
// is a Sunday).
func (t *Tracker) WeekStart() time.Time {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekKey formats a week's Sunday as a store key.
func WeekKey(sunday time.Time) string {
	return sunday.Format(weekKeyLayout)
}

// SaveSnapshot persists the current week's snapshot unless one is already
// recorded. Returns true when a new snapshot was written. A concurrent
// writer losing the create race is treated as the no-op case, not an error.
func (t *Tracker) SaveSnapshot(ctx context.Context, board []model.LeaderboardEntry) (bool, error) {
	sunday := t.WeekStart()
	week := WeekKey(sunday)

	exists, err := t.store.Exists(ctx, week)
	if err != nil {
		return false, fmt.Errorf("check snapshot %s: %w", week, err)
	}
	if exists {
		return false, nil
	}

	snap := model.Snapshot{
		Date:        sunday.Format(time.RFC3339),
		Timestamp:   t.now().Format(time.RFC3339),
		Leaderboard: project(board),
	}
	if err := t.store.Write(ctx, week, snap); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("save snapshot %s: %w", week, err)
	}
	return true, nil
}

// PreviousSnapshot returns the newest snapshot dated strictly before the
// current week's Sunday, or nil when no earlier week is recorded.
func (t *Tracker) PreviousSnapshot(ctx context.Context) (*model.Snapshot, error) {
	weeks, err := t.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	current := WeekKey(t.WeekStart())
	for _, week := range weeks {
		if week >= current {
			continue
		}
		snap, err := t.store.Read(ctx, week)
		if err != nil {
			return nil, fmt.Errorf("load previous snapshot: %w", err)
		}
		return &snap, nil
	}
	return nil, nil
}

// project reduces leaderboard entries to the persisted snapshot shape.
func project(board []model.LeaderboardEntry) []model.SnapshotEntry {
	out := make([]model.SnapshotEntry, len(board))
	for i, e := range board {
		out[i] = model.SnapshotEntry{
			StudentName: e.Student.Name,
			School:      e.Student.School,
			Rank:        e.Rank,
			TotalPoints: e.TotalPoints,
		}
	}
	return out
}

// PositionChanges enriches current entries against the previous snapshot.
// Matching keys on name and school together, so two students sharing a
// display name at different schools never collide. With no previous snapshot
// every entry is marked new. positionChange = previousRank - currentRank,
// positive meaning the student moved up.
func PositionChanges(board []model.LeaderboardEntry, prev *model.Snapshot) []model.LeaderboardEntry {
	out := make([]model.LeaderboardEntry, len(board))
	copy(out, board)

	if prev == nil {
		for i := range out {
			markNew(&out[i])
		}
		return out
	}

	prevByKey := make(map[string]model.SnapshotEntry, len(prev.Leaderboard))
	for _, e := range prev.Leaderboard {
		prevByKey[model.Key(e.StudentName, e.School)] = e
	}

	for i := range out {
		p, ok := prevByKey[model.Key(out[i].Student.Name, out[i].Student.School)]
		if !ok {
			markNew(&out[i])
			continue
		}
		change := p.Rank - out[i].Rank
		prevRank := p.Rank
		prevPoints := p.TotalPoints
		gained := out[i].TotalPoints - p.TotalPoints
		isNew := false

		out[i].PositionChange = &change
		out[i].IsNew = &isNew
		out[i].PreviousRank = &prevRank
		out[i].PreviousPoints = &prevPoints
		out[i].PointsGained = &gained
	}
	return out
}

func markNew(e *model.LeaderboardEntry) {
	isNew := true
	e.IsNew = &isNew
	e.PositionChange = nil
}
