package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/debatehub/podium/internal/domain/model"
)

// MemStore is an in-memory Store for tests and single-process use.
type MemStore struct {
	mu    sync.RWMutex
	snaps map[string]model.Snapshot
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snaps: make(map[string]model.Snapshot)}
}

// Exists reports whether a snapshot is recorded for week.
func (s *MemStore) Exists(_ context.Context, week string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.snaps[week]
	return ok, nil
}

// Read returns the snapshot for week.
func (s *MemStore) Read(_ context.Context, week string) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[week]
	if !ok {
		return model.Snapshot{}, fmt.Errorf("week %s: %w", week, ErrNotFound)
	}
	return snap, nil
}

// Write records the snapshot for week, refusing overwrites.
func (s *MemStore) Write(_ context.Context, week string, snap model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snaps[week]; ok {
		return fmt.Errorf("week %s: %w", week, ErrAlreadyExists)
	}
	s.snaps[week] = snap
	return nil
}

// ListAll returns recorded week keys, newest first.
func (s *MemStore) ListAll(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	weeks := make([]string, 0, len(s.snaps))
	for week := range s.snaps {
		weeks = append(weeks, week)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks, nil
}
