// Package repository defines the snapshot store contract and its filesystem
// and in-memory implementations.
package repository

import (
	"context"

	"github.com/debatehub/podium/internal/domain/model"
)

// Store persists one leaderboard snapshot per week, keyed by the week's
// Sunday formatted as YYYY-MM-DD.
type Store interface {
	// Exists reports whether a snapshot is already recorded for week.
	Exists(ctx context.Context, week string) (bool, error)

	// Read loads the snapshot for week. Returns ErrNotFound when absent.
	Read(ctx context.Context, week string) (model.Snapshot, error)

	// Write persists the snapshot for week. Returns ErrAlreadyExists when a
	// snapshot for that week is already recorded; snapshots are never
	// overwritten.
	Write(ctx context.Context, week string, snap model.Snapshot) error

	// ListAll returns every recorded week key, newest first.
	ListAll(ctx context.Context) ([]string, error)
}
