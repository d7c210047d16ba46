package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/debatehub/podium/internal/domain/model"
)

// Snapshot file naming, matching the layout consumers already have on disk:
// snapshot-YYYY-MM-DD.json under the store directory.
const (
	snapshotPrefix = "snapshot-"
	snapshotSuffix = ".json"

	defaultDirPermission  = 0o750
	defaultFilePermission = 0o600
)

// FSStore keeps one JSON document per week under a directory.
type FSStore struct {
	dir      string
	filePerm os.FileMode
}

// Option applies a configuration option to the FSStore.
type Option func(*FSStore)

// WithFilePermission sets the mode used for newly written snapshot files.
func WithFilePermission(perm os.FileMode) Option {
	return func(s *FSStore) {
		if perm != 0 {
			s.filePerm = perm
		}
	}
}

// NewFSStore creates a filesystem store rooted at dir, creating the
// directory when needed.
func NewFSStore(dir string, opts ...Option) (*FSStore, error) {
	s := &FSStore{dir: dir, filePerm: defaultFilePermission}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, defaultDirPermission); err != nil {
		return nil, fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}
	return s, nil
}

func (s *FSStore) path(week string) string {
	return filepath.Join(s.dir, snapshotPrefix+week+snapshotSuffix)
}

// Exists reports whether a snapshot file is present for week.
func (s *FSStore) Exists(_ context.Context, week string) (bool, error) {
	_, err := os.Stat(s.path(week))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat snapshot %s: %w", week, err)
}

// Read loads and decodes the snapshot for week.
func (s *FSStore) Read(_ context.Context, week string) (model.Snapshot, error) {
	data, err := os.ReadFile(s.path(week))
	if err != nil {
		if os.IsNotExist(err) {
			return model.Snapshot{}, fmt.Errorf("week %s: %w", week, ErrNotFound)
		}
		return model.Snapshot{}, fmt.Errorf("read snapshot %s: %w", week, err)
	}
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot %s: %w: %v", week, ErrCorrupt, err)
	}
	return snap, nil
}

// Write persists the snapshot for week. The file is created with O_EXCL so a
// concurrent writer racing on the same week fails with ErrAlreadyExists
// instead of clobbering the first capture.
func (s *FSStore) Write(_ context.Context, week string, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", week, err)
	}

	f, err := os.OpenFile(s.path(week), os.O_CREATE|os.O_EXCL|os.O_WRONLY, s.filePerm)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("week %s: %w", week, ErrAlreadyExists)
		}
		return fmt.Errorf("create snapshot %s: %w", week, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write snapshot %s: %w", week, err)
	}
	return nil
}

// ListAll returns the recorded week keys, newest first. Week keys are
// ISO dates, so lexicographic order is chronological.
func (s *FSStore) ListAll(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	var weeks []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, snapshotSuffix) {
			continue
		}
		weeks = append(weeks, strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotSuffix))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks, nil
}
