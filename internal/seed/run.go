package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/debatehub/podium/internal/adapters/spreadsheet"
	"github.com/debatehub/podium/internal/domain/model"
	"github.com/debatehub/podium/internal/domain/roster"
	"github.com/debatehub/podium/pkg/logger"
)

// Config controls a generation run.
type Config struct {
	Tournaments int
	Students    int
	Seed        uint64

	// WorkbookPath receives the generated spreadsheet.
	WorkbookPath string

	// StudentsJSONPath, when non-empty, receives the aggregated roster as a
	// JSON fallback file.
	StudentsJSONPath string
}

// DefaultConfig returns a config for a modest but varied data set.
func DefaultConfig() Config {
	return Config{
		Tournaments:  16,
		Students:     60,
		WorkbookPath: "data/debate_achievements.xlsx",
	}
}

type studentsFile struct {
	Students []model.Student `json:"students"`
}

// Run generates tournament rows, writes the workbook and, when requested,
// the parsed roster JSON next to it.
func Run(ctx context.Context, cfg Config, log logger.Logger) error {
	if cfg.Tournaments < 1 || cfg.Students < 1 {
		return fmt.Errorf("seed: tournaments and students must be positive")
	}

	runID := uuid.NewString()
	log.Info(ctx, "seed run starting",
		logger.String("runId", runID),
		logger.Int("tournaments", cfg.Tournaments),
		logger.Int("students", cfg.Students))

	gen := NewGenerator(cfg.Seed, cfg.Students)
	rows := gen.Rows(cfg.Tournaments)

	if err := os.MkdirAll(filepath.Dir(cfg.WorkbookPath), 0o750); err != nil {
		return fmt.Errorf("seed: create output directory: %w", err)
	}
	if err := spreadsheet.WriteRows(cfg.WorkbookPath, rows); err != nil {
		return fmt.Errorf("seed: write workbook: %w", err)
	}
	log.Info(ctx, "workbook written",
		logger.String("path", cfg.WorkbookPath),
		logger.Int("tournaments", cfg.Tournaments))

	if cfg.StudentsJSONPath == "" {
		return nil
	}

	reg := roster.New()
	reg.IngestRows(rows)
	payload, err := json.MarshalIndent(studentsFile{Students: reg.Students()}, "", "  ")
	if err != nil {
		return fmt.Errorf("seed: marshal roster: %w", err)
	}
	if err := os.WriteFile(cfg.StudentsJSONPath, payload, 0o600); err != nil {
		return fmt.Errorf("seed: write roster json: %w", err)
	}
	log.Info(ctx, "roster json written",
		logger.String("path", cfg.StudentsJSONPath),
		logger.Int("students", reg.Len()))
	return nil
}
