package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/debatehub/podium/internal/seed"
	"github.com/debatehub/podium/pkg/logger"
)

const defaultTimeout = time.Minute

func main() {
	defaults := seed.DefaultConfig()
	var (
		tournaments = flag.Int("tournaments", defaults.Tournaments, "Number of tournaments to generate")
		students    = flag.Int("students", defaults.Students, "Size of the student pool")
		seedVal     = flag.Uint64("seed", 0, "Random seed (0 means non-deterministic)")
		out         = flag.String("out", defaults.WorkbookPath, "Output workbook path")
		rosterJSON  = flag.String("json", "", "Optional roster JSON output path")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cfg := seed.Config{
		Tournaments:      *tournaments,
		Students:         *students,
		Seed:             *seedVal,
		WorkbookPath:     *out,
		StudentsJSONPath: *rosterJSON,
	}
	if err := seed.Run(ctx, cfg, logger.Get()); err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
