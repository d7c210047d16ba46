// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's error kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// WorkbookPath points at the achievements spreadsheet.
	WorkbookPath string `koanf:"workbook_path"`

	// StudentsJSONPath is the fallback roster file used when the workbook
	// is absent.
	StudentsJSONPath string `koanf:"students_json_path"`

	// SnapshotDir holds the weekly leaderboard snapshot files.
	SnapshotDir string `koanf:"snapshot_dir"`

	// MajorTournaments lists championship tokens that score at 2x.
	MajorTournaments []string `koanf:"major_tournaments"`

	// DefaultLeaderboardLimit applies when GET /leaderboard omits ?limit.
	DefaultLeaderboardLimit int `koanf:"default_leaderboard_limit"`

	// MaxLeaderboardLimit caps numeric GET /leaderboard?limit values.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		Addr:                    ":9080",
		WorkbookPath:            "data/debate_achievements.xlsx",
		StudentsJSONPath:        "data/students.json",
		SnapshotDir:             "data/leaderboard-snapshots",
		MajorTournaments:        []string{"ASDC", "WSDC"},
		DefaultLeaderboardLimit: 20,
		MaxLeaderboardLimit:     500,
	}
}
