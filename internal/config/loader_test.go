package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/debatehub/podium/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

// Env vars persist for the whole test function, so each scenario gets its
// own top-level test instead of sharing Convey branches.

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PODIUM_CONFIG", "")

	Convey("Given no overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.SnapshotDir, ShouldEqual, "data/leaderboard-snapshots")
			So(cfg.MajorTournaments, ShouldResemble, []string{"ASDC", "WSDC"})
			So(cfg.DefaultLeaderboardLimit, ShouldEqual, 20)
			So(cfg.MaxLeaderboardLimit, ShouldEqual, 500)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PODIUM_CONFIG", "")
	t.Setenv("PODIUM_ADDR", ":8088")
	t.Setenv("PODIUM_LOG_LEVEL", "debug")
	t.Setenv("PODIUM_SNAPSHOT_DIR", "/tmp/snapshots")

	Convey("Given environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8088")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.SnapshotDir, ShouldEqual, "/tmp/snapshots")
		})
	})
}

func TestLoadFileLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "addr: \":7070\"\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("PODIUM_CONFIG", path)
	t.Setenv("PODIUM_LOG_LEVEL", "error")

	Convey("Given a YAML file layered under env", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then file beats defaults and env beats file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "error")
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("PODIUM_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	Convey("Given a missing config file", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with a load error", func() {
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}

func TestLoadValidation(t *testing.T) {
	t.Setenv("PODIUM_CONFIG", "")
	t.Setenv("PODIUM_DEFAULT_LEADERBOARD_LIMIT", "0")

	Convey("Given an out-of-range limit", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then an invalid-config error is returned", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
