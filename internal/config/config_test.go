package config_test

import (
	"testing"

	config "github.com/debatehub/podium/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then every field carries a usable default", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.WorkbookPath, ShouldEqual, "data/debate_achievements.xlsx")
			So(cfg.StudentsJSONPath, ShouldEqual, "data/students.json")
			So(cfg.SnapshotDir, ShouldEqual, "data/leaderboard-snapshots")
			So(cfg.MajorTournaments, ShouldResemble, []string{"ASDC", "WSDC"})
			So(cfg.DefaultLeaderboardLimit, ShouldEqual, 20)
			So(cfg.MaxLeaderboardLimit, ShouldBeGreaterThanOrEqualTo, cfg.DefaultLeaderboardLimit)
		})
	})
}
