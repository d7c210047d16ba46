package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/debatehub/podium/internal/adapters/repository"
	"github.com/debatehub/podium/internal/adapters/spreadsheet"
	app "github.com/debatehub/podium/internal/app"
	"github.com/debatehub/podium/internal/domain/parse"
	"github.com/debatehub/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// writeFixtureWorkbook creates a small achievements workbook and returns its
// path.
func writeFixtureWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "achievements.xlsx")
	rows := []parse.Row{
		{
			Tournament:  "Metro Open",
			Date:        "June 8-10, 2024",
			TeamCell:    "Champions:\nAda L. (Northside High) & Ben T. (Westlake Academy)",
			SpeakerCell: "Best Speaker: Ada L. (Northside High)",
		},
		{
			Tournament: "WSDC 2024",
			Date:       "July 15-21, 2024",
			TeamCell:   "Semifinalists:\nAda L. (Northside High)",
		},
	}
	if err := spreadsheet.WriteRows(path, rows); err != nil {
		t.Fatalf("write fixture workbook: %v", err)
	}
	return path
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Start(t *testing.T) {
	Convey("Given a service with no readable roster source", t, func() {
		dir := t.TempDir()
		svc := app.New(
			app.WithWorkbookPath(filepath.Join(dir, "missing.xlsx")),
			app.WithStudentsJSONPath(filepath.Join(dir, "missing.json")),
			app.WithSnapshotStore(repository.NewMemStore()),
		)

		Convey("Then startup fails", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
		})
	})

	Convey("Given a JSON roster and no workbook", t, func() {
		dir := t.TempDir()
		jsonPath := filepath.Join(dir, "students.json")
		payload := `{"students":[{"name":"Ada L.","school":"Northside High","achievements":[
			{"tournament":"Metro Open","date":"June 8-10, 2024","type":"team","description":"Champions"}
		]}]}`
		So(os.WriteFile(jsonPath, []byte(payload), 0o600), ShouldBeNil)

		svc := app.New(
			app.WithWorkbookPath(filepath.Join(dir, "missing.xlsx")),
			app.WithStudentsJSONPath(jsonPath),
			app.WithSnapshotStore(repository.NewMemStore()),
		)

		Convey("Then the fallback roster loads", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			students, err := svc.Students(context.Background())
			So(err, ShouldBeNil)
			So(students, ShouldHaveLength, 1)
			So(students[0].Name, ShouldEqual, "Ada L.")
		})
	})
}

func TestService_Leaderboard(t *testing.T) {
	Convey("Given a started service over a workbook", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		svc := app.New(
			app.WithWorkbookPath(writeFixtureWorkbook(t)),
			app.WithSnapshotStore(store),
			app.WithClock(fixedClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When generating the leaderboard", func() {
			result, err := svc.Leaderboard(ctx, 0, false)

			Convey("Then totals combine team and speaker scoring", func() {
				So(err, ShouldBeNil)
				So(result.Entries, ShouldHaveLength, 2)
				// Ada: Champions 30 + Best Speaker 10 + WSDC semis 20x2.
				So(result.Entries[0].Student.Name, ShouldEqual, "Ada L.")
				So(result.Entries[0].TotalPoints, ShouldEqual, 80)
				So(result.Entries[0].Rank, ShouldEqual, 1)
				So(result.Entries[1].Student.Name, ShouldEqual, "Ben T.")
				So(result.Entries[1].TotalPoints, ShouldEqual, 30)
				So(result.TotalDebaters, ShouldEqual, 2)
			})

			Convey("Then this week's snapshot is captured", func() {
				So(err, ShouldBeNil)
				weeks, err := store.ListAll(ctx)
				So(err, ShouldBeNil)
				So(weeks, ShouldResemble, []string{"2024-06-09"})
			})
		})

		Convey("When applying a limit", func() {
			result, err := svc.Leaderboard(ctx, 1, false)

			Convey("Then entries truncate but the total does not", func() {
				So(err, ShouldBeNil)
				So(result.Entries, ShouldHaveLength, 1)
				So(result.TotalDebaters, ShouldEqual, 2)
			})
		})

		Convey("When including history with no earlier week", func() {
			result, err := svc.Leaderboard(ctx, 0, true)

			Convey("Then every entry is new and no previous date is set", func() {
				So(err, ShouldBeNil)
				So(result.PreviousSnapshotDate, ShouldBeEmpty)
				So(result.HasPositionChanges, ShouldBeFalse)
				for _, e := range result.Entries {
					So(e.IsNew, ShouldNotBeNil)
					So(*e.IsNew, ShouldBeTrue)
				}
			})
		})
	})

	Convey("Given an unstarted service", t, func() {
		svc := app.New()

		Convey("Then operations report not started", func() {
			_, err := svc.Leaderboard(context.Background(), 0, false)
			So(err, ShouldWrap, app.ErrNotStarted)

			_, err = svc.Students(context.Background())
			So(err, ShouldWrap, app.ErrNotStarted)

			_, err = svc.SnapshotWeeks(context.Background())
			So(err, ShouldWrap, app.ErrNotStarted)
		})
	})
}

func TestService_History(t *testing.T) {
	Convey("Given a service with a prior week's snapshot", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		clock := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC) // week of 2024-06-02

		first := app.New(
			app.WithWorkbookPath(writeFixtureWorkbook(t)),
			app.WithSnapshotStore(store),
			app.WithClock(fixedClock(clock)),
		)
		So(first.Start(ctx), ShouldBeNil)
		_, err := first.Leaderboard(ctx, 0, false)
		So(err, ShouldBeNil)
		first.Stop()

		// A week later the same data is served again.
		second := app.New(
			app.WithWorkbookPath(writeFixtureWorkbook(t)),
			app.WithSnapshotStore(store),
			app.WithClock(fixedClock(clock.AddDate(0, 0, 7))),
		)
		So(second.Start(ctx), ShouldBeNil)
		defer second.Stop()

		Convey("When generating with history", func() {
			result, err := second.Leaderboard(ctx, 0, true)

			Convey("Then diffs run against the prior week", func() {
				So(err, ShouldBeNil)
				So(result.HasPositionChanges, ShouldBeTrue)
				So(result.PreviousSnapshotDate, ShouldNotBeEmpty)

				top := result.Entries[0]
				So(top.PositionChange, ShouldNotBeNil)
				So(*top.PositionChange, ShouldEqual, 0)
				So(*top.PreviousRank, ShouldEqual, 1)
				So(*top.PointsGained, ShouldEqual, 0)
			})

			Convey("Then both weeks are now recorded", func() {
				So(err, ShouldBeNil)
				weeks, err := store.ListAll(ctx)
				So(err, ShouldBeNil)
				So(weeks, ShouldResemble, []string{"2024-06-09", "2024-06-02"})
			})
		})
	})
}

func TestService_GetStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := app.New(
			app.WithWorkbookPath(writeFixtureWorkbook(t)),
			app.WithSnapshotStore(repository.NewMemStore()),
			app.WithClock(fixedClock(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC))),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			Convey("Then counts reflect the loaded roster", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["students"], ShouldEqual, 2)
				So(stats["achievements"], ShouldEqual, 4)
			})
		})
	})
}
