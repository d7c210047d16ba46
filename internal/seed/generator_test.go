package seed_test

import (
	"testing"

	"github.com/debatehub/podium/internal/domain/roster"
	seed "github.com/debatehub/podium/internal/seed"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerator_Rows(t *testing.T) {
	Convey("Given a seeded generator", t, func() {
		gen := seed.NewGenerator(42, 30)

		Convey("When generating tournament rows", func() {
			rows := gen.Rows(12)

			Convey("Then every row is complete", func() {
				So(rows, ShouldHaveLength, 12)
				for _, r := range rows {
					So(r.Tournament, ShouldNotBeEmpty)
					So(r.Date, ShouldNotBeEmpty)
					So(r.TeamCell, ShouldNotBeEmpty)
					So(r.SpeakerCell, ShouldNotBeEmpty)
				}
			})

			Convey("Then the cells parse into a non-empty roster", func() {
				reg := roster.New()
				reg.IngestRows(rows)
				So(reg.Len(), ShouldBeGreaterThan, 0)

				for _, st := range reg.Students() {
					So(st.Achievements, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When generating twice with the same seed", func() {
			a := seed.NewGenerator(7, 30).Rows(6)
			b := seed.NewGenerator(7, 30).Rows(6)

			Convey("Then the output is reproducible", func() {
				So(b, ShouldResemble, a)
			})
		})
	})
}
