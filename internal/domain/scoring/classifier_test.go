package scoring_test

import (
	"testing"

	scoring "github.com/debatehub/podium/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassifier_IsMajor(t *testing.T) {
	Convey("Given a classifier with the default championship tokens", t, func() {
		c := scoring.NewClassifier()

		Convey("Then exact token names are major", func() {
			So(c.IsMajor("ASDC"), ShouldBeTrue)
			So(c.IsMajor("WSDC"), ShouldBeTrue)
			So(c.IsMajor("  WSDC  "), ShouldBeTrue)
		})

		Convey("Then a token with a trailing year is major", func() {
			So(c.IsMajor("WSDC 2024"), ShouldBeTrue)
			So(c.IsMajor("ASDC 2023"), ShouldBeTrue)
			So(c.IsMajor("ASDC '23"), ShouldBeTrue)
			So(c.IsMajor("wsdc 2024"), ShouldBeTrue)
		})

		Convey("Then mentioning the championship is not being it", func() {
			So(c.IsMajor("Novice WSDC 2025"), ShouldBeFalse)
			So(c.IsMajor("Pre-WSDC Training"), ShouldBeFalse)
			So(c.IsMajor("Greater Bay Area WSDC 2024"), ShouldBeFalse)
			So(c.IsMajor("WSDC 2024 Qualifier"), ShouldBeFalse)
		})

		Convey("Then unrelated names are not major", func() {
			So(c.IsMajor("Metro Open"), ShouldBeFalse)
			So(c.IsMajor(""), ShouldBeFalse)
		})
	})

	Convey("Given a classifier with custom tokens", t, func() {
		c := scoring.NewClassifier(scoring.WithMajorTournaments([]string{"EUDC", " "}))

		Convey("Then the custom token replaces the defaults", func() {
			So(c.IsMajor("EUDC"), ShouldBeTrue)
			So(c.IsMajor("EUDC 2025"), ShouldBeTrue)
			So(c.IsMajor("WSDC"), ShouldBeFalse)
		})
	})
}
