package scoring_test

import (
	"testing"

	"github.com/debatehub/podium/internal/domain/model"
	scoring "github.com/debatehub/podium/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTeamPoints(t *testing.T) {
	Convey("Given team placement descriptions", t, func() {
		Convey("Then each tier maps to its base points", func() {
			So(scoring.TeamPoints("Champions"), ShouldEqual, 30)
			So(scoring.TeamPoints("Tournament Winner"), ShouldEqual, 30)
			So(scoring.TeamPoints("Grand Finalists"), ShouldEqual, 25)
			So(scoring.TeamPoints("Semifinalists"), ShouldEqual, 20)
			So(scoring.TeamPoints("Quarter-Finalists"), ShouldEqual, 15)
			So(scoring.TeamPoints("Octofinalists"), ShouldEqual, 10)
			So(scoring.TeamPoints("Double Octofinalists"), ShouldEqual, 10)
		})

		Convey("Then matching is case-insensitive", func() {
			So(scoring.TeamPoints("CHAMPIONS"), ShouldEqual, 30)
			So(scoring.TeamPoints("semiFINALISTS"), ShouldEqual, 20)
		})

		Convey("Then the first tier hit wins for mixed text", func() {
			// Contains both "finals" and "champion"; champion outranks.
			So(scoring.TeamPoints("Finals Champion"), ShouldEqual, 30)
		})

		Convey("Then unrecognized text scores zero", func() {
			So(scoring.TeamPoints("Participant"), ShouldEqual, 0)
			So(scoring.TeamPoints(""), ShouldEqual, 0)
		})
	})
}

func TestSpeakerPoints(t *testing.T) {
	Convey("Given speaker award descriptions", t, func() {
		Convey("Then special awards score top points", func() {
			So(scoring.SpeakerPoints("Overall Best Speaker"), ShouldEqual, 10)
			So(scoring.SpeakerPoints("Finals Best Speaker"), ShouldEqual, 10)
			So(scoring.SpeakerPoints("OBS"), ShouldEqual, 10)
			So(scoring.SpeakerPoints("FBS"), ShouldEqual, 10)
		})

		Convey("Then special matching runs before ranked patterns", func() {
			// "5th Best Speaker" contains "best speaker", so the special
			// table claims it ahead of the 5th-rank pattern.
			So(scoring.SpeakerPoints("5th Best Speaker"), ShouldEqual, 10)
		})

		Convey("Then ranked awards without the special phrasing score by rank", func() {
			So(scoring.SpeakerPoints("2nd Speaker"), ShouldEqual, 9)
			So(scoring.SpeakerPoints("Third speaker of the round"), ShouldEqual, 8)
			So(scoring.SpeakerPoints("Ranked 10th speaker"), ShouldEqual, 1)
		})

		Convey("Then a rank token needs best or speaker after it", func() {
			So(scoring.SpeakerPoints("1st Place Team"), ShouldEqual, 0)
			So(scoring.SpeakerPoints("Top Debater"), ShouldEqual, 0)
		})
	})
}

func TestScorer_Score(t *testing.T) {
	Convey("Given a scorer with the default classifier", t, func() {
		scorer := scoring.NewScorer(nil)

		Convey("When scoring a team achievement at a regular tournament", func() {
			scored := scorer.Score(model.Achievement{
				Tournament:  "Metro Open",
				Date:        "June 8-10, 2024",
				Type:        model.TeamAchievement,
				Description: "Quarterfinalists",
			})

			Convey("Then base points carry through with a 1x multiplier", func() {
				So(scored.BasePoints, ShouldEqual, 15)
				So(scored.Multiplier, ShouldEqual, 1)
				So(scored.TotalPoints, ShouldEqual, 15)
				So(scored.Tournament, ShouldEqual, "Metro Open")
				So(scored.Type, ShouldEqual, model.TeamAchievement)
			})
		})

		Convey("When scoring the same placement at a championship", func() {
			scored := scorer.Score(model.Achievement{
				Tournament:  "WSDC 2024",
				Type:        model.TeamAchievement,
				Description: "Quarterfinalists",
			})

			Convey("Then the total doubles", func() {
				So(scored.BasePoints, ShouldEqual, 15)
				So(scored.Multiplier, ShouldEqual, 2)
				So(scored.TotalPoints, ShouldEqual, 30)
			})
		})

		Convey("When the description is unrecognized", func() {
			scored := scorer.Score(model.Achievement{
				Tournament:  "WSDC 2024",
				Type:        model.SpeakerAchievement,
				Description: "Honorable Mention",
			})

			Convey("Then the total stays zero despite the multiplier", func() {
				So(scored.BasePoints, ShouldEqual, 0)
				So(scored.TotalPoints, ShouldEqual, 0)
			})
		})
	})
}
