package rank_test

import (
	"testing"

	"github.com/debatehub/podium/internal/domain/model"
	rank "github.com/debatehub/podium/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func student(name, school string, achievements ...model.Achievement) model.Student {
	return model.Student{Name: name, School: school, Achievements: achievements}
}

func teamResult(tournament, date, description string) model.Achievement {
	return model.Achievement{
		Tournament:  tournament,
		Date:        date,
		Type:        model.TeamAchievement,
		Description: description,
	}
}

func TestGenerator_StudentPoints(t *testing.T) {
	Convey("Given a generator with default scoring", t, func() {
		g := rank.NewGenerator(nil)

		Convey("When a student has mixed recognized and unrecognized results", func() {
			entry := g.StudentPoints(student("Ada L.", "Northside High",
				teamResult("Metro Open", "June 8-10, 2024", "Champions"),
				teamResult("Metro Open", "June 8-10, 2024", "Participant"),
				teamResult("WSDC 2024", "July 15-21, 2024", "Semifinalists"),
			))

			Convey("Then zero-scoring achievements are dropped from the breakdown", func() {
				So(entry.Breakdown, ShouldHaveLength, 2)
				So(entry.TotalPoints, ShouldEqual, 30+40)
			})

			Convey("Then the breakdown is sorted latest first", func() {
				So(entry.Breakdown[0].Tournament, ShouldEqual, "WSDC 2024")
				So(entry.Breakdown[1].Tournament, ShouldEqual, "Metro Open")
			})
		})

		Convey("When dates are unparseable", func() {
			entry := g.StudentPoints(student("Ada L.", "Northside High",
				teamResult("First Event", "sometime last spring", "Champions"),
				teamResult("Second Event", "???", "Semifinalists"),
			))

			Convey("Then the original order is kept", func() {
				So(entry.Breakdown[0].Tournament, ShouldEqual, "First Event")
				So(entry.Breakdown[1].Tournament, ShouldEqual, "Second Event")
			})
		})
	})
}

func TestGenerator_Leaderboard(t *testing.T) {
	Convey("Given students with distinct and tied totals", t, func() {
		g := rank.NewGenerator(nil)
		students := []model.Student{
			student("Ada L.", "Northside High",
				teamResult("Metro Open", "June 8-10, 2024", "Champions"),
				teamResult("City Cup", "May 3-5, 2024", "Grand Finalists"),
			), // 55
			student("Ben T.", "Westlake Academy",
				teamResult("Metro Open", "June 8-10, 2024", "Champions"),
				teamResult("City Cup", "May 3-5, 2024", "Grand Finalists"),
			), // 55
			student("Cara M.", "Eastview College",
				teamResult("Metro Open", "June 8-10, 2024", "Semifinalists"),
			), // 20
			student("Dan R.", "Southgate High",
				teamResult("Metro Open", "June 8-10, 2024", "Participant"),
			), // 0
		}

		Convey("When generating the leaderboard", func() {
			board := g.Leaderboard(students)

			Convey("Then zero scorers never appear", func() {
				So(board, ShouldHaveLength, 3)
			})

			Convey("Then ties share a dense rank and the next resumes by position", func() {
				So(board[0].Rank, ShouldEqual, 1)
				So(board[1].Rank, ShouldEqual, 1)
				So(board[2].Rank, ShouldEqual, 3)
			})

			Convey("Then tied entries keep input order", func() {
				So(board[0].Student.Name, ShouldEqual, "Ada L.")
				So(board[1].Student.Name, ShouldEqual, "Ben T.")
			})
		})

		Convey("When no student scores", func() {
			board := g.Leaderboard([]model.Student{students[3]})

			Convey("Then the board is empty", func() {
				So(board, ShouldBeEmpty)
			})
		})
	})
}
