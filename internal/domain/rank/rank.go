// Package rank turns the student registry into a ranked leaderboard.
//
// Ordering: totalPoints DESC with dense "1224" competition ranks. Tied
// entries share the rank of the first tied position, and the next distinct
// total resumes at its 1-based position.
package rank

import (
	"sort"

	"github.com/debatehub/podium/internal/domain/model"
	"github.com/debatehub/podium/internal/domain/scoring"
)

// Generator computes scored breakdowns and dense competition ranks.
type Generator struct {
	scorer *scoring.Scorer
}

// NewGenerator creates a generator backed by the given scorer.
func NewGenerator(s *scoring.Scorer) *Generator {
	if s == nil {
		s = scoring.NewScorer(nil)
	}
	return &Generator{scorer: s}
}

// StudentPoints computes one student's total and breakdown. Achievements
// that score zero are dropped from the breakdown; the remainder is sorted by
// parsed tournament date, latest first.
func (g *Generator) StudentPoints(st model.Student) model.LeaderboardEntry {
	var breakdown []model.ScoredAchievement
	total := 0

	for _, a := range st.Achievements {
		scored := g.scorer.Score(a)
		if scored.TotalPoints <= 0 {
			continue
		}
		breakdown = append(breakdown, scored)
		total += scored.TotalPoints
	}

	sortBreakdown(breakdown)

	return model.LeaderboardEntry{
		Student:     model.StudentRef{Name: st.Name, School: st.School},
		TotalPoints: total,
		Breakdown:   breakdown,
	}
}

// Leaderboard scores every student, filters zero totals, sorts by points
// descending, and assigns dense competition ranks. A student whose only
// achievements are unrecognized text never appears.
func (g *Generator) Leaderboard(students []model.Student) []model.LeaderboardEntry {
	board := make([]model.LeaderboardEntry, 0, len(students))
	for _, st := range students {
		entry := g.StudentPoints(st)
		if entry.TotalPoints > 0 {
			board = append(board, entry)
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalPoints > board[j].TotalPoints
	})

	currentRank := 1
	previousPoints := -1
	for i := range board {
		if board[i].TotalPoints != previousPoints {
			currentRank = i + 1
		}
		board[i].Rank = currentRank
		previousPoints = board[i].TotalPoints
	}

	return board
}

// sortBreakdown orders breakdown entries latest first. A pair where either
// date is missing or unparseable keeps its relative order.
func sortBreakdown(breakdown []model.ScoredAchievement) {
	sort.SliceStable(breakdown, func(i, j int) bool {
		di, okI := parseAchievementDate(breakdown[i].Date)
		dj, okJ := parseAchievementDate(breakdown[j].Date)
		if !okI || !okJ {
			return false
		}
		return di.After(dj)
	})
}
