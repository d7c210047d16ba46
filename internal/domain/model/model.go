// Package model contains domain records passed between layers.
package model

import (
	"strings"
	"time"
)

// AchievementType distinguishes team placements from speaker awards.
type AchievementType string

// Achievement types recognized by the parser and scorer.
const (
	TeamAchievement    AchievementType = "team"
	SpeakerAchievement AchievementType = "speaker"
)

// Achievement is a single recognized result attributed to a student at one
// tournament. Immutable once created; owned by its Student.
type Achievement struct {
	Tournament  string          `json:"tournament"`
	Date        string          `json:"date"` // free-form, e.g. "June 8-10, 2024"
	Type        AchievementType `json:"type"`
	Description string          `json:"description"`
}

// Student is a debater identified by the composite name|school key.
// Achievements accumulate in row-processing order, not chronologically.
type Student struct {
	Name         string        `json:"name"`
	School       string        `json:"school"`
	Achievements []Achievement `json:"achievements"`
}

// Key builds the registry identity key for a student. Name and school are
// trimmed before use; the comparison stays case-sensitive.
func Key(name, school string) string {
	return strings.TrimSpace(name) + "|" + strings.TrimSpace(school)
}

// StudentRef is the identity portion of a leaderboard entry.
type StudentRef struct {
	Name   string `json:"name"`
	School string `json:"school"`
}

// ScoredAchievement is one breakdown line: an achievement plus the points it
// earned after the major-tournament multiplier.
type ScoredAchievement struct {
	Tournament  string          `json:"tournament"`
	Date        string          `json:"date"`
	Achievement string          `json:"achievement"`
	Type        AchievementType `json:"type"`
	BasePoints  int             `json:"basePoints"`
	Multiplier  int             `json:"multiplier"`
	TotalPoints int             `json:"totalPoints"`
}

// LeaderboardEntry is a ranked student with the scored breakdown behind the
// total. The week-over-week fields stay nil until the history tracker
// attaches them.
type LeaderboardEntry struct {
	Student     StudentRef          `json:"student"`
	TotalPoints int                 `json:"totalPoints"`
	Breakdown   []ScoredAchievement `json:"breakdown"`
	Rank        int                 `json:"rank"`

	PositionChange *int  `json:"positionChange,omitempty"`
	IsNew          *bool `json:"isNew,omitempty"`
	PreviousRank   *int  `json:"previousRank,omitempty"`
	PreviousPoints *int  `json:"previousPoints,omitempty"`
	PointsGained   *int  `json:"pointsGained,omitempty"`
}

// LeaderboardResult is the service-level output consumed by the API layer.
type LeaderboardResult struct {
	Entries              []LeaderboardEntry
	TotalDebaters        int
	GeneratedAt          time.Time
	PreviousSnapshotDate string // empty when no earlier week exists
	HasPositionChanges   bool
}

// SnapshotEntry is the persisted projection of one leaderboard entry.
type SnapshotEntry struct {
	StudentName string `json:"studentName"`
	School      string `json:"school"`
	Rank        int    `json:"rank"`
	TotalPoints int    `json:"totalPoints"`
}

// Snapshot is a weekly capture of the full ranked leaderboard, keyed by the
// week's Sunday. Written once per week, read-only afterward.
type Snapshot struct {
	Date        string          `json:"date"`      // the week's Sunday, RFC3339
	Timestamp   string          `json:"timestamp"` // capture time, RFC3339
	Leaderboard []SnapshotEntry `json:"leaderboard"`
}
