// Package scoring maps achievement descriptions to base points and applies
// the major-tournament multiplier.
package scoring

import (
	"regexp"
	"strings"

	"github.com/debatehub/podium/internal/domain/model"
)

// majorMultiplier applies to every achievement at a championship-tier event.
const majorMultiplier = 2

// teamTier groups the keyword spellings that map to one point tier.
type teamTier struct {
	keywords []string
	points   int
}

// teamTiers is evaluated top down; the first substring hit wins, so a
// description containing both "finals" and "champion" scores as champion.
var teamTiers = []teamTier{
	{[]string{"champion", "winner", "won"}, 30},
	{[]string{"grand final", "gf", "finals"}, 25},
	{[]string{"semifinal", "semi-final", "sf"}, 20},
	{[]string{"quarterfinal", "quarter-final", "qf"}, 15},
	{[]string{"octofinal", "octo-final", "of", "octos"}, 10},
	{[]string{"double octofinal", "double-octofinal", "pre-octofinal", "pre octofinal"}, 5},
}

// specialSpeakerAwards are the overall/finals best-speaker variants. They are
// checked before the ranked patterns and all score top points.
var specialSpeakerAwards = []string{
	"fbs",
	"finals best speaker",
	"final's best speaker",
	"finals best",
	"best speaker",
	"obs",
	"overall best speaker",
}

const specialSpeakerPoints = 10

// speakerRank lists the accepted spellings of one speaker rank. Ranks are
// evaluated 1st through 10th; first match wins.
type speakerRank struct {
	tokens []string
	points int
}

var speakerRanks = []speakerRank{
	{[]string{"1st", "first", "1"}, 10},
	{[]string{"2nd", "second", "2"}, 9},
	{[]string{"3rd", "third", "3"}, 8},
	{[]string{"4th", "fourth", "4"}, 7},
	{[]string{"5th", "fifth", "5"}, 6},
	{[]string{"6th", "sixth", "6"}, 5},
	{[]string{"7th", "seventh", "7"}, 4},
	{[]string{"8th", "eighth", "8"}, 3},
	{[]string{"9th", "ninth", "9"}, 2},
	{[]string{"10th", "tenth", "10"}, 1},
}

// compiledRank pairs a rank regexp with its points.
type compiledRank struct {
	re     *regexp.Regexp
	points int
}

var compiledRanks = compileRanks()

// compileRanks builds one regexp per rank spelling. The rank token is
// word-boundary anchored and must eventually be followed by "best" or
// "speaker" on the same line, so a bare "3" in a school name never scores.
func compileRanks() []compiledRank {
	out := make([]compiledRank, 0, len(speakerRanks)*3)
	for _, r := range speakerRanks {
		for _, tok := range r.tokens {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `\b.*(best|speaker)`)
			out = append(out, compiledRank{re: re, points: r.points})
		}
	}
	return out
}

// TeamPoints returns the base points for a team placement description.
// Unrecognized text scores 0, which downstream drops from the breakdown.
func TeamPoints(description string) int {
	lower := strings.ToLower(description)
	for _, tier := range teamTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.points
			}
		}
	}
	return 0
}

// SpeakerPoints returns the base points for a speaker award description.
// Special overall/finals awards are checked before numbered ranks.
func SpeakerPoints(description string) int {
	lower := strings.ToLower(description)
	for _, award := range specialSpeakerAwards {
		if strings.Contains(lower, award) {
			return specialSpeakerPoints
		}
	}
	for _, r := range compiledRanks {
		if r.re.MatchString(description) {
			return r.points
		}
	}
	return 0
}

// Scorer computes points for parsed achievements.
type Scorer struct {
	classifier *Classifier
}

// NewScorer creates a scorer backed by the given tournament classifier.
func NewScorer(c *Classifier) *Scorer {
	if c == nil {
		c = NewClassifier()
	}
	return &Scorer{classifier: c}
}

// Score computes base points, multiplier, and total for one achievement.
func (s *Scorer) Score(a model.Achievement) model.ScoredAchievement {
	base := 0
	switch a.Type {
	case model.TeamAchievement:
		base = TeamPoints(a.Description)
	case model.SpeakerAchievement:
		base = SpeakerPoints(a.Description)
	}

	multiplier := 1
	if s.classifier.IsMajor(a.Tournament) {
		multiplier = majorMultiplier
	}

	return model.ScoredAchievement{
		Tournament:  a.Tournament,
		Date:        a.Date,
		Achievement: a.Description,
		Type:        a.Type,
		BasePoints:  base,
		Multiplier:  multiplier,
		TotalPoints: base * multiplier,
	}
}
