// Package seed fabricates sample rosters and tournament workbooks in the
// exact cell format the parser consumes, for local runs and demos.
package seed

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/debatehub/podium/internal/domain/parse"
)

// Tournament naming material. The decoy formats deliberately mention the
// championships without being them, so generated data exercises the
// classifier's anchored matching.
var (
	majorTokens     = []string{"ASDC", "WSDC"}
	tournamentKinds = []string{"Invitational", "Open", "Classic", "Cup", "Championship"}
	decoyFormats    = []string{"Novice %s %d", "Greater Bay Area %s %d", "Pre-%s Training Round"}

	teamCategories = []string{
		"Champions",
		"Grand Finalists",
		"Semifinalists",
		"Quarterfinalists",
		"Octofinalists",
	}
	speakerAwardNames = []string{
		"Overall Best Speaker",
		"Finals Best Speaker",
		"1st Best Speaker",
		"2nd Best Speaker",
		"3rd Best Speaker",
		"4th Best Speaker",
		"5th Best Speaker",
	}
	schoolKinds = []string{"High School", "International School", "Academy", "College"}
	monthNames  = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// student is one generated roster identity.
type student struct {
	name   string
	school string
}

// Generator produces random tournament rows from a fixed student pool.
type Generator struct {
	faker    *gofakeit.Faker
	students []student
}

// NewGenerator creates a generator. A non-zero seed makes output
// reproducible.
func NewGenerator(seedVal uint64, studentCount int) *Generator {
	f := gofakeit.New(seedVal)

	schoolCount := studentCount/6 + 1
	schools := make([]string, schoolCount)
	for i := range schools {
		schools[i] = f.City() + " " + f.RandomString(schoolKinds)
	}

	students := make([]student, studentCount)
	for i := range students {
		students[i] = student{
			name:   fmt.Sprintf("%s %c.", f.FirstName(), f.LastName()[0]),
			school: schools[f.Number(0, schoolCount-1)],
		}
	}
	return &Generator{faker: f, students: students}
}

// Rows generates tournament rows. Roughly a quarter of the tournaments are
// majors and a handful are decoys that reference a championship by name.
func (g *Generator) Rows(tournaments int) []parse.Row {
	rows := make([]parse.Row, 0, tournaments)
	for i := 0; i < tournaments; i++ {
		rows = append(rows, parse.Row{
			Tournament:  g.tournamentName(i),
			Date:        g.tournamentDate(),
			TeamCell:    g.teamCell(),
			SpeakerCell: g.speakerCell(),
		})
	}
	return rows
}

func (g *Generator) tournamentName(i int) string {
	year := g.faker.Number(2023, 2025)
	switch {
	case i%4 == 0:
		return fmt.Sprintf("%s %d", g.faker.RandomString(majorTokens), year)
	case i%7 == 0:
		format := g.faker.RandomString(decoyFormats)
		if strings.Contains(format, "%d") {
			return fmt.Sprintf(format, g.faker.RandomString(majorTokens), year)
		}
		return fmt.Sprintf(format, g.faker.RandomString(majorTokens))
	default:
		return g.faker.City() + " " + g.faker.RandomString(tournamentKinds)
	}
}

func (g *Generator) tournamentDate() string {
	day := g.faker.Number(1, 25)
	return fmt.Sprintf("%s %d-%d, %d",
		g.faker.RandomString(monthNames), day, day+2, g.faker.Number(2023, 2025))
}

func (g *Generator) pickStudent() student {
	return g.students[g.faker.Number(0, len(g.students)-1)]
}

// teamCell builds a category block: headers followed by student lines, with
// the occasional doubles line joined by "&".
func (g *Generator) teamCell() string {
	var b strings.Builder
	categories := g.faker.Number(2, 3)
	for c := 0; c < categories; c++ {
		b.WriteString(teamCategories[c] + ":\n")
		lines := g.faker.Number(1, 3)
		for l := 0; l < lines; l++ {
			first := g.pickStudent()
			if g.faker.Bool() {
				second := g.pickStudent()
				fmt.Fprintf(&b, "%s (%s) & %s (%s)\n",
					first.name, first.school, second.name, second.school)
				continue
			}
			fmt.Fprintf(&b, "%s (%s)\n", first.name, first.school)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// speakerCell builds "Award: Name (School)" lines.
func (g *Generator) speakerCell() string {
	var b strings.Builder
	awards := g.faker.Number(2, 4)
	for a := 0; a < awards; a++ {
		s := g.pickStudent()
		fmt.Fprintf(&b, "%s: %s (%s)\n", speakerAwardNames[a], s.name, s.school)
	}
	return strings.TrimRight(b.String(), "\n")
}
