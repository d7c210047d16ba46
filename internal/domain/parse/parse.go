// Package parse extracts structured achievements from the free-text cells of
// a tournament row. Parsing never fails: lines that do not fit the expected
// shapes are dropped silently.
package parse

import (
	"regexp"
	"strings"

	"github.com/debatehub/podium/internal/domain/model"
)

// Row is the raw cell content of one tournament row.
type Row struct {
	Tournament  string
	Date        string
	TeamCell    string
	SpeakerCell string
}

// Entry links one student to one achievement description.
type Entry struct {
	Name        string
	School      string
	Description string
	Type        model.AchievementType
}

// studentEntryRE matches "Name (School)". The name group is greedy, so the
// school is always the last parenthesized group on the line and everything
// before it is the name.
var studentEntryRE = regexp.MustCompile(`^(.+)\s+\(([^()]+)\)$`)

// state tracks where the team-cell scan is within a category group.
type state int

const (
	awaitingCategory state = iota
	inCategory
)

// lineKind classifies one team-cell line.
type lineKind int

const (
	blankLine lineKind = iota
	categoryLine
	studentLine
)

// classifyLine is the single decision point for the category/student
// ambiguity: a line containing a colon is a category header only when it
// does not itself parse as a student entry.
func classifyLine(line string) lineKind {
	switch {
	case line == "":
		return blankLine
	case strings.Contains(line, ":") && !studentEntryRE.MatchString(line):
		return categoryLine
	default:
		return studentLine
	}
}

// splitEntries splits a doubles line ("Ada L. (ABC) & Ben T. (XYZ)") into
// per-student segments. Lines without "&" come back as a single segment.
func splitEntries(line string) []string {
	if !strings.Contains(line, "&") {
		return []string{line}
	}
	parts := strings.Split(line, "&")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// studentEntry extracts the trimmed name and school from one segment.
func studentEntry(segment string) (name, school string, ok bool) {
	m := studentEntryRE.FindStringSubmatch(strings.TrimSpace(segment))
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// TeamAchievements parses the team-achievements cell: category headers
// ("Champions:") followed by student-entry lines. Student lines seen before
// the first category header are dropped, as are segments that do not match
// the student pattern.
func TeamAchievements(cell string) []Entry {
	var out []Entry
	st := awaitingCategory
	category := ""

	for _, raw := range strings.Split(cell, "\n") {
		line := strings.TrimSpace(raw)
		switch classifyLine(line) {
		case blankLine:
			continue
		case categoryLine:
			category = strings.TrimSpace(strings.SplitN(line, ":", 2)[0])
			st = inCategory
		case studentLine:
			if st != inCategory {
				continue
			}
			for _, segment := range splitEntries(line) {
				name, school, ok := studentEntry(segment)
				if !ok {
					continue
				}
				out = append(out, Entry{
					Name:        name,
					School:      school,
					Description: category,
					Type:        model.TeamAchievement,
				})
			}
		}
	}
	return out
}

// SpeakerAwards parses the speaker-awards cell: one award per line in the
// form "Description: Name (School)". The split happens on the first colon;
// the student part may hold several students joined by "&".
func SpeakerAwards(cell string) []Entry {
	var out []Entry

	for _, raw := range strings.Split(cell, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		description := strings.TrimSpace(line[:idx])
		studentPart := strings.TrimSpace(line[idx+1:])

		for _, segment := range splitEntries(studentPart) {
			name, school, ok := studentEntry(segment)
			if !ok {
				continue
			}
			out = append(out, Entry{
				Name:        name,
				School:      school,
				Description: description,
				Type:        model.SpeakerAchievement,
			})
		}
	}
	return out
}

// RowEntries parses both cells of a row. Empty cells contribute nothing.
func RowEntries(r Row) []Entry {
	entries := TeamAchievements(r.TeamCell)
	return append(entries, SpeakerAwards(r.SpeakerCell)...)
}
