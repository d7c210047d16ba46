package rank

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthDateRE extracts "<Month> <day-or-range>, <year>" from free-form
// tournament dates such as "June 8-10, 2024" or "Jan 25-26, 2025".
var monthDateRE = regexp.MustCompile(`(\w+)\s+\d+(?:-\d+)?,?\s+(\d{4})`)

var monthByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// fallbackLayouts are tried when the month-range pattern does not apply.
var fallbackLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
	time.RFC3339,
}

// parseAchievementDate resolves a free-form tournament date to a
// month-granularity time for ordering. ok is false when the string fits no
// known shape; callers treat such pairs as equal-order.
func parseAchievementDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := monthDateRE.FindStringSubmatch(s); m != nil {
		year, err := strconv.Atoi(m[2])
		if err == nil {
			month, ok := monthByName[strings.ToLower(m[1])]
			if !ok {
				month = time.January
			}
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
