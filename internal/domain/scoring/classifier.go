package scoring

import (
	"regexp"
	"strings"
)

// defaultMajorTournaments are the championship tokens that earn the 2x
// multiplier: the Asian and World Schools Debating Championships.
var defaultMajorTournaments = []string{"ASDC", "WSDC"}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithMajorTournaments replaces the championship token list.
func WithMajorTournaments(tokens []string) Option {
	return func(c *Classifier) {
		cleaned := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if t := strings.TrimSpace(tok); t != "" {
				cleaned = append(cleaned, t)
			}
		}
		if len(cleaned) > 0 {
			c.majors = cleaned
		}
	}
}

// Classifier decides whether a tournament name is a championship-tier event.
type Classifier struct {
	majors  []string
	yearRes []*regexp.Regexp
}

// NewClassifier creates a classifier with configuration options.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{majors: defaultMajorTournaments}
	for _, opt := range opts {
		opt(c)
	}
	c.yearRes = make([]*regexp.Regexp, len(c.majors))
	for i, tok := range c.majors {
		// Token followed by a 4-digit 20xx year or an apostrophe-year,
		// anchored to the whole string.
		c.yearRes[i] = regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(tok) + `\s+(20\d{2}|'\d{2})$`)
	}
	return c
}

// IsMajor reports whether name, after trimming, equals a championship token
// exactly or names it with a trailing year ("WSDC 2024", "ASDC '23"). The
// match covers the full string: tournaments that merely reference the
// championship format ("Novice WSDC 2025", "Pre-WSDC Training") are not
// major.
func (c *Classifier) IsMajor(name string) bool {
	trimmed := strings.TrimSpace(name)
	for i, tok := range c.majors {
		if trimmed == tok {
			return true
		}
		if c.yearRes[i].MatchString(trimmed) {
			return true
		}
	}
	return false
}
