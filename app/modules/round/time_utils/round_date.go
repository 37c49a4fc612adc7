// Package roundtime parses user-entered round dates. Players type things
// like "yesterday", "last saturday", or a plain date; rounds are usually
// recorded after play, so past dates are the common case.
package roundtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the wall-clock time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Parser parses round date input.
type Parser struct {
	w *when.Parser
}

// NewParser builds a parser with English and common rules.
func NewParser() *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w}
}

// ParseRoundDate resolves a user-entered date to a UTC day. Empty input means
// today. ISO dates are tried first, then natural language. Future dates are
// rejected; nobody records a round they have not played.
func (p *Parser) ParseRoundDate(input string, clock Clock) (time.Time, error) {
	now := clock.Now()
	input = strings.TrimSpace(input)

	if input == "" {
		return dayOf(now.UTC()), nil
	}

	if t, err := time.Parse("2006-01-02", input); err == nil {
		parsed := dayOf(t.UTC())
		if parsed.After(dayOf(now.UTC())) {
			return time.Time{}, fmt.Errorf("round date %s is in the future", input)
		}
		return parsed, nil
	}

	r, err := p.w.Parse(input, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse round date %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("could not recognize round date %q", input)
	}

	parsed := dayOf(r.Time.UTC())
	if parsed.After(dayOf(now.UTC())) {
		return time.Time{}, fmt.Errorf("round date %q resolves to the future", input)
	}
	return parsed, nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
