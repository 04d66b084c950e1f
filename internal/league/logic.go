// internal/league/logic.go
package league

import (
	"fmt"
	"sort"
	"strings"
)

const fieldSep = ";"

// ParseOutcome maps an outcome token to an Outcome.
func ParseOutcome(token string) (Outcome, error) {
	switch o := Outcome(token); o {
	case Win, Loss, Draw:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedOutcome, token)
}

// ParseMatch parses a single "home;away;outcome" line.
func ParseMatch(line string) (Match, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 3 {
		return Match{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedRecord, len(fields))
	}
	outcome, err := ParseOutcome(fields[2])
	if err != nil {
		return Match{}, err
	}
	return Match{Home: fields[0], Away: fields[1], Outcome: outcome}, nil
}

// ParseMatches parses every result line in raw. Empty lines are skipped.
// The first bad line aborts the whole parse.
func ParseMatches(raw string) ([]*Match, error) {
	var matches []*Match
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		m, err := ParseMatch(line)
		if err != nil {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, err)
		}
		m.Line = i + 1
		matches = append(matches, &m)
	}
	return matches, nil
}

// Table accumulates team records keyed by name.
type Table struct {
	teams map[string]*Team
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{teams: make(map[string]*Team)}
}

func (t *Table) team(name string) *Team {
	if _, ok := t.teams[name]; !ok {
		t.teams[name] = &Team{Name: name}
	}
	return t.teams[name]
}

// Apply records one match result against both teams.
func (t *Table) Apply(m *Match) error {
	home, away := t.team(m.Home), t.team(m.Away)

	switch m.Outcome {
	case Win:
		home.Wins++
		away.Losses++
	case Loss:
		away.Wins++
		home.Losses++
	case Draw:
		home.Draws++
		away.Draws++
	default:
		return fmt.Errorf("%w: %q", ErrMalformedOutcome, m.Outcome)
	}
	return nil
}

// Standings returns every known team in ranking order.
func (t *Table) Standings() []*Team {
	entries := make([]*Team, 0, len(t.teams))
	for _, e := range t.teams {
		entries = append(entries, e)
	}
	SortTeams(entries)
	return entries
}

// SortTeams orders teams by points descending, then by name.
func SortTeams(entries []*Team) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points() != b.Points() {
			return a.Points() > b.Points()
		}
		return a.Name < b.Name
	})
}

// Parse tallies raw match text into sorted standings.
func Parse(raw string) ([]*Team, error) {
	matches, err := ParseMatches(raw)
	if err != nil {
		return nil, err
	}

	table := NewTable()
	for _, m := range matches {
		if err := table.Apply(m); err != nil {
			return nil, fmt.Errorf("line %d: %w", m.Line, err)
		}
	}
	return table.Standings(), nil
}

// Tally parses raw match text and renders the standings table.
func Tally(raw string) (string, error) {
	teams, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return RenderTable(teams), nil
}
