package league

import (
	"fmt"
	"io"
	"strings"
)

const (
	headerFormat = "%-30s | %2s | %2s | %2s | %2s | %2s"
	rowFormat    = "%-30s | %2d | %2d | %2d | %2d | %2d"
)

func formatRow(t *Team) string {
	return fmt.Sprintf(rowFormat,
		t.Name,
		t.Played(),
		t.Wins,
		t.Draws,
		t.Losses,
		t.Points(),
	)
}

// RenderTable renders the header and one row per team, joined by newlines.
func RenderTable(table []*Team) string {
	rows := make([]string, 0, len(table)+1)
	rows = append(rows, fmt.Sprintf(headerFormat, "Team", "MP", "W", "D", "L", "P"))
	for _, entry := range table {
		rows = append(rows, formatRow(entry))
	}
	return strings.Join(rows, "\n")
}

// WriteTable writes the rendered table to w.
func WriteTable(w io.Writer, table []*Team) error {
	if _, err := io.WriteString(w, RenderTable(table)); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
