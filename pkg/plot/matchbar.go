package plot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/termbar/termbar/pkg/format"
)

// MatchBarRow is a single bucket of a MatchBar: a label and how many
// input lines contained it.
type MatchBarRow struct {
	Label string
	Count int
}

// NewMatchBarRow returns a row with a zero count.
func NewMatchBarRow(label string) *MatchBarRow {
	return &MatchBarRow{Label: label}
}

// IncIfMatches bumps the count when the line contains the row's label as
// a substring.
func (r *MatchBarRow) IncIfMatches(line string) {
	if strings.Contains(line, r.Label) {
		r.Count++
	}
}

// MatchBar plots the number of occurrences of a set of fixed strings in
// the input, one bar per string, in the order they were given.
type MatchBar struct {
	Rows      []MatchBarRow
	topValues int
	topLength int
}

// NewMatchBar builds a MatchBar from already counted rows.
func NewMatchBar(rows []MatchBarRow) *MatchBar {
	m := &MatchBar{Rows: rows}
	for _, row := range rows {
		m.topLength = max(m.topLength, len(row.Label))
		m.topValues = max(m.topValues, row.Count)
	}
	return m
}

// Render writes the match total, the scale legend and one bar row per
// label.
func (m *MatchBar) Render(w io.Writer, width int) error {
	total := 0
	for i := range m.Rows {
		total += m.Rows[i].Count
	}
	scale := format.NewHorizontalScale(m.topValues / max(1, width))
	widthCount := len(strconv.Itoa(max(1, m.topValues)))
	if _, err := fmt.Fprintf(w, "Matches: %s.\n", format.Blue(fmt.Sprintf("%d", total))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", scale.Legend()); err != nil {
		return err
	}
	for i := range m.Rows {
		row := &m.Rows[i]
		if _, err := fmt.Fprintf(w, "[%s] [%s] %s\n",
			format.Blue(fmt.Sprintf("%-*s", m.topLength, row.Label)),
			scale.Count(row.Count, widthCount),
			scale.Bar(row.Count)); err != nil {
			return err
		}
	}
	return nil
}
