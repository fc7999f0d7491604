package plot

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/termbar/termbar/pkg/format"
)

// CommonTerms plots the most frequent terms seen in the input. It is
// created empty and fed with Observe.
type CommonTerms struct {
	Terms map[string]int
	lines int
}

// NewCommonTerms returns an empty set that will display at most `lines`
// terms.
func NewCommonTerms(lines int) *CommonTerms {
	return &CommonTerms{Terms: make(map[string]int), lines: lines}
}

// Observe counts one occurrence of a term.
func (c *CommonTerms) Observe(term string) {
	c.Terms[term]++
}

// Render writes the scale legend and one bar row per displayed term,
// most frequent first. Ties are broken alphabetically so output is
// stable.
func (c *CommonTerms) Render(w io.Writer, width int) error {
	if len(c.Terms) == 0 {
		_, err := io.WriteString(w, "No data\n")
		return err
	}
	type termCount struct {
		term  string
		count int
	}
	counts := make([]termCount, 0, len(c.Terms))
	for term, count := range c.Terms {
		counts = append(counts, termCount{term, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].term < counts[j].term
	})
	shown := counts[:min(c.lines, len(counts))]
	labelWidth := 1
	for _, tc := range shown {
		labelWidth = max(labelWidth, len(tc.term))
	}
	divisor := max(1, counts[0].count/max(1, width))
	widthCount := len(strconv.Itoa(counts[0].count))
	if _, err := fmt.Fprintf(w, "Each %s represents a count of %s\n",
		format.Red(format.BarChar), format.Blue(strconv.Itoa(divisor))); err != nil {
		return err
	}
	for _, tc := range shown {
		if _, err := fmt.Fprintf(w, "[%s] [%s] %s\n",
			format.Blue(fmt.Sprintf("%*s", labelWidth, tc.term)),
			format.Green(fmt.Sprintf("%*d", widthCount, tc.count)),
			format.Red(strings.Repeat(format.BarChar, tc.count/divisor))); err != nil {
			return err
		}
	}
	return nil
}
