package plot

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/termbar/termbar/pkg/format"
)

// termColors is the fixed palette cycling over the split terms; it caps
// the number of terms a split histogram can track.
var termColors = []func(string) string{
	format.Red, format.Blue, format.Magenta, format.Green, format.Cyan,
}

// MaxSplitTerms is the largest number of terms a SplitTimeHistogram can
// display, bounded by the color palette.
const MaxSplitTerms = 5

// TimestampedTerm is one observation for a split time histogram: when a
// term occurred and which term it was, as an index into the term list.
type TimestampedTerm struct {
	Timestamp time.Time
	Index     int
}

type splitBucket struct {
	start  time.Time
	counts []int
}

func (b *splitBucket) total() int {
	t := 0
	for _, c := range b.counts {
		t += c
	}
	return t
}

// SplitTimeHistogram plots the frequency of a set of terms over time,
// one count column and bar segment per term in each time bucket.
type SplitTimeHistogram struct {
	buckets []splitBucket
	terms   []string
	min     time.Time
	max     time.Time
	span    time.Duration
	last    int
	micros  int64
}

// NewSplitTimeHistogram builds a histogram of the given size from the
// term list and a non-empty set of observations.
func NewSplitTimeHistogram(size int, terms []string, ts []TimestampedTerm) *SplitTimeHistogram {
	size = max(1, size)
	lo, hi := ts[0].Timestamp, ts[0].Timestamp
	for _, x := range ts {
		if x.Timestamp.Before(lo) {
			lo = x.Timestamp
		}
		if x.Timestamp.After(hi) {
			hi = x.Timestamp
		}
	}
	span := hi.Sub(lo)
	inc := span / time.Duration(size)
	buckets := make([]splitBucket, 0, size)
	for i := 0; i < size; i++ {
		buckets = append(buckets, splitBucket{
			start:  lo.Add(inc * time.Duration(i)),
			counts: make([]int, len(terms)),
		})
	}
	h := &SplitTimeHistogram{
		buckets: buckets,
		terms:   terms,
		min:     lo,
		max:     hi,
		span:    span,
		last:    size - 1,
		micros:  span.Microseconds(),
	}
	h.Load(ts)
	return h
}

// Load adds every observation of a slice to the histogram.
func (h *SplitTimeHistogram) Load(ts []TimestampedTerm) {
	for _, x := range ts {
		h.Add(x.Timestamp, x.Index)
	}
}

// Add counts one term occurrence, silently discarding it when outside
// the initial time range.
func (h *SplitTimeHistogram) Add(t time.Time, index int) {
	slot, ok := h.findSlot(t)
	if !ok {
		return
	}
	h.buckets[slot].counts[index]++
}

func (h *SplitTimeHistogram) findSlot(t time.Time) (int, bool) {
	if t.Before(h.min) || t.After(h.max) {
		return 0, false
	}
	if h.micros == 0 {
		return 0, true
	}
	elapsed := t.Sub(h.min).Microseconds()
	return min(int(elapsed*int64(len(h.buckets))/h.micros), h.last), true
}

// Render writes the overall and per-term totals, the scale legend and
// one row per bucket with term counts separated by slashes and bar
// segments colored by term.
func (h *SplitTimeHistogram) Render(w io.Writer, width int) error {
	total, top := 0, 0
	for i := range h.buckets {
		t := h.buckets[i].total()
		total += t
		top = max(top, t)
	}
	scale := format.NewHorizontalScale(top / max(1, width))
	if _, err := fmt.Fprintf(w, "Matches: %d.\n", total); err != nil {
		return err
	}
	for i, term := range h.terms {
		sum := 0
		for j := range h.buckets {
			sum += h.buckets[j].counts[i]
		}
		if _, err := fmt.Fprintf(w, "%s: %d.\n", termColors[i](term), sum); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n", scale.Legend()); err != nil {
		return err
	}
	widths := make([]int, len(h.terms))
	for i := range h.terms {
		for j := range h.buckets {
			widths[i] = max(widths[i], len(strconv.Itoa(h.buckets[j].counts[i])))
		}
	}
	layout := dateFormatString(h.span)
	for i := range h.buckets {
		if err := h.renderRow(w, &h.buckets[i], scale.Scale(), widths, layout); err != nil {
			return err
		}
	}
	return nil
}

func (h *SplitTimeHistogram) renderRow(w io.Writer, row *splitBucket, divisor int, widths []int, layout string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] [", format.Blue(row.start.Format(layout)))
	for i := range h.terms {
		b.WriteString(termColors[i](fmt.Sprintf("%*d", widths[i], row.counts[i])))
		if i < len(h.terms)-1 {
			b.WriteString("/")
		}
	}
	b.WriteString("] ")
	for i := range h.terms {
		b.WriteString(termColors[i](strings.Repeat(format.BarChar, row.counts[i]/divisor)))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
