package plot

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/termbar/termbar/pkg/format"
)

// dateFormatString picks a timestamp layout for bucket labels from the
// total span of the histogram: coarse date+time layouts for long spans,
// microsecond resolution for sub-second ones.
func dateFormatString(span time.Duration) string {
	switch secs := int64(span / time.Second); {
	case secs > 86400:
		return "2006-01-02 15:04:05"
	case secs > 300:
		return "15:04:05"
	case secs > 1:
		return "15:04:05.000"
	default:
		return "15:04:05.000000"
	}
}

// TimeBucket is one slot of a time histogram: its start instant and the
// number of timestamps that fell into it.
type TimeBucket struct {
	Start time.Time
	Count int
}

// TimeHistogram partitions [min(ts), max(ts)] into equally sized time
// buckets and counts timestamp membership.
type TimeHistogram struct {
	buckets []TimeBucket
	min     time.Time
	max     time.Time
	span    time.Duration
	top     int
	last    int
	micros  int64
}

// NewTimeHistogram builds a histogram of the given size from a non-empty
// timestamp slice.
func NewTimeHistogram(size int, ts []time.Time) *TimeHistogram {
	size = max(1, size)
	lo, hi := ts[0], ts[0]
	for _, t := range ts {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	span := hi.Sub(lo)
	inc := span / time.Duration(size)
	buckets := make([]TimeBucket, 0, size)
	for i := 0; i < size; i++ {
		buckets = append(buckets, TimeBucket{Start: lo.Add(inc * time.Duration(i))})
	}
	h := &TimeHistogram{
		buckets: buckets,
		min:     lo,
		max:     hi,
		span:    span,
		last:    size - 1,
		micros:  span.Microseconds(),
	}
	h.Load(ts)
	return h
}

// Load adds every timestamp of a slice to the histogram. Timestamps
// outside the initial range are silently discarded.
func (h *TimeHistogram) Load(ts []time.Time) {
	for _, t := range ts {
		h.Add(t)
	}
}

// Add counts a single timestamp, silently discarding it when outside the
// initial range.
func (h *TimeHistogram) Add(t time.Time) {
	slot, ok := h.findSlot(t)
	if !ok {
		return
	}
	h.buckets[slot].Count++
	h.top = max(h.top, h.buckets[slot].Count)
}

// Buckets exposes the bucket slice, ordered by start time.
func (h *TimeHistogram) Buckets() []TimeBucket {
	return h.buckets
}

func (h *TimeHistogram) findSlot(t time.Time) (int, bool) {
	if t.Before(h.min) || t.After(h.max) {
		return 0, false
	}
	if h.micros == 0 {
		// All timestamps are identical; a degenerate plot rather than a
		// division by zero.
		return 0, true
	}
	elapsed := t.Sub(h.min).Microseconds()
	return min(int(elapsed*int64(len(h.buckets))/h.micros), h.last), true
}

// Render writes the match total, the scale legend and one bar row per
// bucket.
func (h *TimeHistogram) Render(w io.Writer, width int) error {
	total := 0
	for i := range h.buckets {
		total += h.buckets[i].Count
	}
	scale := format.NewHorizontalScale(h.top / max(1, width))
	widthCount := len(strconv.Itoa(max(1, h.top)))
	if _, err := fmt.Fprintf(w, "Matches: %s.\n", format.Blue(fmt.Sprintf("%d", total))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", scale.Legend()); err != nil {
		return err
	}
	layout := dateFormatString(h.span)
	for i := range h.buckets {
		b := &h.buckets[i]
		if _, err := fmt.Fprintf(w, "[%s] [%s] %s\n",
			format.Blue(b.Start.Format(layout)),
			scale.Count(b.Count, widthCount),
			scale.Bar(b.Count)); err != nil {
			return err
		}
	}
	return nil
}
