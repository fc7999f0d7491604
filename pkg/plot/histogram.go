package plot

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/termbar/termbar/pkg/format"
	"github.com/termbar/termbar/pkg/stats"
)

// Bucket is one histogram slot: a half-open value range and the number of
// samples that fell into it.
type Bucket struct {
	Lower float64
	Upper float64
	Count int
}

// HistogramOptions configures histogram construction.
type HistogramOptions struct {
	// Intervals is the number of buckets to display. It is clamped to
	// [1, len(samples)] before buckets are built.
	Intervals int
	// LogScale switches to power-of-two bucket widths over [0, max].
	// Negative samples are silently discarded in this mode, so the stats
	// header can report more samples than the buckets hold.
	LogScale bool
	// Precision is the number of decimals to display; negative selects
	// human units derived from the data range.
	Precision int
}

// Histogram partitions [min, max] into buckets and counts sample
// membership. Build it with NewHistogram, or NewHistogramWithStats plus
// Load when the range is known up front.
type Histogram struct {
	buckets  []Bucket
	step     float64
	top      int
	last     int
	stats    *stats.Stats
	logScale bool
}

// NewHistogram builds a histogram from a sample set, computing the stats
// internally. The slice is reordered (see stats.New).
func NewHistogram(vec []float64, options HistogramOptions) *Histogram {
	st := stats.New(vec, options.Precision)
	if options.LogScale {
		st.SetMin(0)
	}
	options.Intervals = clampIntervals(options.Intervals, len(vec))
	h := NewHistogramWithStats(st, options)
	h.Load(vec)
	return h
}

// NewHistogramWithStats builds an empty histogram whose buckets cover the
// range described by st. Data is added later with Load or Add.
func NewHistogramWithStats(st *stats.Stats, options HistogramOptions) *Histogram {
	intervals := max(1, options.Intervals)
	step := math.NaN()
	if !options.LogScale {
		step = (st.Max - st.Min) / float64(intervals)
	}
	return &Histogram{
		buckets:  buildBuckets(st.Min, st.Max, intervals, options.LogScale),
		step:     step,
		last:     intervals - 1,
		stats:    st,
		logScale: options.LogScale,
	}
}

// Load adds every value of a slice to the histogram.
func (h *Histogram) Load(vec []float64) {
	for _, v := range vec {
		h.Add(v)
	}
}

// Add counts a single value. Values outside [min, max] are silently
// dropped.
func (h *Histogram) Add(n float64) {
	slot, ok := h.findSlot(n)
	if !ok {
		return
	}
	h.buckets[slot].Count++
	h.top = max(h.top, h.buckets[slot].Count)
}

// Buckets exposes the bucket slice, ordered by range.
func (h *Histogram) Buckets() []Bucket {
	return h.buckets
}

// Top returns the largest bucket count.
func (h *Histogram) Top() int {
	return h.top
}

func (h *Histogram) findSlot(n float64) (int, bool) {
	if n < h.stats.Min || n > h.stats.Max {
		return 0, false
	}
	if h.logScale {
		for i := range h.buckets {
			if h.buckets[i].Upper >= n {
				return i, true
			}
		}
		return 0, false
	}
	if h.step == 0 {
		// All samples equal; everything lands in the first bucket.
		return 0, true
	}
	return min(int((n-h.stats.Min)/h.step), h.last), true
}

func buildBuckets(lo, hi float64, intervals int, logScale bool) []Bucket {
	buckets := make([]Bucket, 0, intervals)
	if logScale {
		// Widths double bucket to bucket; the first one is sized so the
		// cumulative upper bound of the last equals hi.
		firstWidth := hi / (math.Pow(2, float64(intervals)) - 1)
		lower := 0.0
		for i := 0; i < intervals; i++ {
			upper := lower + math.Pow(2, float64(i))*firstWidth
			buckets = append(buckets, Bucket{Lower: lower, Upper: upper})
			lower = upper
		}
		return buckets
	}
	step := (hi - lo) / float64(intervals)
	lower := lo
	for i := 0; i < intervals; i++ {
		buckets = append(buckets, Bucket{Lower: lower, Upper: lower + step})
		lower += step
	}
	return buckets
}

func clampIntervals(intervals, samples int) int {
	return max(1, min(intervals, samples))
}

// Render writes the stats header, the scale legend and one bar row per
// bucket, fitting bars into the given total line width.
func (h *Histogram) Render(w io.Writer, width int) error {
	if _, err := io.WriteString(w, h.stats.String()); err != nil {
		return err
	}
	f := h.stats.Formatter()
	widthRange := max(len(f.Format(h.stats.Min)), len(f.Format(h.stats.Max)))
	widthCount := len(strconv.Itoa(max(1, h.top)))
	scale := format.NewHorizontalScale(h.top / barArea(width, widthRange+widthCount))
	if _, err := fmt.Fprintf(w, "%s\n", scale.Legend()); err != nil {
		return err
	}
	for i := range h.buckets {
		b := &h.buckets[i]
		rng := format.Blue(fmt.Sprintf("%*s .. %*s",
			widthRange, f.Format(b.Lower), widthRange, f.Format(b.Upper)))
		if _, err := fmt.Fprintf(w, "[%s] [%s] %s\n",
			rng, scale.Count(b.Count, widthCount), scale.Bar(b.Count)); err != nil {
			return err
		}
	}
	return nil
}

// barArea returns how many columns are left for bars once the fixed-width
// range and count columns plus margin are taken out of the requested
// width. Falls back to 75 when the requested width is too small.
func barArea(width, fixed int) int {
	const extraChars = 10
	if width < fixed+extraChars {
		return 75
	}
	return width - fixed - extraChars
}
