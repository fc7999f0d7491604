// Package stats computes summary statistics over a finite set of float64
// samples.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/termbar/termbar/pkg/format"
)

// Stats holds the summary statistics of a set of numerical values.
// Variance is the population variance. Percentiles are nearest-rank
// (sorted[len*p/100], no interpolation), which is deliberately coarse for
// small sample counts: p99 of 10 samples picks index 9, effectively p90.
type Stats struct {
	Min     float64
	Max     float64
	Avg     float64
	Var     float64
	Std     float64
	Samples int

	P50 float64
	P90 float64
	P95 float64
	P99 float64

	// Decimals to display; negative means human units chosen from the
	// data range.
	precision int
}

// New computes statistics for a non-empty sample set. precision is the
// number of decimals to display, or negative for human units.
//
// The slice is sorted in place to extract percentiles; callers must not
// rely on the original order afterwards.
func New(vec []float64, precision int) *Stats {
	s := &Stats{Min: vec[0], Max: vec[0], precision: precision}
	sum := 0.0
	for _, v := range vec {
		sum += v
	}
	s.Avg = sum / float64(len(vec))
	temp := 0.0
	for _, v := range vec {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		d := s.Avg - v
		temp += d * d
	}
	s.Var = temp / float64(len(vec))
	s.Std = math.Sqrt(s.Var)
	s.Samples = len(vec)

	sort.Float64s(vec)
	n := len(vec)
	s.P50 = vec[n/2]
	s.P90 = vec[n*9/10]
	s.P95 = vec[n*95/100]
	s.P99 = vec[n*99/100]
	return s
}

// SetMin overrides the minimum; log-scale histograms use it to clamp the
// displayed range to [0, max].
func (s *Stats) SetMin(v float64) {
	s.Min = v
}

// Formatter returns the number formatter matching the configured
// precision and the data range.
func (s *Stats) Formatter() *format.F64Formatter {
	if s.precision < 0 {
		return format.NewF64FormatterWithRange(s.Min, s.Max)
	}
	return format.NewF64Formatter(s.precision)
}

// String renders the three-line statistics header shared by the numeric
// charts. Variance and standard deviation always use 3 decimals.
func (s *Stats) String() string {
	f := s.Formatter()
	var b strings.Builder
	fmt.Fprintf(&b, "Samples = %s; Min = %s; Max = %s\n",
		format.Blue(fmt.Sprintf("%d", s.Samples)),
		format.Blue(f.Format(s.Min)),
		format.Blue(f.Format(s.Max)))
	fmt.Fprintf(&b, "Average = %s; Variance = %s; STD = %s\n",
		format.Blue(f.Format(s.Avg)),
		format.Blue(fmt.Sprintf("%.3f", s.Var)),
		format.Blue(fmt.Sprintf("%.3f", s.Std)))
	fmt.Fprintf(&b, "p50 = %s; p90 = %s; p95 = %s; p99 = %s\n",
		format.Blue(f.Format(s.P50)),
		format.Blue(f.Format(s.P90)),
		format.Blue(f.Format(s.P95)),
		format.Blue(f.Format(s.P99)))
	return b.String()
}
