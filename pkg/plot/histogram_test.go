package plot

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/termbar/termbar/pkg/stats"
)

func render(t *testing.T, h *Histogram, width int) string {
	t.Helper()
	color.NoColor = true
	var b strings.Builder
	if err := h.Render(&b, width); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func TestHistogramBuckets(t *testing.T) {
	st := stats.New([]float64{-2.0, 14.0}, -1)
	h := NewHistogramWithStats(st, HistogramOptions{Intervals: 8})
	h.Load([]float64{-1.0, -1.1, 2.0, 2.0, 2.1, -0.9, 11.0, 11.2, 1.9, 1.99, 1.98, 1.97, 1.96})

	if h.Top() != 5 {
		t.Errorf("Top() = %d, want 5", h.Top())
	}
	buckets := h.Buckets()
	if buckets[0].Lower != -2.0 || buckets[0].Upper != 0.0 {
		t.Errorf("bucket 0 range = [%v, %v), want [-2, 0)", buckets[0].Lower, buckets[0].Upper)
	}
	if buckets[0].Count != 3 {
		t.Errorf("bucket 0 count = %d, want 3", buckets[0].Count)
	}
	if buckets[1].Lower != 0.0 || buckets[1].Upper != 2.0 {
		t.Errorf("bucket 1 range = [%v, %v), want [0, 2)", buckets[1].Lower, buckets[1].Upper)
	}
	if buckets[1].Count != 5 {
		t.Errorf("bucket 1 count = %d, want 5", buckets[1].Count)
	}
}

func TestHistogramDropsOutOfRange(t *testing.T) {
	st := stats.New([]float64{-2.0, 4.0}, -1)
	h := NewHistogramWithStats(st, HistogramOptions{Intervals: 6})
	h.Load([]float64{-1.0, 2.0, -1.0, 2.0, 10.0, 10.0, 10.0, -10.0})
	if h.Top() != 2 {
		t.Errorf("Top() = %d, want 2", h.Top())
	}
}

func TestHistogramDisplay(t *testing.T) {
	st := stats.New([]float64{-2.0, 14.0}, 3)
	h := NewHistogramWithStats(st, HistogramOptions{Intervals: 8, Precision: 3})
	h.Load([]float64{-1.0, -1.1, 2.0, 2.0, 2.1, -0.9, 11.0, 11.2, 1.9, 1.99, 1.98, 1.97, 1.96})
	display := render(t, h, 110)
	for _, want := range []string{
		"[-2.000 ..  0.000] [3] ∎∎∎\n",
		"[ 0.000 ..  2.000] [5] ∎∎∎∎∎\n",
		"[ 2.000 ..  4.000] [3] ∎∎∎\n",
		"[ 6.000 ..  8.000] [0] \n",
		"[10.000 .. 12.000] [2] ∎∎\n",
	} {
		if !strings.Contains(display, want) {
			t.Errorf("display does not contain %q:\n%s", want, display)
		}
	}
}

func TestHistogramDisplayBadWidth(t *testing.T) {
	st := stats.New([]float64{-2.0, 14.0}, 3)
	h := NewHistogramWithStats(st, HistogramOptions{Intervals: 8, Precision: 3})
	h.Load([]float64{-1.0, -1.1, 2.0, 2.0, 2.1, -0.9, 11.0, 11.2, 1.9, 1.99, 1.98, 1.97, 1.96})
	display := render(t, h, 2)
	if !strings.Contains(display, "[-2.000 ..  0.000] [3] ∎∎∎\n") {
		t.Errorf("fallback width display wrong:\n%s", display)
	}
}

func TestHistogramDisplayHumanUnits(t *testing.T) {
	vec := []float64{
		-1.0,
		-12000000.0,
		-12000001.0,
		-12000002.0,
		-12000003.0,
		-2000000.0,
		500000.0,
		500000.0,
	}
	h := NewHistogram(vec, HistogramOptions{Intervals: 10, Precision: -1})
	display := render(t, h, 110)
	for _, want := range []string{
		"[-12.0 M .. -10.4 M] [4] ∎∎∎∎\n",
		"[ -2.6 M ..  -1.1 M] [1] ∎\n",
		"[ -1.1 M ..   0.5 M] [3] ∎∎∎\n",
		"Samples = 8; Min = -12.0 M; Max = 0.5 M",
		"Average = -6.1 M;",
	} {
		if !strings.Contains(display, want) {
			t.Errorf("display does not contain %q:\n%s", want, display)
		}
	}
}

func TestHistogramDisplayLogScale(t *testing.T) {
	vec := []float64{0.4, 0.4, 0.4, 0.4, 255.0, 0.2, 1.2, 128.0, 126.0, -7.0}
	h := NewHistogram(vec, HistogramOptions{Intervals: 8, LogScale: true, Precision: -1})
	display := render(t, h, 110)
	for _, want := range []string{
		"[  0.00 ..   1.00] [5] ∎∎∎∎∎\n",
		"[  1.00 ..   3.00] [1] ∎\n",
		"[  3.00 ..   7.00] [0]",
		"[  7.00 ..  15.00] [0]",
		"[ 15.00 ..  31.00] [0]",
		"[ 31.00 ..  63.00] [0]",
		"[ 63.00 .. 127.00] [1] ∎\n",
		"[127.00 .. 255.00] [2] ∎∎\n",
	} {
		if !strings.Contains(display, want) {
			t.Errorf("display does not contain %q:\n%s", want, display)
		}
	}
}

func TestHistogramAllEqualSamples(t *testing.T) {
	vec := []float64{5.0, 5.0, 5.0}
	h := NewHistogram(vec, HistogramOptions{Intervals: 4, Precision: -1})
	if h.Buckets()[0].Count != 3 {
		t.Errorf("bucket 0 count = %d, want 3", h.Buckets()[0].Count)
	}
	if h.Top() != 3 {
		t.Errorf("Top() = %d, want 3", h.Top())
	}
}
