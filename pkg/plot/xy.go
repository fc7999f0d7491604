package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/termbar/termbar/pkg/format"
	"github.com/termbar/termbar/pkg/stats"
)

const dotChar = "●"

// XYPlot draws a 2d graph where each column is the average of a chunk of
// consecutive y-values and rows split [min, max] into height steps.
type XYPlot struct {
	xAxis  []float64
	yAxis  []float64
	width  int
	height int
	stats  *stats.Stats
}

// NewXYPlot builds a plot from a sample set, computing the stats
// internally. The slice is reordered (see stats.New).
func NewXYPlot(vec []float64, width, height, precision int) *XYPlot {
	// Stats sorts the samples, but columns must follow input order.
	ordered := make([]float64, len(vec))
	copy(ordered, vec)
	p := NewXYPlotWithStats(width, height, stats.New(vec, precision))
	p.Load(ordered)
	return p
}

// NewXYPlotWithStats builds an empty plot for the range described by st.
func NewXYPlotWithStats(width, height int, st *stats.Stats) *XYPlot {
	return &XYPlot{
		xAxis:  make([]float64, 0, width),
		yAxis:  make([]float64, 0, height),
		width:  width,
		height: height,
		stats:  st,
	}
}

// Load aggregates the values into columns (each the average of
// len(vec)/width consecutive values) and computes the y-axis steps.
func (p *XYPlot) Load(vec []float64) {
	p.width = min(p.width, len(vec))
	chunk := len(vec) / p.width
	for start := 0; start < len(vec); start += chunk {
		end := min(start+chunk, len(vec))
		sum := 0.0
		for _, v := range vec[start:end] {
			sum += v
		}
		p.xAxis = append(p.xAxis, sum/float64(end-start))
	}
	step := (p.stats.Max - p.stats.Min) / float64(p.height)
	for y := 0; y < p.height; y++ {
		p.yAxis = append(p.yAxis, p.stats.Min+step*float64(y))
	}
}

// XAxis exposes the column averages.
func (p *XYPlot) XAxis() []float64 {
	return p.xAxis
}

// YAxis exposes the row bounds, bottom first.
func (p *XYPlot) YAxis() []float64 {
	return p.yAxis
}

// Render writes the stats header followed by the rows, top first. A dot
// marks each column whose average falls inside the row's range.
func (p *XYPlot) Render(w io.Writer, _ int) error {
	if _, err := io.WriteString(w, p.stats.String()); err != nil {
		return err
	}
	f := p.stats.Formatter()
	yWidth := 1
	for _, v := range p.yAxis {
		yWidth = max(yWidth, len(f.Format(v)))
	}
	rows := make([]float64, len(p.yAxis))
	copy(rows, p.yAxis)
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	if err := p.renderRow(w, rows[0], math.Inf(1), yWidth, f); err != nil {
		return err
	}
	for i := 0; i+1 < len(rows); i++ {
		if err := p.renderRow(w, rows[i+1], rows[i], yWidth, f); err != nil {
			return err
		}
	}
	return nil
}

func (p *XYPlot) renderRow(w io.Writer, lo, hi float64, yWidth int, f *format.F64Formatter) error {
	cells := make([]string, len(p.xAxis))
	for i, v := range p.xAxis {
		if v >= lo && v < hi {
			cells[i] = dotChar
		} else {
			cells[i] = " "
		}
	}
	_, err := fmt.Fprintf(w, "[%s] %s\n",
		format.Blue(fmt.Sprintf("%*s", yWidth, f.Format(lo))),
		format.Red(strings.Join(cells, "")))
	return err
}
