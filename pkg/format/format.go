// Package format provides the number formatting and bar scaling shared by
// all termbar charts.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
)

// BarChar is the glyph repeated to draw chart bars.
const BarChar = "∎"

// Unit suffixes for human formatting, indexed by how many times the value
// is divided by 1000.
var units = []string{"", " K", " M", " G", " T", " P", " E", " Z", " Y"}

var (
	red     = color.New(color.FgRed).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
)

// Red, Green, Blue, Magenta and Cyan color a string with the palette used
// across charts. They honor the global color configuration (see cli
// --color).
func Red(s string) string     { return red(s) }
func Green(s string) string   { return green(s) }
func Blue(s string) string    { return blue(s) }
func Magenta(s string) string { return magenta(s) }
func Cyan(s string) string    { return cyan(s) }

// F64Formatter renders float64 values either with a fixed number of
// decimals or in "human" mode, where the decimals and unit suffix are
// derived from the dynamic range of the data being displayed.
type F64Formatter struct {
	decimals int
	// Number of times the value is divided by 1000 before display.
	divisor int
	suffix  string
}

// NewF64Formatter returns a formatter with a fixed number of decimals and
// no unit scaling.
func NewF64Formatter(decimals int) *F64Formatter {
	return &F64Formatter{decimals: decimals}
}

// NewF64FormatterWithRange returns a formatter tuned for values in
// [lo, hi]. Spans below 1 get extra decimals (up to 11); spans of 1000 or
// more are divided down and tagged with a K/M/G/... suffix.
//
// The magnitude is derived by truncating log10 of the span toward zero,
// not by flooring it: a span of 0.0002 must produce 6 decimals, one more
// per missing order of magnitude, capped at 8+3.
func NewF64FormatterWithRange(lo, hi float64) *F64Formatter {
	f := &F64Formatter{decimals: 3}
	span := hi - lo
	if span == 0 {
		return f
	}
	log := int(math.Log10(math.Abs(span)))
	if log <= 0 {
		f.decimals = min(-log, 8) + 3
	} else {
		f.decimals = log % 3
		f.divisor = min((log-1)/3, 5)
	}
	f.suffix = units[f.divisor]
	return f
}

// Format renders a value with the formatter's decimals, divisor and
// suffix. It is a pure function of the formatter state; non-finite values
// pass straight through fmt ("NaN", "+Inf").
func (f *F64Formatter) Format(n float64) string {
	return fmt.Sprintf("%.*f%s", f.decimals, n/math.Pow(1000, float64(f.divisor)), f.suffix)
}

// HorizontalScale maps bucket counts to bar lengths: one BarChar per
// `scale` counts, shared by every row of a chart.
type HorizontalScale struct {
	scale int
}

// NewHorizontalScale returns a scale of at least 1 count per glyph.
func NewHorizontalScale(scale int) *HorizontalScale {
	return &HorizontalScale{scale: max(1, scale)}
}

// Bar returns the colored bar for a count.
func (h *HorizontalScale) Bar(count int) string {
	return Red(strings.Repeat(BarChar, count/h.scale))
}

// Count returns the colored count, right-aligned to width digits.
func (h *HorizontalScale) Count(count, width int) string {
	return Green(fmt.Sprintf("%*d", width, count))
}

// Scale returns the number of counts represented by one glyph.
func (h *HorizontalScale) Scale() int {
	return h.scale
}

// Legend returns the "Each ∎ represents ..." header line.
func (h *HorizontalScale) Legend() string {
	return fmt.Sprintf("Each %s represents a count of %s\n", Red(BarChar), Blue(fmt.Sprintf("%d", h.scale)))
}
