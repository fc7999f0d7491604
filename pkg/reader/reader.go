// Package reader turns line-oriented input (files or stdin) into the
// sample sets and timestamp sets the charts consume.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/termbar/termbar/pkg/plot"
	"github.com/termbar/termbar/pkg/timestamp"
)

// Range is a half-open [Min, Max) filter over parsed values.
type Range struct {
	Min float64
	Max float64
}

func (r *Range) contains(n float64) bool {
	return n >= r.Min && n < r.Max
}

// openInput returns a reader for path, with "-" meaning stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	return fd, nil
}

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

// DataReader extracts float64 samples from input lines. With no Regex
// every line must be a plain float; with one, the value comes from the
// capture group named "value", or the first group otherwise. Lines that
// do not yield a value are skipped.
type DataReader struct {
	// Range, when set, keeps only values in [Min, Max).
	Range *Range
	// Regex, when set, selects the value within each line.
	Regex *regexp.Regexp
}

// Read collects the samples of every line of the input.
func (r *DataReader) Read(path string) ([]float64, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	var vec []float64
	scanner := newScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		n, ok := r.parseLine(line)
		if !ok {
			continue
		}
		if r.Range == nil || r.Range.contains(n) {
			vec = append(vec, n)
		}
	}
	return vec, scanner.Err()
}

func (r *DataReader) parseLine(line string) (float64, bool) {
	if r.Regex == nil {
		return parseFloat(line)
	}
	groups := r.Regex.FindStringSubmatch(line)
	if groups == nil {
		slog.Debug("regex does not match", "line", line)
		return 0, false
	}
	if i := r.Regex.SubexpIndex("value"); i >= 0 && groups[i] != "" {
		return parseFloat(groups[i])
	}
	if len(groups) > 1 {
		return parseFloat(groups[1])
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Debug("cannot parse float", "error", err, "input", s)
		return 0, false
	}
	return n, true
}

// ReadMatches counts how many input lines contain each of the given
// strings and returns the resulting MatchBar.
func (r *DataReader) ReadMatches(path string, strings []string) (*plot.MatchBar, error) {
	rows := make([]plot.MatchBarRow, len(strings))
	for i, s := range strings {
		rows[i].Label = s
	}
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	scanner := newScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		for i := range rows {
			rows[i].IncIfMatches(line)
		}
	}
	return plot.NewMatchBar(rows), scanner.Err()
}

// ReadTerms tallies the values captured by Regex (group "value" or the
// first group) across the input. lines is how many terms the resulting
// chart displays.
func (r *DataReader) ReadTerms(path string, lines int) (*plot.CommonTerms, error) {
	terms := plot.NewCommonTerms(lines)
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	scanner := newScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		groups := r.Regex.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		if i := r.Regex.SubexpIndex("value"); i >= 0 && groups[i] != "" {
			terms.Observe(groups[i])
		} else if len(groups) > 1 {
			terms.Observe(groups[1])
		}
	}
	return terms, scanner.Err()
}

// TimeReader extracts timestamps from input lines. The parsing strategy
// is detected on the first line (see package timestamp) and lines that
// fail to parse afterwards are skipped.
type TimeReader struct {
	// Regex, when set, keeps only matching lines. The first line is
	// exempt: its timestamp anchors the detection and is always kept if
	// it parses.
	Regex *regexp.Regexp
	// TSFormat is an explicit Go time layout; empty means guess.
	TSFormat string
	// Duration, when non-zero, keeps only timestamps within that window
	// after the earliest one.
	Duration time.Duration
	// EarlyStop makes Duration cut the read short at the first timestamp
	// past the window, instead of filtering after reading everything.
	EarlyStop bool
}

// Read collects the timestamps of the input. It fails when no parsing
// strategy can be detected on the first line.
func (r *TimeReader) Read(path string) ([]time.Time, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	scanner := newScanner(in)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	firstLine := scanner.Text()
	parser, err := timestamp.New(firstLine, r.TSFormat)
	if err != nil {
		return nil, fmt.Errorf("could not figure out parsing strategy: %w", err)
	}
	var vec []time.Time
	if t, err := parser.Parse(firstLine); err == nil {
		vec = append(vec, t)
	}
	var cut time.Time
	useCut := r.Duration > 0 && r.EarlyStop && len(vec) > 0
	if useCut {
		cut = vec[0].Add(r.Duration)
	}
	for scanner.Scan() {
		line := scanner.Text()
		t, err := parser.Parse(line)
		if err != nil {
			slog.Debug("skipping line without timestamp", "line", line)
			continue
		}
		if useCut && t.After(cut) {
			break
		}
		if r.Regex == nil || r.Regex.MatchString(line) {
			vec = append(vec, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !useCut && r.Duration > 0 && len(vec) > 0 {
		lo := vec[0]
		for _, t := range vec {
			if t.Before(lo) {
				lo = t
			}
		}
		hi := lo.Add(r.Duration)
		kept := vec[:0]
		for _, t := range vec {
			if !t.After(hi) {
				kept = append(kept, t)
			}
		}
		vec = kept
	}
	return vec, nil
}

// SplitTimeReader extracts (timestamp, term index) observations for a
// split time histogram. Matching is plain substring and not exclusive: a
// line containing several terms yields one observation per term.
type SplitTimeReader struct {
	Matches  []string
	TSFormat string
}

// Read collects the observations of the input. It fails when no parsing
// strategy can be detected on the first line.
func (r *SplitTimeReader) Read(path string) ([]plot.TimestampedTerm, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	scanner := newScanner(in)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	firstLine := scanner.Text()
	parser, err := timestamp.New(firstLine, r.TSFormat)
	if err != nil {
		return nil, fmt.Errorf("could not figure out parsing strategy: %w", err)
	}
	var vec []plot.TimestampedTerm
	if t, err := parser.Parse(firstLine); err == nil {
		vec = r.appendMatching(vec, t, firstLine)
	}
	for scanner.Scan() {
		line := scanner.Text()
		t, err := parser.Parse(line)
		if err != nil {
			slog.Debug("skipping line without timestamp", "line", line)
			continue
		}
		vec = r.appendMatching(vec, t, line)
	}
	return vec, scanner.Err()
}

func (r *SplitTimeReader) appendMatching(vec []plot.TimestampedTerm, t time.Time, line string) []plot.TimestampedTerm {
	for i, s := range r.Matches {
		if strings.Contains(line, s) {
			vec = append(vec, plot.TimestampedTerm{Timestamp: t, Index: i})
		}
	}
	return vec
}
