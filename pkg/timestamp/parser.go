// Package timestamp locates and parses timestamps embedded in log lines.
//
// Detection runs once against the first line of the input: it finds where
// the timestamp sits and which format it uses, and later lines are parsed
// by re-slicing that same byte range. Lines whose timestamp moved or
// changed format fail to parse and are skipped by callers.
package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxTimestampLen bounds how many bytes a detected timestamp can span.
const MaxTimestampLen = 28

// Date+time layouts seen in the wild: python logging asctime, nginx,
// rabbitmq. Parsed as naive local time and pinned to UTC.
var dateTimeLayouts = []string{
	"2006-01-02 15:04:05,000",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"02-Jan-2006::15:04:05",
}

// Time-of-day layouts (strace -t / -tt), anchored to today in UTC.
var timeLayouts = []string{
	"15:04:05",
	"15:04:05.000000",
}

// RFC 2822 allows an optional weekday and both numeric and named zones.
var rfc2822Layouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 MST",
}

// Unix epoch seconds with optional sub-second precision.
var epochRe = regexp.MustCompile(`^[0-9]{10}(\.[0-9]{1,9})?$`)

type strategy int

const (
	strategyRFC3339 strategy = iota
	strategyRFC2822
	strategyEpoch
	strategyDateTime
	strategyTimeOnly
	strategyCustom
)

// Parser extracts the timestamp of log lines that share the layout of
// the line it was detected on.
type Parser struct {
	start  int
	end    int
	kind   strategy
	layout string
}

// New builds a parser from the first log line. An empty layout means the
// format is guessed; otherwise layout is a Go reference layout that is
// located in the line by brute force.
func New(line, layout string) (*Parser, error) {
	if layout == "" {
		return NewWithGuess(line)
	}
	return NewWithFormat(line, layout)
}

// NewWithGuess detects a timestamp in the line. A leading [...] group is
// tried as a unit first; otherwise the scan starts at the first ASCII
// digit and tries progressively shorter substrings, so precision digits
// and zone info are not lost to a shorter match.
func NewWithGuess(line string) (*Parser, error) {
	if strings.HasPrefix(line, "[") {
		if x := strings.IndexByte(line, ']'); x > 0 {
			if kind, layout, ok := guess(line[1:x]); ok {
				return &Parser{start: 1, end: x, kind: kind, layout: layout}, nil
			}
		}
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			continue
		}
		for j := min(i+MaxTimestampLen, len(line)+1) - 1; j > i; j-- {
			if kind, layout, ok := guess(line[i:j]); ok {
				return &Parser{start: i, end: j, kind: kind, layout: layout}, nil
			}
		}
		break
	}
	return nil, fmt.Errorf("could not parse a timestamp in %q", line)
}

// NewWithFormat locates a timestamp matching the given Go layout by
// trying every substring of the line, longest first, capped at twice
// MaxTimestampLen. The timestamp is interpreted as UTC.
func NewWithFormat(line, layout string) (*Parser, error) {
	for i := 0; i < len(line); i++ {
		for j := min(i+2*MaxTimestampLen, len(line)+1) - 1; j > i; j-- {
			if _, err := time.ParseInLocation(layout, line[i:j], time.UTC); err == nil {
				return &Parser{start: i, end: j, kind: strategyCustom, layout: layout}, nil
			}
		}
	}
	return nil, fmt.Errorf("could not locate a %q timestamp in %q", layout, line)
}

// Parse extracts the timestamp of a line by re-slicing the detected byte
// range, clamped to the line length.
func (p *Parser) Parse(line string) (time.Time, error) {
	start := min(p.start, len(line))
	end := min(p.end, len(line))
	return p.apply(line[start:end])
}

func (p *Parser) apply(s string) (time.Time, error) {
	switch p.kind {
	case strategyRFC3339:
		return time.Parse(time.RFC3339Nano, s)
	case strategyRFC2822:
		var err error
		for _, layout := range rfc2822Layouts {
			var t time.Time
			if t, err = time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, err
	case strategyEpoch:
		return parseEpoch(s)
	case strategyDateTime, strategyCustom:
		return time.ParseInLocation(p.layout, s, time.UTC)
	case strategyTimeOnly:
		t, err := time.ParseInLocation(p.layout, s, time.UTC)
		if err != nil {
			return time.Time{}, err
		}
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unknown timestamp strategy")
}

// guess returns the highest-priority strategy able to parse s as a whole.
func guess(s string) (strategy, string, bool) {
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return strategyRFC3339, "", true
	}
	for _, layout := range rfc2822Layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return strategyRFC2822, "", true
		}
	}
	if epochRe.MatchString(s) {
		return strategyEpoch, "", true
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return strategyDateTime, layout, true
		}
	}
	for _, layout := range timeLayouts {
		if _, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return strategyTimeOnly, layout, true
		}
	}
	return 0, "", false
}

func parseEpoch(s string) (time.Time, error) {
	secsPart, fracPart, hasFrac := strings.Cut(s, ".")
	secs, err := strconv.ParseInt(secsPart, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	var nanos int64
	if hasFrac {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err == nil {
			for i := len(fracPart); i < 9; i++ {
				frac *= 10
			}
			nanos = frac
		}
	}
	return time.Unix(secs, nanos).UTC(), nil
}
