package timestamp

import (
	"testing"
	"time"
)

func mustRFC3339(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parsing %q: %v", s, err)
	}
	return ts
}

func parseOK(t *testing.T, p *Parser, line string) time.Time {
	t.Helper()
	ts, err := p.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return ts
}

func TestGuessRFC3339Brackets(t *testing.T) {
	p, err := NewWithGuess("[1996-12-19T16:39:57-08:00] foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "[2096-11-19T16:39:57-08:00]")
	if want := mustRFC3339(t, "2096-11-19T16:39:57-08:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessRFC3339NoBrackets(t *testing.T) {
	p, err := NewWithGuess("2021-04-25T16:57:15.337Z foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "2031-04-25T16:57:15.337Z")
	if want := mustRFC3339(t, "2031-04-25T16:57:15.337Z"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessRFC2822(t *testing.T) {
	p, err := NewWithGuess("12 Jul 2003 10:52:37 +0200 foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "22 Jun 2003 10:52:37 +0500")
	if want := mustRFC3339(t, "2003-06-22T10:52:37+05:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessUnmatchedBracket(t *testing.T) {
	p, err := NewWithGuess("[12 Jul 2003 10:52:37 +0200 foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "[22 Jun 2003 10:52:37 +0500")
	if want := mustRFC3339(t, "2003-06-22T10:52:37+05:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessWithPrefix(t *testing.T) {
	p, err := NewWithGuess("foobar 1996-12-19T16:39:57-08:00 foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "foobar 2096-11-19T16:39:57-08:00")
	if want := mustRFC3339(t, "2096-11-19T16:39:57-08:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessFailures(t *testing.T) {
	for _, line := range []string{
		"996-12-19T16:39:57-08:00 foobar",
		"9",
		"",
		"no timestamp here",
	} {
		if _, err := NewWithGuess(line); err == nil {
			t.Errorf("NewWithGuess(%q) succeeded, want error", line)
		}
	}
}

func TestGuessEpochTimestamps(t *testing.T) {
	p, err := NewWithGuess("ts 1619688527.018165")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "ts 1619655527.888165")
	if want := mustRFC3339(t, "2021-04-29T00:18:47.888165+00:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	p, err = NewWithGuess("1619688527.123")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got = parseOK(t, p, "1619655527.123")
	if want := mustRFC3339(t, "2021-04-29T00:18:47.123+00:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Without a fraction on the first line, later fractions are sliced off.
	p, err = NewWithGuess("1619688527")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got = parseOK(t, p, "1619655527.123")
	if want := mustRFC3339(t, "2021-04-29T00:18:47+00:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGuessKnownFormats(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"2021-04-28 06:25:24,321", "2021-04-28T06:25:24.321+00:00"},
		{"2021-04-28 06:25:24", "2021-04-28T06:25:24+00:00"},
		{"28-Apr-2021::12:10:42", "2021-04-28T12:10:42+00:00"},
		{"2019/12/19 05:01:02", "2019-12-19T05:01:02+00:00"},
	}
	for _, c := range cases {
		p, err := NewWithGuess(c.line)
		if err != nil {
			t.Fatalf("NewWithGuess(%q): %v", c.line, err)
		}
		got := parseOK(t, p, c.line)
		if want := mustRFC3339(t, c.want); !got.Equal(want) {
			t.Errorf("line %q: got %v, want %v", c.line, got, want)
		}
	}
}

func TestGuessTimeOnly(t *testing.T) {
	now := time.Now().UTC()
	today := func(hour, minute, sec, nanos int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, sec, nanos, time.UTC)
	}

	p, err := NewWithGuess("11:29:13.120535")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got := parseOK(t, p, "11:29:13.120535")
	if want := today(11, 29, 13, 120535000); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Detection on a fraction-less line pins the range to 8 bytes.
	p, err = NewWithGuess("11:29:13")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	got = parseOK(t, p, "11:29:13.120535")
	if want := today(11, 29, 13, 0); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseLineWithoutTimestamp(t *testing.T) {
	p, err := NewWithGuess("[1996-12-19T16:39:57-08:00] foobar")
	if err != nil {
		t.Fatalf("NewWithGuess: %v", err)
	}
	if _, err := p.Parse("nothing"); err == nil {
		t.Error("Parse of a short garbage line succeeded, want error")
	}
}

func TestCustomFormat(t *testing.T) {
	if _, err := NewWithFormat("[1996-12-19T16:39:57-08:00] foobar", "2006-01-02 15:04:05"); err == nil {
		t.Error("NewWithFormat on a line without the layout succeeded, want error")
	}

	p, err := NewWithFormat("[1996-12-19 16-39-57] foobar", "2006-01-02 15-04-05")
	if err != nil {
		t.Fatalf("NewWithFormat: %v", err)
	}
	got := parseOK(t, p, "[2096-11-19 04-25-24]")
	if want := mustRFC3339(t, "2096-11-19T04:25:24+00:00"); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
