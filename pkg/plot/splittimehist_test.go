package plot

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestSplitTimeHistogram(t *testing.T) {
	color.NoColor = true
	var vec []TimestampedTerm
	vec = append(vec, TimestampedTerm{mustParseRFC3339(t, "2021-04-15T04:25:00+00:00"), 1})
	vec = append(vec, TimestampedTerm{mustParseRFC3339(t, "2022-04-15T04:25:00+00:00"), 1})
	vec = append(vec, TimestampedTerm{mustParseRFC3339(t, "2022-04-15T04:25:00+00:00"), 0})
	vec = append(vec, TimestampedTerm{mustParseRFC3339(t, "2022-04-15T04:25:00+00:00"), 2})
	for i := 0; i < 11; i++ {
		vec = append(vec, TimestampedTerm{mustParseRFC3339(t, "2023-04-15T04:25:00+00:00"), 2})
	}
	h := NewSplitTimeHistogram(3, []string{"one", "two", "three"}, vec)
	var b strings.Builder
	if err := h.Render(&b, 100); err != nil {
		t.Fatalf("Render: %v", err)
	}
	display := b.String()
	for _, want := range []string{
		"Matches: 15",
		"one: 1.",
		"two: 2.",
		"three: 12.",
		"represents a count of 1",
		"[2021-04-15 04:25:00] [0/1/ 0] ∎\n",
		"[2021-12-14 12:25:00] [1/1/ 1] ∎∎∎\n",
		"[2022-08-14 20:25:00] [0/0/11] ∎∎∎∎∎∎∎∎∎∎∎\n",
	} {
		if !strings.Contains(display, want) {
			t.Errorf("display does not contain %q:\n%s", want, display)
		}
	}
}
