package datemath

import (
	"testing"
	"time"
)

func mustParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestParse(t *testing.T) {
	p := mustParser(t)
	// Wednesday
	base := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"Today", "today", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{"Tomorrow", "tomorrow", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
		{"Yesterday", "yesterday", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
		{"Next Week", "next week", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		{"In 3 Days", "in 3 days", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
		{"In 2 Weeks", "in 2 weeks", time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)},
		{"In 1 Month", "in 1 month", time.Date(2026, 9, 26, 0, 0, 0, 0, time.UTC)},
		{"Next Friday", "next friday", time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)},
		{"Next Wednesday Skips Today", "next wednesday", time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
		{"Bare Weekday", "monday", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		{"ISO Date", "2026-12-01", time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"Case And Whitespace", "  TOMORROW ", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Parse(tc.input, base)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseUnrecognized(t *testing.T) {
	p := mustParser(t)
	base := time.Now()

	for _, input := range []string{"", "someday", "in a while", "in -1 days", "next lunchtime"} {
		if _, err := p.Parse(input, base); err == nil {
			t.Errorf("Parse(%q): expected error, got none", input)
		}
	}
}

func TestEndOfDay(t *testing.T) {
	p := mustParser(t)
	start := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	want := time.Date(2026, 8, 26, 23, 59, 59, 0, time.UTC)
	if got := p.EndOfDay(start); !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}
