package derive_test

import (
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
)

func dayStrings(today time.Time, offsets ...int) []string {
	out := make([]string, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, today.AddDate(0, 0, -off).Format("2006-01-02"))
	}
	return out
}

func TestConsecutiveStreak(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		days []string
		want int
	}{
		{"empty", nil, 0},
		{"today only", dayStrings(today, 0), 1},
		{"seven ending today", dayStrings(today, 0, 1, 2, 3, 4, 5, 6), 7},
		{"seven ending yesterday", dayStrings(today, 1, 2, 3, 4, 5, 6, 7), 7},
		{"gap breaks the run", dayStrings(today, 0, 1, 3, 4, 5, 6, 7), 2},
		{"run ended two days ago", dayStrings(today, 2, 3, 4), 0},
		{"unordered input", dayStrings(today, 4, 0, 2, 1, 3), 5},
		{"duplicates ignored", dayStrings(today, 0, 0, 1, 1), 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := derive.ConsecutiveStreak(tc.days, today); got != tc.want {
				t.Fatalf("ConsecutiveStreak(%v) = %d, want %d", tc.days, got, tc.want)
			}
		})
	}
}

func TestConsecutiveStreakCrossesMonthBoundary(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	days := []string{"2026-03-02", "2026-03-01", "2026-02-28", "2026-02-27"}
	if got := derive.ConsecutiveStreak(days, today); got != 4 {
		t.Fatalf("expected streak of 4 across the month boundary, got %d", got)
	}
}
