package derive_test

import (
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

func TestWeeklySeriesZeroFillsAndOrders(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	totals := []model.DayTotal{
		{Date: "2026-03-10", Total: 16.5},
		{Date: "2026-03-07", Total: 18},
		{Date: "2026-02-01", Total: 99}, // outside the window, dropped
	}

	got := derive.WeeklySeries(totals, today)

	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	if got[0].Date != "2026-03-04" || got[6].Date != "2026-03-10" {
		t.Fatalf("expected oldest-first window 03-04..03-10, got %s..%s", got[0].Date, got[6].Date)
	}
	byDate := map[string]float64{}
	for _, d := range got {
		byDate[d.Date] = d.Total
	}
	if byDate["2026-03-10"] != 16.5 || byDate["2026-03-07"] != 18 {
		t.Fatalf("totals misplaced: %v", byDate)
	}
	if byDate["2026-03-05"] != 0 {
		t.Fatalf("missing day must be zero-filled, got %v", byDate["2026-03-05"])
	}
}

func TestWeeklySeriesMergesDuplicateDates(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	totals := []model.DayTotal{
		{Date: "2026-03-09", Total: 250},
		{Date: "2026-03-09", Total: 500},
	}
	got := derive.WeeklySeries(totals, today)
	for _, d := range got {
		if d.Date == "2026-03-09" && d.Total != 750 {
			t.Fatalf("expected duplicate dates summed to 750, got %v", d.Total)
		}
	}
}
