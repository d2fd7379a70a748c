package derive

import (
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

const dateLayout = "2006-01-02"

// WeeklySeries spreads pre-fetched per-day aggregates over the trailing 7
// calendar days ending at today, oldest first. Days without data are 0.
func WeeklySeries(totals []model.DayTotal, today time.Time) []model.DayTotal {
	byDate := make(map[string]float64, len(totals))
	for _, t := range totals {
		byDate[t.Date] += t.Total
	}

	out := make([]model.DayTotal, 0, 7)
	day := beginningOfDay(today).AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		key := day.Format(dateLayout)
		out = append(out, model.DayTotal{Date: key, Total: byDate[key]})
		day = day.AddDate(0, 0, 1)
	}
	return out
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
