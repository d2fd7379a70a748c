package derive

import "time"

// ConsecutiveStreak counts the run of consecutive calendar days with at
// least one completed fast, ending today or yesterday. A fast finished
// yesterday evening keeps the streak alive through the following day.
// days holds distinct YYYY-MM-DD values in any order.
func ConsecutiveStreak(days []string, today time.Time) int {
	if len(days) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		seen[d] = true
	}

	cur := beginningOfDay(today)
	if !seen[cur.Format(dateLayout)] {
		cur = cur.AddDate(0, 0, -1)
		if !seen[cur.Format(dateLayout)] {
			return 0
		}
	}

	streak := 0
	for seen[cur.Format(dateLayout)] {
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}
