package store

import (
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"go.uber.org/zap"
)

// LoadWeeklyStats computes the trailing-7-day aggregate. Every sub-fetch
// runs independently: a failure in one is logged and leaves that field at
// its previously loaded value instead of corrupting the whole struct.
func (s *Store) LoadWeeklyStats() error {
	prev := s.Snapshot().WeeklyStats
	stats := WeeklyStats{}
	if prev != nil {
		stats = *prev
	}

	var firstErr error
	record := func(what string, err error) {
		s.log.Warn("weekly stats sub-fetch failed", zap.String("fetch", what), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}

	if fasting, err := s.gw.SessionStats(7); err != nil {
		record("fasting", err)
	} else {
		stats.Fasting = fasting
	}

	if entries, err := s.gw.RecentWeights(7); err != nil {
		record("weight", err)
	} else if len(entries) >= 2 {
		stats.WeightChange = entries[0].Weight - entries[len(entries)-1].Weight
	} else {
		stats.WeightChange = 0
	}

	if totals, err := s.gw.WeeklyHydration(); err != nil {
		record("hydration", err)
	} else {
		sum := 0.0
		for _, t := range totals {
			sum += t.Total
		}
		stats.TotalHydration = sum
	}

	if days, err := s.gw.CompletedSessionDays(streakLookbackDays); err != nil {
		record("streak", err)
	} else {
		stats.CurrentStreak = derive.ConsecutiveStreak(days, utcToday())
	}

	s.setState(func(st *State) {
		st.WeeklyStats = &stats
		st.FastingStreak = stats.CurrentStreak
	})
	return firstErr
}

// LoadWeeklyChartData builds the zero-filled 7-day fasting and hydration
// series for the charts screen.
func (s *Store) LoadWeeklyChartData() error {
	fasting, err := s.gw.WeeklySessionHours()
	if err != nil {
		return err
	}
	hydration, err := s.gw.WeeklyHydration()
	if err != nil {
		return err
	}
	s.setState(func(st *State) {
		// Session timestamps are bucketed on UTC days, hydration entries on
		// local calendar days.
		st.WeeklyFasting = derive.WeeklySeries(fasting, utcToday())
		st.WeeklyHydration = derive.WeeklySeries(hydration, time.Now())
	})
	return nil
}
