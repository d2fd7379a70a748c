package store

import (
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
	"go.uber.org/zap"
)

// StartFasting opens a new session under the named preset. The preset must
// exist and no session may already be open; the gateway enforces the latter
// at the write path.
func (s *Store) StartFasting(presetType string) (*model.FastingSession, error) {
	if _, ok := model.Presets[presetType]; !ok {
		return nil, &ValidationError{Field: "preset", Reason: "unknown preset " + presetType}
	}

	start := time.Now()
	id, err := s.gw.StartSession(presetType, start)
	if err != nil {
		return nil, err
	}

	session := &model.FastingSession{
		ID:         id,
		StartTime:  start.UTC(),
		PresetType: presetType,
	}
	s.setState(func(st *State) {
		st.CurrentSession = session
	})
	s.log.Info("fasting session started",
		zap.Int64("session_id", id), zap.String("preset", presetType))
	return session, nil
}

// EndFasting closes the open session: writes the end time and computed
// duration, re-evaluates achievements, then clears the in-memory session.
// A storage failure propagates and leaves the session open so the user can
// retry; the fast is not considered ended until the write lands.
func (s *Store) EndFasting() error {
	session := s.Snapshot().CurrentSession
	if session == nil {
		return nil
	}

	end := time.Now()
	duration := end.Sub(session.StartTime).Hours()
	if duration < 0 {
		duration = 0
	}
	if err := s.gw.CloseSession(session.ID, end, duration); err != nil {
		return err
	}

	// Achievement evaluation must see the just-completed session before the
	// snapshot forgets it. Failures here are logged, not fatal to the end.
	if err := s.CheckStreakAchievements(); err != nil {
		s.log.Warn("achievement check after fast failed", zap.Error(err))
	}

	s.setState(func(st *State) {
		st.CurrentSession = nil
	})
	s.log.Info("fasting session ended",
		zap.Int64("session_id", session.ID), zap.Float64("duration_hours", duration))
	return nil
}

// FastingTimer derives the live timer values for the open session. The
// second return is false when no session is open.
func (s *Store) FastingTimer() (derive.TimerSnapshot, bool) {
	st := s.Snapshot()
	if st.CurrentSession == nil {
		return derive.TimerSnapshot{}, false
	}
	preset, ok := model.Presets[st.CurrentSession.PresetType]
	if !ok {
		// Unknown preset rows from older builds fall back to 16:8.
		preset = model.Presets["16:8"]
	}
	return derive.Timer(st.CurrentSession.StartTime, st.CurrentSession.PresetType, preset, time.Now()), true
}

// CheckStreakAchievements reads the consecutive-day streak and the all-time
// average duration, and unlocks whatever thresholds are newly met. Each
// unlock is idempotent. The achievement list is reloaded afterward.
func (s *Store) CheckStreakAchievements() error {
	days, err := s.gw.CompletedSessionDays(streakLookbackDays)
	if err != nil {
		return err
	}
	streak := derive.ConsecutiveStreak(days, utcToday())

	now := time.Now()
	if streak >= 7 {
		if err := s.unlock(model.AchievementStreak7, now); err != nil {
			return err
		}
	}
	if streak >= 30 {
		if err := s.unlock(model.AchievementStreak30, now); err != nil {
			return err
		}
	}

	stats, err := s.gw.SessionStats(allTimeStatsDays)
	if err != nil {
		return err
	}
	if stats.AvgDurationHours >= 24 {
		if err := s.unlock(model.AchievementLongestFast, now); err != nil {
			return err
		}
	}

	achievements, err := s.gw.Achievements()
	if err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.FastingStreak = streak
		st.Achievements = achievements
	})
	return nil
}

func (s *Store) unlock(achievementType string, at time.Time) error {
	unlocked, err := s.gw.UnlockAchievement(achievementType, at)
	if err != nil {
		return err
	}
	if unlocked {
		s.log.Info("achievement unlocked", zap.String("type", achievementType))
	}
	return nil
}

// CheckAchievementIntegrity surfaces the duplicate-seed condition as a
// repairable warning rather than an error.
func (s *Store) CheckAchievementIntegrity() (*db.IntegrityWarning, error) {
	return s.gw.AchievementIntegrity()
}

// RepairAchievements rebuilds the achievements table from the seed set and
// reloads the list.
func (s *Store) RepairAchievements() error {
	if err := s.gw.RepairDuplicateAchievements(); err != nil {
		return err
	}
	return s.reloadAchievements()
}

// ResetAchievements clears unlocked state on all rows without deleting them.
func (s *Store) ResetAchievements() error {
	if err := s.gw.ResetAchievements(); err != nil {
		return err
	}
	return s.reloadAchievements()
}

func (s *Store) reloadAchievements() error {
	achievements, err := s.gw.Achievements()
	if err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.Achievements = achievements
	})
	return nil
}
