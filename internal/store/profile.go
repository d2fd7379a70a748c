package store

import (
	"strconv"
	"strings"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

// UpdateProfile persists the profile patch and refreshes the snapshot.
func (s *Store) UpdateProfile(patch db.ProfilePatch) (*model.UserProfile, error) {
	if patch.Age < 0 || patch.Age > 150 {
		return nil, &ValidationError{Field: "age", Reason: "must be between 0 and 150"}
	}
	if patch.Height < 0 || patch.Height > 300 {
		return nil, &ValidationError{Field: "height", Reason: "must be between 0 and 300 cm"}
	}
	profile, err := s.gw.SaveProfile(patch)
	if err != nil {
		return nil, err
	}
	s.setState(func(st *State) {
		st.Profile = profile
	})
	return profile, nil
}

// BMI derives body mass index and health band from the current weight and
// the stored profile height. Zero/unknown when either is missing.
func (s *Store) BMI() (float64, derive.HealthBand) {
	st := s.Snapshot()
	if st.Profile == nil {
		return 0, derive.BandUnknown
	}
	bmi := derive.BMI(st.CurrentWeight, st.Profile.Height)
	return bmi, derive.Band(bmi)
}

// SettingsPatch carries the updatable presentation preferences; empty
// fields are left unchanged.
type SettingsPatch struct {
	WeightUnit    string
	HydrationUnit string
	ReminderTime  string
}

// UpdateSettings persists the non-empty fields of the patch to the settings
// table and merges them into the snapshot.
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	if u := strings.TrimSpace(patch.WeightUnit); u != "" {
		if u != "kg" && u != "lb" {
			return &ValidationError{Field: "weight unit", Reason: "use kg or lb"}
		}
		if err := s.gw.SetSetting("weight_unit", u); err != nil {
			return err
		}
	}
	if u := strings.TrimSpace(patch.HydrationUnit); u != "" {
		if u != "ml" && u != "oz" {
			return &ValidationError{Field: "hydration unit", Reason: "use ml or oz"}
		}
		if err := s.gw.SetSetting("hydration_unit", u); err != nil {
			return err
		}
	}
	if t := strings.TrimSpace(patch.ReminderTime); t != "" {
		if err := s.gw.SetSetting("reminder_time", t); err != nil {
			return err
		}
	}
	s.setState(func(st *State) {
		if patch.WeightUnit != "" {
			st.Settings.WeightUnit = patch.WeightUnit
		}
		if patch.HydrationUnit != "" {
			st.Settings.HydrationUnit = patch.HydrationUnit
		}
		if patch.ReminderTime != "" {
			st.Settings.ReminderTime = patch.ReminderTime
		}
	})
	return nil
}

// SetHydrationGoal persists the daily hydration goal in milliliters.
func (s *Store) SetHydrationGoal(ml float64) error {
	if ml <= 0 {
		return &ValidationError{Field: "hydration goal", Reason: "must be greater than 0"}
	}
	if err := s.gw.SetSetting("hydration_goal", formatFloat(ml)); err != nil {
		return err
	}
	s.setState(func(st *State) {
		st.HydrationGoal = ml
	})
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
