// Package store is the application state container: one in-memory snapshot
// of app state, mutated only through named operations that write through the
// gateway and then re-fetch the affected fields. It is the sole integration
// point for the presentation layer.
package store

import (
	"sync"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
	"go.uber.org/zap"
)

const (
	recentWeightLimit    = 30
	streakLookbackDays   = 30
	allTimeStatsDays     = 365
	DefaultHydrationGoal = 2000 // ml
)

// Settings are the persisted presentation preferences.
type Settings struct {
	WeightUnit    string
	HydrationUnit string
	ReminderTime  string
}

func defaultSettings() Settings {
	return Settings{WeightUnit: "kg", HydrationUnit: "ml", ReminderTime: "08:00"}
}

// WeeklyStats is the trailing-7-day aggregate the stats screen renders.
// Sub-fetches are independent; a partial failure leaves the other fields at
// their previously loaded values.
type WeeklyStats struct {
	Fasting        model.SessionStats
	WeightChange   float64
	TotalHydration float64
	CurrentStreak  int
}

// State is the observable snapshot handed to subscribers.
type State struct {
	Initialized     bool
	CurrentSession  *model.FastingSession
	WeightEntries   []model.WeightEntry
	CurrentWeight   float64
	TargetWeight    float64
	DailyHydration  float64
	HydrationGoal   float64
	Achievements    []model.Achievement
	Profile         *model.UserProfile
	FastingStreak   int
	WeeklyStats     *WeeklyStats
	WeeklyFasting   []model.DayTotal
	WeeklyHydration []model.DayTotal
	Settings        Settings
}

type Store struct {
	gw  *db.Gateway
	log *zap.Logger

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

func New(gw *db.Gateway, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		gw:  gw,
		log: log,
		state: State{
			HydrationGoal: DefaultHydrationGoal,
			Settings:      defaultSettings(),
		},
		subs: map[int]func(State){},
	}
}

// SetDefaultHydrationGoal overrides the built-in hydration goal before any
// persisted setting is loaded. A persisted hydration_goal setting still wins
// once Initialize runs.
func (s *Store) SetDefaultHydrationGoal(ml float64) {
	if ml <= 0 {
		return
	}
	s.setState(func(st *State) { st.HydrationGoal = ml })
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Presets exposes the fixed fasting schedule table.
func (s *Store) Presets() map[string]model.Preset {
	return model.Presets
}

// Subscribe registers a callback invoked with a state snapshot after every
// mutation. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) setState(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	snap := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// Initialize opens the gateway, runs schema creation and seeding, and loads
// the initial snapshot. Every load is independently fault-tolerant: one
// failing subsystem must not block the others, and Initialized becomes true
// regardless, so the app never hangs in a loading state. The schema error,
// if any, is still reported to the caller.
func (s *Store) Initialize() error {
	initErr := s.gw.Init()
	if initErr != nil {
		s.log.Error("schema initialization failed", zap.Error(initErr))
	}

	var (
		session      *model.FastingSession
		achievements []model.Achievement
		weights      []model.WeightEntry
		profile      *model.UserProfile
		hydration    float64
		settings     map[string]string
	)

	if v, err := s.gw.CurrentSession(); err != nil {
		s.log.Warn("load current session failed", zap.Error(err))
	} else {
		session = v
	}
	if v, err := s.gw.Achievements(); err != nil {
		s.log.Warn("load achievements failed", zap.Error(err))
	} else {
		achievements = v
	}
	if v, err := s.gw.RecentWeights(recentWeightLimit); err != nil {
		s.log.Warn("load weight entries failed", zap.Error(err))
	} else {
		weights = v
	}
	if v, err := s.gw.Profile(); err != nil {
		s.log.Warn("load profile failed", zap.Error(err))
	} else {
		profile = v
	}
	if v, err := s.gw.HydrationTotal(today()); err != nil {
		s.log.Warn("load daily hydration failed", zap.Error(err))
	} else {
		hydration = v
	}
	if v, err := s.gw.Settings(); err != nil {
		s.log.Warn("load settings failed", zap.Error(err))
	} else {
		settings = v
	}

	s.setState(func(st *State) {
		st.Initialized = true
		st.CurrentSession = session
		st.Achievements = achievements
		st.WeightEntries = weights
		st.Profile = profile
		st.DailyHydration = hydration
		if len(weights) > 0 {
			st.CurrentWeight = weights[0].Weight
		}
		applySettings(st, settings)
	})
	return initErr
}

func applySettings(st *State, settings map[string]string) {
	if v, ok := settings["weight_unit"]; ok && v != "" {
		st.Settings.WeightUnit = v
	}
	if v, ok := settings["hydration_unit"]; ok && v != "" {
		st.Settings.HydrationUnit = v
	}
	if v, ok := settings["reminder_time"]; ok && v != "" {
		st.Settings.ReminderTime = v
	}
	if v, ok := settings["target_weight"]; ok {
		if w := parseFloat(v); w > 0 {
			st.TargetWeight = w
		}
	}
	if v, ok := settings["hydration_goal"]; ok {
		if goal := parseFloat(v); goal > 0 {
			st.HydrationGoal = goal
		}
	}
}

// ClearAllData wipes every table through the gateway, resets the in-memory
// snapshot to defaults, and re-initializes so the freshly seeded achievement
// set is loaded again.
func (s *Store) ClearAllData() error {
	if err := s.gw.ResetAll(); err != nil {
		return err
	}
	s.setState(func(st *State) {
		*st = State{
			HydrationGoal: DefaultHydrationGoal,
			Settings:      defaultSettings(),
		}
	})
	return s.Initialize()
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// utcToday matches the day bucketing of session timestamps, which are
// stored in UTC.
func utcToday() time.Time {
	return time.Now().UTC()
}
