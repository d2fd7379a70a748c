package snakless

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/app"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/config"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/logging"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
)

// withStore wires config, logger, gateway, and state container, initializes
// the store, and runs the command body. An initialization error is reported
// but does not abort the command: the store stays usable with whatever
// loaded (the app must never be dead in the water because one load failed).
func withStore(run func(s *store.Store) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if err := app.EnsureDir(cfg.DBPath); err != nil {
		return err
	}

	log := logging.New(cfg)
	defer func() { _ = log.Sync() }()

	gw := db.New(cfg.DBPath, log)
	defer gw.Close()

	s := store.New(gw, log)
	s.SetDefaultHydrationGoal(cfg.HydrationGoalML)
	if err := s.Initialize(); err != nil {
		fmt.Printf("Warning: initialization incomplete: %v\n", err)
	}
	return run(s)
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func parseDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
