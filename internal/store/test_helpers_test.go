package store_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
	"go.uber.org/zap"
)

// newTestStore returns an initialized store over a throwaway database,
// along with its gateway for tests that seed rows directly.
func newTestStore(t *testing.T) (*store.Store, *db.Gateway) {
	t.Helper()
	return newTestStoreAt(t, filepath.Join(t.TempDir(), "snakless.db"))
}

func newTestStoreAt(t *testing.T, path string) (*store.Store, *db.Gateway) {
	t.Helper()
	gw := db.New(path, zap.NewNop(), db.WithRetryBase(time.Millisecond))
	t.Cleanup(func() { _ = gw.Close() })
	s := store.New(gw, zap.NewNop())
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	return s, gw
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "snakless.db")
}

func asValidationError(err error, target **store.ValidationError) bool {
	return errors.As(err, target)
}

// seedCompletedFast inserts a completed session of the given length starting
// at start.
func seedCompletedFast(t *testing.T, gw *db.Gateway, start time.Time, hours float64) {
	t.Helper()
	id, err := gw.StartSession("16:8", start)
	if err != nil {
		t.Fatalf("seed session at %v: %v", start, err)
	}
	if err := gw.CloseSession(id, start.Add(time.Duration(hours*float64(time.Hour))), hours); err != nil {
		t.Fatalf("close seed session %d: %v", id, err)
	}
}
