package db_test

import (
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
)

func TestConnectCoalescesConcurrentOpens(t *testing.T) {
	t.Parallel()
	var opens int64
	gw := newBareGateway(t, db.WithOpenFunc(func(path string) (*sql.DB, error) {
		atomic.AddInt64(&opens, 1)
		return db.Open(path)
	}))

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = gw.Connect()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("connect %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt64(&opens); got != 1 {
		t.Fatalf("expected exactly 1 open for 16 concurrent connects, got %d", got)
	}
}

func TestWithRetriesThenExhausts(t *testing.T) {
	t.Parallel()
	var opens int64
	gw := newBareGateway(t, db.WithOpenFunc(func(path string) (*sql.DB, error) {
		atomic.AddInt64(&opens, 1)
		return nil, errors.New("disk on fire")
	}))

	err := gw.With("probe", func(conn *sql.DB) error { return nil })
	if !errors.Is(err, db.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if got := atomic.LoadInt64(&opens); got != 3 {
		t.Fatalf("expected 3 open attempts, got %d", got)
	}
}

func TestWithInvalidatesOnOperationError(t *testing.T) {
	t.Parallel()
	var opens int64
	gw := newBareGateway(t, db.WithOpenFunc(func(path string) (*sql.DB, error) {
		atomic.AddInt64(&opens, 1)
		return db.Open(path)
	}))

	boom := errors.New("boom")
	if err := gw.With("failing op", func(conn *sql.DB) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped op error, got %v", err)
	}
	if err := gw.With("healthy op", func(conn *sql.DB) error { return nil }); err != nil {
		t.Fatalf("op after invalidation: %v", err)
	}
	if got := atomic.LoadInt64(&opens); got != 2 {
		t.Fatalf("expected the handle reopened after a failed op, opens=%d", got)
	}
}

func TestWithReusesHandleAcrossOperations(t *testing.T) {
	t.Parallel()
	var opens int64
	gw := newBareGateway(t, db.WithOpenFunc(func(path string) (*sql.DB, error) {
		atomic.AddInt64(&opens, 1)
		return db.Open(path)
	}))

	for i := 0; i < 5; i++ {
		if err := gw.With("noop", func(conn *sql.DB) error { return nil }); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt64(&opens); got != 1 {
		t.Fatalf("expected a single open across healthy ops, got %d", got)
	}
}

func TestConnectFailureWrapsErrConnect(t *testing.T) {
	t.Parallel()
	gw := newBareGateway(t, db.WithOpenFunc(func(path string) (*sql.DB, error) {
		return nil, errors.New("no such directory")
	}))
	if _, err := gw.Connect(); !errors.Is(err, db.ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}
