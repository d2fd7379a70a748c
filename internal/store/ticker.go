package store

import (
	"sync"
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
)

// Ticker drives the periodic timer refresh while a session is open. It is
// owned by whichever surface displays the timer and must be stopped when
// that surface goes away; it also stops itself once the session closes, so
// no orphaned tick callbacks are left behind.
type Ticker struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartTicker invokes onTick with a fresh timer snapshot at every interval
// until Stop is called or the open session ends.
func (s *Store) StartTicker(interval time.Duration, onTick func(derive.TimerSnapshot)) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	t := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(t.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				snap, ok := s.FastingTimer()
				if !ok {
					return
				}
				onTick(snap)
			}
		}
	}()
	return t
}

// Stop cancels the ticker and waits for the tick goroutine to exit. Safe to
// call more than once or after the ticker has already stopped itself.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}
