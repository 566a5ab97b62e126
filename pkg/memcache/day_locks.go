// pkg/mem/day_locks.go
package mem

import (
	"sync"
)

// DayLockRegistry hands out one mutex per day so that no two schedule
// operations mutate the same day concurrently. Locks are created on first
// use and kept for the life of the process.
type DayLockRegistry interface {
	// Acquire blocks until the day's lock is held and returns the release func.
	Acquire(dayID string) func()
}

type DayLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDayLocks() *DayLocks {
	return &DayLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (d *DayLocks) Acquire(dayID string) func() {
	d.mu.Lock()
	l, ok := d.locks[dayID]
	if !ok {
		l = &sync.Mutex{}
		d.locks[dayID] = l
	}
	d.mu.Unlock()

	l.Lock()
	return l.Unlock
}
