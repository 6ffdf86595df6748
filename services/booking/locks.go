package booking

import "sync"

// slotLocks serializes conflict-check-and-insert per (provider, date). Two
// concurrent creation requests for the same provider and day must not both
// observe "no conflict" and both insert.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire returns the mutex for one (provider, date) key, creating it on
// first use. Entries are never evicted; the key space is bounded by providers
// times days actually booked.
func (s *slotLocks) acquire(providerID, date string) *sync.Mutex {
	key := providerID + "|" + date

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
