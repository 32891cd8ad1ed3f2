// Package session keeps each user's in-flight game state in memory.
// A user holds at most one game at a time, and all reads and writes of
// that slot go through a per-user lock so concurrent action requests
// serialize instead of clobbering each other's state.
package session

import "sync"

type slot struct {
	mu   sync.Mutex
	data []byte
}

// Store maps user ids to their single game slot
type Store struct {
	mu    sync.RWMutex
	slots map[int64]*slot
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{slots: make(map[int64]*slot)}
}

// Update runs fn with the user's current game state under the user's
// lock and stores whatever fn returns. Returning nil state clears the
// slot. The stored bytes are the encoded game envelope; fn receives nil
// when no game is in flight.
func (s *Store) Update(userID int64, fn func(current []byte) ([]byte, error)) error {
	sl := s.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()

	next, err := fn(sl.data)
	if err != nil {
		return err
	}
	sl.data = next
	return nil
}

// Put replaces the user's game state
func (s *Store) Put(userID int64, data []byte) {
	sl := s.slot(userID)
	sl.mu.Lock()
	sl.data = data
	sl.mu.Unlock()
}

// Get returns a copy of the user's game state, nil when no game is in
// flight
func (s *Store) Get(userID int64) []byte {
	sl := s.slot(userID)
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.data == nil {
		return nil
	}
	out := make([]byte, len(sl.data))
	copy(out, sl.data)
	return out
}

// Clear drops the user's game state
func (s *Store) Clear(userID int64) {
	sl := s.slot(userID)
	sl.mu.Lock()
	sl.data = nil
	sl.mu.Unlock()
}

func (s *Store) slot(userID int64) *slot {
	s.mu.RLock()
	sl, ok := s.slots[userID]
	s.mu.RUnlock()
	if ok {
		return sl
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok = s.slots[userID]; ok {
		return sl
	}
	sl = &slot{}
	s.slots[userID] = sl
	return sl
}
