// Package mem is the in-process window.Store backend.
package mem

import (
	"sync"

	"github.com/Al3x4n/Fast-DDS/persistence/window"
)

var _ window.Store = (*Store)(nil)

// Store keeps window snapshots in a map guarded by a mutex -- BitmapRange
// itself is not thread-safe, but the store wrapping its snapshots is.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]window.Snapshot
}

// New returns an empty in-process Store.
func New() *Store {
	return &Store{snapshots: make(map[string]window.Snapshot)}
}

func (s *Store) Load(ownerID string) (window.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[ownerID]
	return snap, ok, nil
}

func (s *Store) Save(ownerID string, snap window.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := make([]uint32, len(snap.Words))
	copy(words, snap.Words)
	snap.Words = words
	s.snapshots[ownerID] = snap
	return nil
}

func (s *Store) Delete(ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, ownerID)
	return nil
}
