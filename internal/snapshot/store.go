// Package snapshot holds the currently displayed group set. A refresh pass
// replaces the whole set at once rather than incrementally, and sequence
// tokens make concurrent passes last-write-wins so a stale fetch can never
// clobber a newer one.
package snapshot

import (
	"sync"
	"time"

	"groupmap/internal/models"
)

// Snapshot is one complete, resolved group set.
type Snapshot struct {
	Seq         uint64
	Groups      []models.GroupRecord
	Source      string
	LastUpdated time.Time
}

type Store struct {
	mu            sync.Mutex
	nextSeq       uint64
	lastPublished uint64
	current       Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Begin hands out the sequence token for a new refresh pass. Tokens are
// strictly increasing; a pass that began later always outranks one that
// began earlier.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Publish installs snap as the current set unless a pass with a newer token
// already published, in which case snap is discarded and Publish reports
// false.
func (s *Store) Publish(snap Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Seq <= s.lastPublished {
		return false
	}
	s.lastPublished = snap.Seq
	s.current = snap
	return true
}

// Current returns the latest published snapshot; ok is false before the
// first publish.
func (s *Store) Current() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.lastPublished > 0
}
