package connectivity

import (
	"sync"

	"github.com/ledgerpos/ledgerpos/internal/shared/observer"
)

// Store holds the derived connectivity state. It follows the same listener
// contract as ModeStore: synchronous, in registration order, after the lock is
// released, panics propagate to the caller of SetState.
type Store struct {
	mu        sync.Mutex
	state     State
	observers observer.Registry[State]
}

func NewStore(initial State) *Store {
	return &Store{state: initial.clone()}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// SetState merges p into the current state. A merge that produces an equal
// state is dropped without notifying anyone.
func (s *Store) SetState(p Patch) {
	s.Update(func(State) Patch { return p })
}

// Update computes a patch from the current state and applies it atomically.
// fn runs under the store lock and must not call back into the store.
func (s *Store) Update(fn func(current State) Patch) {
	s.mu.Lock()
	next := fn(s.state.clone()).apply(s.state)
	if next.Equal(s.state) {
		s.mu.Unlock()
		return
	}
	s.state = next
	listeners := s.observers.Snapshot()
	s.mu.Unlock()

	for _, l := range listeners {
		l(next.clone())
	}
}

// Subscribe registers fn and calls it once with the current state. The
// returned unsubscribe function is idempotent.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.observers.Add(fn)
	current := s.state.clone()
	s.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.observers.Remove(id)
			s.mu.Unlock()
		})
	}
}

// ApplyReachability records a fresh network probe result. A forced-offline
// preference always wins; an unreachable network shows offline; a reachable
// network lifts an offline status back to online_synced but leaves syncing and
// sync_failed to the sync engine.
func (s *Store) ApplyReachability(mode Mode, reachable bool) {
	s.Update(func(cur State) Patch {
		p := Patch{}.WithOnline(reachable)
		switch {
		case mode == ModeOffline:
			return p.WithStatus(StatusOfflineForced)
		case !reachable:
			return p.WithStatus(StatusOffline)
		case cur.Status == StatusOffline || cur.Status == StatusOfflineForced:
			return p.WithStatus(StatusOnlineSynced)
		}
		return p
	})
}
