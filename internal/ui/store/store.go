// Package store provides named, optionally persisted state containers.
// A Store holds one immutable snapshot at a time; mutations copy the
// current snapshot, apply a recipe to the copy and publish the result,
// so readers never observe a partial write.
package store

import (
	"log"
	"sync"

	"github.com/goccy/go-json"
)

// Backend is a durable key-value slot for persisted store state. A missing
// slot is reported as (nil, nil), not an error.
type Backend interface {
	GetItem(name string) ([]byte, error)
	SetItem(name string, data []byte) error
}

// Config controls persistence for a store. With SkipPersist set, or with no
// Backend or Name, state lives only in memory. ExcludeFromPersist names
// JSON fields that are never written to the backend and never rehydrated;
// they always start from the initial state.
type Config struct {
	Name               string
	Backend            Backend
	SkipPersist        bool
	ExcludeFromPersist []string
}

func (c Config) persisted() bool {
	return !c.SkipPersist && c.Backend != nil && c.Name != ""
}

type subscriber[S any] struct {
	id int
	fn func(S)
}

// Store is a state container for snapshots of type S. Recipes passed to Set
// must replace reference-typed fields rather than mutate them in place;
// the snapshot copy is shallow.
type Store[S any] struct {
	mu     sync.Mutex
	state  S
	cfg    Config
	subs   []subscriber[S]
	nextID int
}

// New builds a store seeded with initial. If the config names a backend
// slot, previously persisted state is merged over the initial value;
// missing or corrupt data falls back to initial silently.
func New[S any](initial S, cfg Config) *Store[S] {
	s := &Store[S]{state: initial, cfg: cfg}
	if cfg.persisted() {
		s.rehydrate()
	}
	return s
}

// Get returns the current snapshot.
func (s *Store[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set copies the current state, applies recipe to the copy and publishes
// the result. Subscribers are notified in subscription order with the new
// snapshot. Commits from concurrent callers are serialized.
func (s *Store[S]) Set(recipe func(*S)) {
	s.mu.Lock()
	next := s.state
	recipe(&next)
	s.state = next
	subs := make([]subscriber[S], len(s.subs))
	copy(subs, s.subs)
	// Persist before releasing the lock so backend writes land in commit
	// order even when callers race.
	s.persist(next)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next)
	}
}

// Subscribe registers fn to run with every snapshot committed after this
// call. The returned cancel function removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[S]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// persist writes state minus the excluded fields to the backend slot.
// Failures are logged and swallowed; a missed persist must not take the
// store with it.
func (s *Store[S]) persist(state S) {
	if !s.cfg.persisted() {
		return
	}

	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("store %s: skipping persist, state not serializable: %v", s.cfg.Name, err)
		return
	}

	if len(s.cfg.ExcludeFromPersist) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			log.Printf("store %s: skipping persist: %v", s.cfg.Name, err)
			return
		}
		for _, key := range s.cfg.ExcludeFromPersist {
			delete(fields, key)
		}
		if data, err = json.Marshal(fields); err != nil {
			log.Printf("store %s: skipping persist: %v", s.cfg.Name, err)
			return
		}
	}

	if err := s.cfg.Backend.SetItem(s.cfg.Name, data); err != nil {
		log.Printf("store %s: persist failed: %v", s.cfg.Name, err)
	}
}

// rehydrate merges the persisted slot over the initial state. Excluded
// fields are dropped from the persisted payload first so they keep their
// initial values even if an older version of the state persisted them.
func (s *Store[S]) rehydrate() {
	raw, err := s.cfg.Backend.GetItem(s.cfg.Name)
	if err != nil {
		log.Printf("store %s: rehydrate failed, using defaults: %v", s.cfg.Name, err)
		return
	}
	if len(raw) == 0 {
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Printf("store %s: discarding corrupt persisted state: %v", s.cfg.Name, err)
		return
	}
	for _, key := range s.cfg.ExcludeFromPersist {
		delete(fields, key)
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return
	}
	state := s.state
	if err := json.Unmarshal(merged, &state); err != nil {
		log.Printf("store %s: discarding corrupt persisted state: %v", s.cfg.Name, err)
		return
	}
	s.state = state
}
