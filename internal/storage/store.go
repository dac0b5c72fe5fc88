package storage

import (
	"encoding/json"
	"sync"

	"github.com/ogrande/tower-cards/internal/game"
	"github.com/ogrande/tower-cards/internal/logging"
)

// Backend is a durability sink for whole-store snapshots. The canonical
// state lives in the Store's memory; backends only load once at startup and
// receive full documents on every persist.
type Backend interface {
	// Load returns the last saved snapshot, or nil when none exists.
	Load() ([]byte, error)
	Save(snapshot []byte) error
}

// PersistError wraps a backend write failure. In-memory state may already
// have changed when it surfaces (stamina charges in particular); callers
// report it, they do not roll back.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return "persist failed: " + e.Err.Error() }
func (e *PersistError) Unwrap() error { return e.Err }

// Store owns the in-memory player map and the write-serialization
// discipline: all mutation happens under mu, and persists go through a
// global critical section so concurrent writers produce a strict sequence
// of whole-state snapshots, never interleaved or merged.
type Store struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	players map[string]*game.Player
	backend Backend
}

// Open loads the snapshot from the backend. A missing or corrupt snapshot
// is replaced by an empty store; startup never fails on state problems.
func Open(backend Backend) *Store {
	s := &Store{
		players: make(map[string]*game.Player),
		backend: backend,
	}
	data, err := backend.Load()
	if err != nil {
		logging.Error("failed to read store snapshot, starting empty", err, nil)
		return s
	}
	if len(data) == 0 {
		return s
	}
	var players map[string]*game.Player
	if err := json.Unmarshal(data, &players); err != nil {
		logging.Error("corrupt store snapshot, starting empty", err, nil)
		return s
	}
	for id, p := range players {
		if p.Inventory == nil {
			p.Inventory = make([]game.CardInstance, 0)
		}
		s.players[id] = p
	}
	logging.Info("store snapshot loaded", logging.Fields{"players": len(s.players)})
	return s
}

func (s *Store) getOrCreateLocked(id string) *game.Player {
	if p, ok := s.players[id]; ok {
		return p
	}
	p := game.NewPlayer(id)
	s.players[id] = p
	return p
}

// Update runs fn against the player record (created lazily) under the
// store's mutation lock. An error from fn aborts with no persist; nil
// triggers a whole-store persist while the record is still consistent.
func (s *Store) Update(id string, fn func(p *game.Player) error) error {
	s.mu.Lock()
	p := s.getOrCreateLocked(id)
	err := fn(p)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Persist()
}

// View runs fn against the player record (created lazily) without
// persisting afterwards. fn must not retain the pointer.
func (s *Store) View(id string, fn func(p *game.Player)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.getOrCreateLocked(id))
}

// Persist serializes the whole store and writes it to the backend. writeMu
// makes writes strictly ordered: a queued writer snapshots the in-memory
// state at the moment it acquires the section, so no update is lost or
// merged away.
func (s *Store) Persist() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.players, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return &PersistError{Err: err}
	}
	if err := s.backend.Save(data); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}

// Len reports how many player records exist.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
