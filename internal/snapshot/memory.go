package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryStore is a process-local Store
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]map[string]memoryEntry
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]map[string]memoryEntry),
	}
}

// Save stores value for the session. The last writer wins.
func (s *MemoryStore) Save(_ context.Context, session, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked()
	entries, ok := s.sessions[session]
	if !ok {
		entries = make(map[string]memoryEntry)
		s.sessions[session] = entries
	}
	entries[collection] = memoryEntry{data: data, expires: s.now().Add(s.ttl)}
	return nil
}

// Load decodes the stored collection into out
func (s *MemoryStore) Load(_ context.Context, session, collection string, out any) error {
	s.mu.Lock()
	entry, ok := s.sessions[session][collection]
	s.mu.Unlock()

	if !ok || !s.now().Before(entry.expires) {
		return ErrMissing
	}
	if err := json.Unmarshal(entry.data, out); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", collection, err)
	}
	return nil
}

// Reset discards every snapshot of the session
func (s *MemoryStore) Reset(_ context.Context, session string) error {
	s.mu.Lock()
	delete(s.sessions, session)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) evictLocked() {
	now := s.now()
	for session, entries := range s.sessions {
		for name, e := range entries {
			if !now.Before(e.expires) {
				delete(entries, name)
			}
		}
		if len(entries) == 0 {
			delete(s.sessions, session)
		}
	}
}
