package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MervynChew/Grab-Voice-AI-Chat/internal/model"
)

const (
	// DefaultSize bounds how many concurrent sessions are remembered.
	DefaultSize = 1024
	// DefaultTTL evicts sessions idle longer than this.
	DefaultTTL = 30 * time.Minute

	// maxTurns caps the stored transcript length per session.
	maxTurns = 20
)

// Store keeps recent conversation turns per session id in memory.
// Nothing survives a process restart.
type Store struct {
	// mu serializes Append's read-modify-write; the LRU only
	// synchronizes individual Get/Add calls.
	mu    sync.Mutex
	cache *expirable.LRU[string, []model.ChatMessage]
}

// New creates a session store. Non-positive arguments take the defaults.
func New(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, []model.ChatMessage](size, nil, ttl),
	}
}

// History returns a copy of the stored turns for a session, oldest
// first. Callers may append to the result freely.
func (s *Store) History(id string) []model.ChatMessage {
	if id == "" {
		return nil
	}
	turns, ok := s.cache.Get(id)
	if !ok {
		return nil
	}
	out := make([]model.ChatMessage, len(turns))
	copy(out, turns)
	return out
}

// Append adds turns to a session transcript, trimming the oldest
// entries beyond the per-session cap.
func (s *Store) Append(id string, turns ...model.ChatMessage) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.History(id), turns...)
	if len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	s.cache.Add(id, history)
}
