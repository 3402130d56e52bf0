package utils

import "sync"

// SessionSet is the in-memory set of session tokens minted at login. Tokens
// live for the process lifetime; there is no store to persist or expire them.
type SessionSet struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewSessionSet() *SessionSet {
	return &SessionSet{tokens: make(map[string]struct{})}
}

func (s *SessionSet) Add(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
}

func (s *SessionSet) Has(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}
