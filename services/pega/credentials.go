// File: services/pega/credentials.go
package pega

import "sync"

// CredentialStore holds the Basic token of the most recent successful login.
// The Authenticator is the only writer; client calls only read. The token is
// process-wide: a later login overwrites it for every caller.
type CredentialStore struct {
	mu    sync.RWMutex
	token string
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Set replaces the active token.
func (s *CredentialStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the active token, or "" when no login has succeeded yet.
func (s *CredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
