package client

import (
	"sync"

	"github.com/promptdeck/promptdeck/models"
)

// Session holds the nullable authenticated identity the stores scope their
// favorite and activity rows by. It is constructed once per application
// instance and shared by reference; there are no ambient singletons.
type Session struct {
	mu       sync.RWMutex
	identity *models.Identity
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces the current identity. Called after a successful login or
// registration.
func (s *Session) Set(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
}

// Clear drops the identity. Called on logout.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// Current returns the signed-in identity, or nil when anonymous.
func (s *Session) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Authenticated reports whether an identity is present.
func (s *Session) Authenticated() bool {
	return s.Current() != nil
}
