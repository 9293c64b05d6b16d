package engine

import "sync"

// Settings is the live engine-facing configuration shared by handlers and
// background jobs.
type Settings struct {
	mu    sync.RWMutex
	creds Credentials
}

func NewSettings(creds Credentials) *Settings {
	return &Settings{creds: creds}
}

func (s *Settings) Snapshot() Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds
}

// Update applies only the non-nil, non-empty fields and returns the resulting snapshot.
func (s *Settings) Update(apiKey, baseURL *string) Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	if apiKey != nil && *apiKey != "" {
		s.creds.APIKey = *apiKey
	}
	if baseURL != nil && *baseURL != "" {
		s.creds.BaseURL = *baseURL
	}
	return s.creds
}

// Seed overwrites api key and base url, as done at startup from configured defaults.
// Empty values are ignored.
func (s *Settings) Seed(apiKey, baseURL string) {
	s.Update(&apiKey, &baseURL)
}
