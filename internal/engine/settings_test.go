package engine

import (
	"sync"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSettings_UpdateOnlyAPIKey(t *testing.T) {
	s := NewSettings(Credentials{Model: "m", APIKey: "old", BaseURL: "https://a"})

	got := s.Update(strPtr("new"), nil)

	if got.APIKey != "new" {
		t.Errorf("Expected api key to change, got %q", got.APIKey)
	}
	if got.BaseURL != "https://a" {
		t.Errorf("Expected base url unchanged, got %q", got.BaseURL)
	}
}

func TestSettings_UpdateOnlyBaseURL(t *testing.T) {
	s := NewSettings(Credentials{APIKey: "key", BaseURL: "https://a"})

	s.Update(nil, strPtr("https://b"))

	snap := s.Snapshot()
	if snap.APIKey != "key" {
		t.Errorf("Expected api key unchanged, got %q", snap.APIKey)
	}
	if snap.BaseURL != "https://b" {
		t.Errorf("Expected base url to change, got %q", snap.BaseURL)
	}
}

func TestSettings_EmptyValuesIgnored(t *testing.T) {
	s := NewSettings(Credentials{APIKey: "key", BaseURL: "https://a"})

	s.Update(strPtr(""), strPtr(""))
	s.Seed("", "")

	if snap := s.Snapshot(); snap.APIKey != "key" || snap.BaseURL != "https://a" {
		t.Errorf("Expected unchanged settings, got %+v", snap)
	}
}

func TestSettings_ConcurrentUpdates(t *testing.T) {
	s := NewSettings(Credentials{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Update(strPtr("k"), strPtr("u"))
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if snap := s.Snapshot(); snap.APIKey != "k" || snap.BaseURL != "u" {
		t.Errorf("Unexpected final snapshot %+v", snap)
	}
}
