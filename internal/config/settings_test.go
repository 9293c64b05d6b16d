package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadMissingFileUsesDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))

	settings, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if settings.EmbeddingModel == "" {
		t.Error("Expected default embedding model")
	}
	if settings.TempDir != filepath.Join(".", "data", "temp") {
		t.Errorf("Unexpected default temp dir: %s", settings.TempDir)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "settings.yaml"))

	in := Settings{
		EmbeddingModel:   "text-embedding-3-small",
		APIKey:           "sk-1",
		BaseURL:          "https://api.example.com",
		BaseDir:          "/srv/vvquest",
		TempDir:          "/srv/vvquest/tmp",
		ResourcePacksDir: "/srv/vvquest/packs",
	}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *out != in {
		t.Errorf("Expected %+v, got %+v", in, *out)
	}
}

func TestStore_SaveCredentialsKeepsDirectories(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))

	if err := store.Save(Settings{BaseDir: "/srv/vvquest", TempDir: "/tmp/vv"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if err := store.SaveCredentials("model-x", "sk-2", "https://b.example.com"); err != nil {
		t.Fatalf("SaveCredentials() failed: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if out.APIKey != "sk-2" || out.BaseURL != "https://b.example.com" || out.EmbeddingModel != "model-x" {
		t.Errorf("Credentials not persisted: %+v", out)
	}
	if out.BaseDir != "/srv/vvquest" || out.TempDir != "/tmp/vv" {
		t.Errorf("Directories were overwritten: %+v", out)
	}
}

func TestStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Expected parse error")
	}
}

func TestStore_SaveFailsWhenDirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	store := NewStore(filepath.Join(blocker, "settings.yaml"))
	if err := store.SaveCredentials("m", "k", "u"); err == nil {
		t.Error("Expected error when settings directory cannot be created")
	}
}
