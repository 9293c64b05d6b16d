package community

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	packUUID  = "6f1c2a9e-3b7d-4c52-9e8a-0d4b5f6a7c81"
	otherUUID = "0b9f8e7d-6c5b-4a39-8271-605f4e3d2c1b"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func writePack(t *testing.T, packsDir, name, body string) {
	t.Helper()
	dir := filepath.Join(packsDir, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(body), 0o644))
}

func TestBuilder_ReloadCommunityInfo(t *testing.T) {
	root := t.TempDir()
	packsDir := filepath.Join(root, "resource_packs")
	tempDir := filepath.Join(root, "temp")

	writePack(t, packsDir, "cats", `{"uuid":"`+packUUID+`","name":"Cats","version":"1.0.0"}`)
	writePack(t, packsDir, "dogs", `{"uuid":"`+otherUUID+`","name":"Dogs"}`)
	writePack(t, packsDir, "broken", `{"uuid":"not-a-uuid"}`)
	writePack(t, packsDir, "garbage", `{`)

	b := NewBuilder(packsDir, tempDir, newTestLogger())
	require.NoError(t, b.ReloadCommunityInfo(context.Background()))

	raw, err := ReadManifest(ManifestPath(tempDir))
	require.NoError(t, err)
	manifest, ok := raw.(map[string]any)
	require.True(t, ok, "expected manifest object, got %T", raw)

	assert.Len(t, manifest, 2)
	cats, ok := manifest[packUUID].(map[string]any)
	require.True(t, ok, "expected cats pack keyed by uuid")
	assert.Equal(t, "Cats", cats["name"])
	assert.Equal(t, "cats", cats["dir"])
	assert.Contains(t, manifest, otherUUID)
}

func TestBuilder_ReloadCommunityInfo_MissingPacksDir(t *testing.T) {
	root := t.TempDir()
	b := NewBuilder(filepath.Join(root, "nope"), root, newTestLogger())

	require.NoError(t, b.ReloadCommunityInfo(context.Background()))

	manifest, err := ReadManifest(b.ManifestPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, manifest)
}

func TestReadManifest_AnyJSONValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Cats"},{"name":"Dogs"}]`), 0o644))

	manifest, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"name": "Cats"},
		map[string]any{"name": "Dogs"},
	}, manifest)
}

func TestReadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadManifest(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrManifestNotFound)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadManifest(bad)
	assert.ErrorIs(t, err, ErrInvalidManifest)
}

func TestWatcher_InvalidatesOnPackChange(t *testing.T) {
	root := t.TempDir()
	packsDir := filepath.Join(root, "resource_packs")
	tempDir := filepath.Join(root, "temp")
	writePack(t, packsDir, "cats", `{"uuid":"`+packUUID+`"}`)

	b := NewBuilder(packsDir, tempDir, newTestLogger())
	require.NoError(t, b.ReloadCommunityInfo(context.Background()))

	w, err := NewWatcher(packsDir, b.ManifestPath(), newTestLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writePack(t, packsDir, "dogs", `{"uuid":"`+otherUUID+`"}`)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(b.ManifestPath())
		return os.IsNotExist(err)
	}, 5*time.Second, 20*time.Millisecond)
}
