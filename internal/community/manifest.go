package community

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	ManifestFileName = "all_manifest.json"
	packManifestName = "manifest.json"
)

var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrInvalidManifest  = errors.New("invalid JSON format in manifest file")
)

//go:generate mockgen -destination=mocks/mock_community.go -package=mocks . Community

// Community rebuilds the aggregated resource-pack manifest.
type Community interface {
	ReloadCommunityInfo(ctx context.Context) error
}

// ManifestPath is where the aggregated manifest lives under tempDir.
func ManifestPath(tempDir string) string {
	return filepath.Join(tempDir, ManifestFileName)
}

// ReadManifest decodes the aggregated manifest at path. Any JSON value is accepted.
func ReadManifest(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return manifest, nil
}

// Builder aggregates every <packsDir>/<pack>/manifest.json into one document
// keyed by pack uuid.
type Builder struct {
	packsDir string
	tempDir  string
	logger   *zerolog.Logger
}

func NewBuilder(packsDir, tempDir string, logger *zerolog.Logger) *Builder {
	return &Builder{
		packsDir: packsDir,
		tempDir:  tempDir,
		logger:   logger,
	}
}

func (b *Builder) ManifestPath() string {
	return ManifestPath(b.tempDir)
}

func (b *Builder) ReloadCommunityInfo(ctx context.Context) error {
	packs, err := b.collect(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(packs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.MkdirAll(b.tempDir, 0o755); err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}

	tmp, err := os.CreateTemp(b.tempDir, ManifestFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create manifest: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := os.Rename(tmpName, b.ManifestPath()); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	b.logger.Info().
		Int("packs", len(packs)).
		Str("path", b.ManifestPath()).
		Msg("Community manifest rebuilt")

	return nil
}

func (b *Builder) collect(ctx context.Context) (map[string]map[string]any, error) {
	packs := make(map[string]map[string]any)

	entries, err := os.ReadDir(b.packsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.logger.Warn().Str("dir", b.packsDir).Msg("Resource packs directory missing")
			return packs, nil
		}
		return nil, fmt.Errorf("failed to list resource packs: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(b.packsDir, entry.Name())
		pack, err := readPack(dir)
		if err != nil {
			b.logger.Warn().Err(err).Str("pack", entry.Name()).Msg("Skipping resource pack")
			continue
		}

		id := pack["uuid"].(string)
		if _, dup := packs[id]; dup {
			b.logger.Warn().Str("pack", entry.Name()).Str("uuid", id).Msg("Duplicate resource pack uuid")
			continue
		}
		pack["dir"] = entry.Name()
		packs[id] = pack
	}

	return packs, nil
}

func readPack(dir string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(dir, packManifestName))
	if err != nil {
		return nil, err
	}

	var pack map[string]any
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("invalid pack manifest: %w", err)
	}

	raw, _ := pack["uuid"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid pack uuid %q: %w", raw, err)
	}
	pack["uuid"] = id.String()

	return pack, nil
}
