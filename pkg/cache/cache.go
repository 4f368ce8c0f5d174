// Package cache persists the scraped episode list as a single flat JSON
// file. A readable, parseable file means "use cache"; anything else means
// the caller re-runs the pipeline and overwrites.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hotones/pkg/domain"
)

// DefaultPath is the well-known cache location relative to the invocation
// directory.
const DefaultPath = "episodes.json"

// Load reads the episode list from path. Any failure (missing file,
// unreadable file, malformed JSON) is reported as an error so the caller can
// fall back to a fresh scrape.
func Load(path string) ([]domain.EpisodeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var episodes []domain.EpisodeRecord
	if err := json.Unmarshal(data, &episodes); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}
	return episodes, nil
}

// Save writes the episode list to path, replacing any previous file. The
// write goes through a temp file in the same directory so readers never see
// a half-written cache.
func Save(path string, episodes []domain.EpisodeRecord) error {
	data, err := json.MarshalIndent(episodes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode episodes: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".episodes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}
