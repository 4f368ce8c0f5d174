// Package config loads the scraper configuration: compiled-in defaults,
// optionally overlaid by a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hotones/pkg/cache"
)

// DefaultFileName is looked up in the invocation directory when no explicit
// config path is given.
const DefaultFileName = "hotones.toml"

// Config holds everything the pipeline and CLI need.
type Config struct {
	PageURL             string `toml:"page_url"`
	FeedURL             string `toml:"feed_url"`
	FetchTimeoutSeconds int    `toml:"fetch_timeout_seconds"`
	CachePath           string `toml:"cache_path"`
	LogLevel            string `toml:"log_level"`
	Enhance             bool   `toml:"enhance"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		PageURL:             "https://hotones.fandom.com/wiki/Hot_Ones_Episode_Database",
		FeedURL:             "https://www.youtube.com/feeds/videos.xml?channel_id=UCPD_bxCRGpmmeQcbe2kpPaA",
		FetchTimeoutSeconds: 15,
		CachePath:           cache.DefaultPath,
		LogLevel:            "info",
		Enhance:             true,
	}
}

// Load returns the defaults overlaid by the TOML file at path. An empty path
// means "use DefaultFileName if present"; a missing default file is not an
// error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FetchTimeout converts the configured seconds to a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

func (c Config) validate() error {
	if c.PageURL == "" {
		return errors.New("page_url must not be empty")
	}
	if c.FeedURL == "" {
		return errors.New("feed_url must not be empty")
	}
	if c.FetchTimeoutSeconds <= 0 {
		return errors.New("fetch_timeout_seconds must be positive")
	}
	if c.CachePath == "" {
		return errors.New("cache_path must not be empty")
	}
	return nil
}
