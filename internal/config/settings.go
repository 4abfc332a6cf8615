// Package config loads and saves the tagsmith settings file.
//
// Settings are stored as JSON. A missing file yields the defaults, so a
// fresh install works without any setup beyond pointing MediaRoot at the
// local library.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// MediaRoot is the library root laid out as <root>/<artist>/<album>.
	MediaRoot string `json:"media_root"`

	// CacheDir is where downloaded artwork is cached, one file per album.
	CacheDir string `json:"cache_dir"`

	// Search settings
	Country     string `json:"country"`      // storefront country code for the structured API
	SearchLimit int    `json:"search_limit"` // max candidates requested per source

	// Network settings
	HTTPTimeoutSeconds int     `json:"http_timeout_seconds"`
	ScrapeDelaySeconds float64 `json:"scrape_delay_seconds"` // politeness delay before storefront requests

	// Artwork settings
	ArtworkQuality       string `json:"artwork_quality"` // small, medium, large, original
	ArtworkResizeInTags  bool   `json:"artwork_resize_in_tags"`
	ArtworkMaxSizeInTags int    `json:"artwork_max_size_in_tags"`
	ConvertArtworkToJPG  bool   `json:"convert_artwork_to_jpg"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		MediaRoot: filepath.Join(homeDir, "Music", "iTunes", "iTunes Media", "Music"),
		CacheDir:  filepath.Join(homeDir, ".cache", "tagsmith", "artwork"),

		Country:     "jp",
		SearchLimit: 10,

		HTTPTimeoutSeconds: 10,
		ScrapeDelaySeconds: 1.0,

		ArtworkQuality:       "large",
		ArtworkResizeInTags:  true,
		ArtworkMaxSizeInTags: 1000,
		ConvertArtworkToJPG:  true,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned so the tool can
// run with flags alone.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// HTTPTimeout returns the network timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// ScrapeDelay returns the storefront politeness delay as a duration.
func (s *Settings) ScrapeDelay() time.Duration {
	return time.Duration(s.ScrapeDelaySeconds * float64(time.Second))
}
