package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Country != "jp" {
		t.Errorf("Country = %q, want default %q", settings.Country, "jp")
	}
	if settings.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want 10", settings.SearchLimit)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "settings.json")

	settings := DefaultSettings()
	settings.MediaRoot = "/srv/music"
	settings.Country = "us"
	settings.ArtworkResizeInTags = false

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.MediaRoot != "/srv/music" || loaded.Country != "us" {
		t.Errorf("loaded settings do not match saved: %+v", loaded)
	}
	if loaded.ArtworkResizeInTags {
		t.Error("ArtworkResizeInTags should have round-tripped as false")
	}
	// Fields absent from the file keep defaults.
	if loaded.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d, want default 10", loaded.SearchLimit)
	}
}

func TestDurations(t *testing.T) {
	s := DefaultSettings()
	if s.HTTPTimeout().Seconds() != 10 {
		t.Errorf("HTTPTimeout = %v, want 10s", s.HTTPTimeout())
	}
	if s.ScrapeDelay().Seconds() != 1 {
		t.Errorf("ScrapeDelay = %v, want 1s", s.ScrapeDelay())
	}
}
