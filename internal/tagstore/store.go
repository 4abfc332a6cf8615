// Package tagstore reads and writes the enrichable tag fields of audio
// files. Reads go through a single format-sniffing path; writes dispatch
// on file extension to the container-specific writer (ID3v2 for MP3,
// Vorbis comments and PICTURE blocks for FLAC).
//
// The store exposes a narrow get/set-field contract. It never interprets
// values: the decision of whether a field may be written belongs to the
// resolvers, not here.
package tagstore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mizuhane/tagsmith/internal/model"
)

// TrackInfo is the tag snapshot the store reads from a file.
type TrackInfo struct {
	Title       string
	TrackNumber int
	Fields      model.TagFields
}

// Store is the abstract get/set-field contract the engine writes through.
type Store interface {
	// ReadInfo returns the track's title, number, and enrichable field
	// snapshot.
	ReadInfo(path string) (TrackInfo, error)

	// WriteCredit writes a text credit field. The write replaces any
	// existing value for the category.
	WriteCredit(path string, cat model.FieldCategory, value string) error

	// WriteArtwork embeds the asset as the file's front cover, replacing
	// any existing embedded pictures.
	WriteArtwork(path string, asset *model.ArtworkAsset) error
}

// FileStore is the on-disk Store implementation.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// WriteCredit implements Store.
func (s *FileStore) WriteCredit(path string, cat model.FieldCategory, value string) error {
	switch ext(path) {
	case ".mp3":
		return writeID3Credit(path, cat, value)
	case ".flac":
		return writeFLACCredit(path, cat, value)
	default:
		return fmt.Errorf("write %s: unsupported container %q", cat, ext(path))
	}
}

// WriteArtwork implements Store.
func (s *FileStore) WriteArtwork(path string, asset *model.ArtworkAsset) error {
	switch ext(path) {
	case ".mp3":
		return writeID3Artwork(path, asset)
	case ".flac":
		return writeFLACArtwork(path, asset)
	default:
		return fmt.Errorf("write artwork: unsupported container %q", ext(path))
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
