// Package library resolves a human-supplied album name to the local
// directory holding its audio files.
//
// The media root is expected to be laid out the way music managers export
// it: <root>/<artist>/<album>/<tracks>. Album directories match by
// case-insensitive substring, so "prism" finds "PRiSM".
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mizuhane/tagsmith/internal/model"
	"github.com/mizuhane/tagsmith/internal/tagstore"
)

// ErrAlbumNotFound is returned when no album directory under the media
// root matches the requested name.
var ErrAlbumNotFound = errors.New("album not found in local library")

// supportedExtensions lists the audio containers the locator collects.
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".aac":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".wav":  true,
}

// Album is one matched local album directory and its tracks.
type Album struct {
	ArtistDir string
	AlbumDir  string
	Path      string
	Tracks    []*model.LocalTrack
}

// Locator finds local albums and reads their current tag state.
type Locator struct {
	mediaRoot string
	store     tagstore.Store
}

// NewLocator creates a Locator over the given media root.
func NewLocator(mediaRoot string, store tagstore.Store) *Locator {
	return &Locator{mediaRoot: mediaRoot, store: store}
}

// Locate returns every album directory whose name contains albumName,
// case-insensitively, with the contained audio files sorted by filename
// and their current tags loaded.
//
// Fails with ErrAlbumNotFound when nothing matches or the matches hold no
// audio files.
func (l *Locator) Locate(albumName string) ([]*Album, error) {
	entries, err := os.ReadDir(l.mediaRoot)
	if err != nil {
		return nil, fmt.Errorf("read media root %s: %w", l.mediaRoot, err)
	}

	want := strings.ToLower(albumName)

	var albums []*Album
	for _, artistDir := range entries {
		if !artistDir.IsDir() {
			continue
		}

		artistPath := filepath.Join(l.mediaRoot, artistDir.Name())
		albumDirs, err := os.ReadDir(artistPath)
		if err != nil {
			continue
		}

		for _, albumDir := range albumDirs {
			if !albumDir.IsDir() {
				continue
			}
			if !strings.Contains(strings.ToLower(albumDir.Name()), want) {
				continue
			}

			albumPath := filepath.Join(artistPath, albumDir.Name())
			tracks, err := l.collectTracks(albumPath)
			if err != nil {
				// An unreadable matching directory is a real failure,
				// not a missing album.
				return nil, fmt.Errorf("scan album %s: %w", albumPath, err)
			}
			if len(tracks) == 0 {
				continue
			}

			albums = append(albums, &Album{
				ArtistDir: artistDir.Name(),
				AlbumDir:  albumDir.Name(),
				Path:      albumPath,
				Tracks:    tracks,
			})
		}
	}

	if len(albums) == 0 {
		return nil, fmt.Errorf("%w: %q under %s", ErrAlbumNotFound, albumName, l.mediaRoot)
	}

	return albums, nil
}

// collectTracks gathers the audio files directly under (and below) the
// album directory, sorted by path, with tags read through the store.
//
// A file whose tags cannot be read still participates in the run: its
// title falls back to the bare filename and every category reads Absent,
// so artwork may be written and credits matched by filename.
func (l *Locator) collectTracks(albumPath string) ([]*model.LocalTrack, error) {
	var paths []string
	err := filepath.WalkDir(albumPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	tracks := make([]*model.LocalTrack, 0, len(paths))
	for _, path := range paths {
		track := &model.LocalTrack{
			Path:   path,
			Fields: model.TagFields{},
		}

		if info, err := l.store.ReadInfo(path); err == nil {
			track.Title = info.Title
			track.TrackNumber = info.TrackNumber
			track.Fields = info.Fields
		}
		if track.Title == "" {
			base := filepath.Base(path)
			track.Title = strings.TrimSuffix(base, filepath.Ext(base))
		}

		tracks = append(tracks, track)
	}

	return tracks, nil
}
