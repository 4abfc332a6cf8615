package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mizuhane/tagsmith/internal/model"
	"github.com/mizuhane/tagsmith/internal/tagstore"
)

// fakeStore serves canned tag info keyed by base filename.
type fakeStore struct {
	info map[string]tagstore.TrackInfo
}

func (s *fakeStore) ReadInfo(path string) (tagstore.TrackInfo, error) {
	info, ok := s.info[filepath.Base(path)]
	if !ok {
		return tagstore.TrackInfo{}, errors.New("no tags")
	}
	return info, nil
}

func (s *fakeStore) WriteCredit(string, model.FieldCategory, string) error {
	return errors.New("read only")
}

func (s *fakeStore) WriteArtwork(string, *model.ArtworkAsset) error {
	return errors.New("read only")
}

func seedLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := []string{
		"Polkadot Stingray/Uchoten/01 Free.mp3",
		"Polkadot Stingray/Uchoten/02 Pygmalion.mp3",
		"Polkadot Stingray/Uchoten/cover.jpg",
		"Ging Nang Boyz/Kimi to Boku/01 Tokyo.flac",
		"Ging Nang Boyz/Empty Album/notes.txt",
	}
	for _, rel := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLocate(t *testing.T) {
	root := seedLibrary(t)
	store := &fakeStore{info: map[string]tagstore.TrackInfo{
		"01 Free.mp3": {
			Title:       "FREE",
			TrackNumber: 1,
			Fields:      model.TagFields{model.FieldComposer: "Shizuku"},
		},
	}}
	loc := NewLocator(root, store)

	albums, err := loc.Locate("uchoten")
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if len(albums) != 1 {
		t.Fatalf("got %d albums, want 1", len(albums))
	}

	album := albums[0]
	if album.AlbumDir != "Uchoten" {
		t.Errorf("AlbumDir = %q, want Uchoten", album.AlbumDir)
	}
	if len(album.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2 (cover.jpg must be skipped)", len(album.Tracks))
	}

	// First track has tags, second falls back to its filename.
	if album.Tracks[0].Title != "FREE" || album.Tracks[0].TrackNumber != 1 {
		t.Errorf("track 1 = %q #%d, want FREE #1", album.Tracks[0].Title, album.Tracks[0].TrackNumber)
	}
	if !album.Tracks[0].Fields.Has(model.FieldComposer) {
		t.Error("track 1 composer field lost")
	}
	if album.Tracks[1].Title != "02 Pygmalion" {
		t.Errorf("track 2 title = %q, want filename fallback", album.Tracks[1].Title)
	}
}

func TestLocateNotFound(t *testing.T) {
	root := seedLibrary(t)
	loc := NewLocator(root, &fakeStore{})

	_, err := loc.Locate("nonexistent album")
	if !errors.Is(err, ErrAlbumNotFound) {
		t.Errorf("err = %v, want ErrAlbumNotFound", err)
	}

	// A directory match with no audio files is still not found.
	_, err = loc.Locate("empty album")
	if !errors.Is(err, ErrAlbumNotFound) {
		t.Errorf("err = %v, want ErrAlbumNotFound for audio-less dir", err)
	}
}

func TestLocateUnreadableAlbumDirIsNotNotFound(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := seedLibrary(t)
	blocked := filepath.Join(root, "Polkadot Stingray", "Uchoten")
	if err := os.Chmod(blocked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(blocked, 0o755) })

	loc := NewLocator(root, &fakeStore{})

	_, err := loc.Locate("uchoten")
	if err == nil {
		t.Fatal("expected an error for an unreadable album directory")
	}
	if errors.Is(err, ErrAlbumNotFound) {
		t.Errorf("err = %v; an unreadable directory must not read as not-found", err)
	}
}

func TestLocateTracksSorted(t *testing.T) {
	root := seedLibrary(t)
	loc := NewLocator(root, &fakeStore{})

	albums, err := loc.Locate("Uchoten")
	if err != nil {
		t.Fatal(err)
	}
	tracks := albums[0].Tracks
	for i := 1; i < len(tracks); i++ {
		if tracks[i-1].Path >= tracks[i].Path {
			t.Errorf("tracks out of order: %s before %s", tracks[i-1].Path, tracks[i].Path)
		}
	}
}
