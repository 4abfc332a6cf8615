package tagstore

import (
	"strings"
	"testing"

	"github.com/mizuhane/tagsmith/internal/model"
)

func TestWriteCredit_UnsupportedContainer(t *testing.T) {
	store := NewFileStore()

	err := store.WriteCredit("/music/track.ogg", model.FieldComposer, "x")
	if err == nil || !strings.Contains(err.Error(), "unsupported container") {
		t.Errorf("err = %v, want unsupported container error", err)
	}

	err = store.WriteArtwork("/music/track.wav", &model.ArtworkAsset{})
	if err == nil || !strings.Contains(err.Error(), "unsupported container") {
		t.Errorf("err = %v, want unsupported container error", err)
	}
}

func TestCreditFieldMappingsCoverAllCategories(t *testing.T) {
	for _, cat := range model.CreditCategories {
		if _, ok := id3CreditFrames[cat]; !ok {
			t.Errorf("no ID3 frame mapped for %s", cat)
		}
		if _, ok := flacCreditFields[cat]; !ok {
			t.Errorf("no vorbis field mapped for %s", cat)
		}
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/a.MP3", ".mp3"},
		{"/music/b.flac", ".flac"},
		{"/music/noext", ""},
	}
	for _, tt := range tests {
		if got := ext(tt.path); got != tt.want {
			t.Errorf("ext(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
