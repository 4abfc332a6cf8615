package composer

import (
	"testing"

	"github.com/mizuhane/tagsmith/internal/model"
)

func TestResolveByTrackNumber(t *testing.T) {
	record := &model.CreditRecord{Tracks: []model.TrackCredits{
		{TrackNumber: 1, Title: "Free", Composer: "Shizuku", Lyricist: "Shizuku"},
		{TrackNumber: 2, Title: "Pygmalion", Composer: "Shizuku", Arranger: "Polkadot Stingray"},
	}}
	tracks := []*model.LocalTrack{
		{Path: "01.mp3", TrackNumber: 1, Title: "totally different title"},
		{Path: "02.mp3", TrackNumber: 2, Title: "Pygmalion"},
	}

	got := Resolve(record, tracks)
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}
	if got[0].Credits.Composer != "Shizuku" {
		t.Errorf("track 1 composer = %q", got[0].Credits.Composer)
	}
	if got[1].Credits.Arranger != "Polkadot Stingray" {
		t.Errorf("track 2 arranger = %q", got[1].Credits.Arranger)
	}
}

func TestResolveFallsBackToNormalizedTitle(t *testing.T) {
	record := &model.CreditRecord{Tracks: []model.TrackCredits{
		{Title: "ＰＲｉＳＭ", Composer: "Someone"},
	}}
	tracks := []*model.LocalTrack{
		{Path: "a.flac", TrackNumber: 3, Title: "prism"},
	}

	got := Resolve(record, tracks)
	if len(got) != 1 {
		t.Fatalf("got %d assignments, want 1 via title fallback", len(got))
	}
	if got[0].Track.Path != "a.flac" {
		t.Errorf("assigned to %s", got[0].Track.Path)
	}
}

func TestResolveLeavesUnmatchedTracksAlone(t *testing.T) {
	record := &model.CreditRecord{Tracks: []model.TrackCredits{
		{TrackNumber: 1, Title: "A", Composer: "X"},
		{TrackNumber: 9, Title: "Bonus"}, // no credits at all
	}}
	tracks := []*model.LocalTrack{
		{Path: "01.mp3", TrackNumber: 1, Title: "A"},
		{Path: "02.mp3", TrackNumber: 2, Title: "B"},
		{Path: "09.mp3", TrackNumber: 9, Title: "Bonus"},
	}

	got := Resolve(record, tracks)
	if len(got) != 1 {
		t.Fatalf("got %d assignments, want 1", len(got))
	}
	if got[0].Track.Path != "01.mp3" {
		t.Errorf("assigned to %s, want 01.mp3", got[0].Track.Path)
	}
}

func TestAssignmentCategories(t *testing.T) {
	a := Assignment{Credits: model.TrackCredits{Composer: "X", Lyricist: "Y"}}
	cats := a.Categories()
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	// Write order follows CreditCategories: composer before lyricist.
	if cats[0] != model.FieldComposer || cats[1] != model.FieldLyricist {
		t.Errorf("categories = %v", cats)
	}
}
