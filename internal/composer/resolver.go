// Package composer pairs scraped per-track credit listings with the
// album's local tracks.
//
// Credits always overwrite whatever the files currently hold. The
// storefront listing is taken as authoritative, so unlike artwork there
// is no skip-if-present rule for composer, arranger, or lyricist tags.
package composer

import (
	"github.com/mizuhane/tagsmith/internal/match"
	"github.com/mizuhane/tagsmith/internal/model"
)

// Assignment binds one local track to the remote credits that will be
// written to it.
type Assignment struct {
	Track   *model.LocalTrack
	Credits model.TrackCredits
}

// Categories returns the credit categories the assignment will write,
// in write order. Categories the source listed no credit for are left
// untouched on the file.
func (a Assignment) Categories() []model.FieldCategory {
	var cats []model.FieldCategory
	for _, cat := range model.CreditCategories {
		if a.Credits.Field(cat) != "" {
			cats = append(cats, cat)
		}
	}
	return cats
}

// Resolve matches the scraped credit record against the local tracks.
//
// A remote entry pairs with a local track by track number when both
// report one, otherwise by normalized title. Local tracks with no
// matching entry, and entries carrying no credit at all, produce no
// assignment. The result preserves local track order.
func Resolve(record *model.CreditRecord, tracks []*model.LocalTrack) []Assignment {
	byNumber := make(map[int]model.TrackCredits)
	byTitle := make(map[string]model.TrackCredits)
	for _, tc := range record.Tracks {
		if tc.Empty() {
			continue
		}
		if tc.TrackNumber != 0 {
			byNumber[tc.TrackNumber] = tc
		}
		if tc.Title != "" {
			byTitle[match.Normalize(tc.Title)] = tc
		}
	}

	var out []Assignment
	for _, track := range tracks {
		credits, ok := lookup(track, byNumber, byTitle)
		if !ok {
			continue
		}
		out = append(out, Assignment{Track: track, Credits: credits})
	}
	return out
}

func lookup(track *model.LocalTrack, byNumber map[int]model.TrackCredits, byTitle map[string]model.TrackCredits) (model.TrackCredits, bool) {
	if track.TrackNumber != 0 {
		if tc, ok := byNumber[track.TrackNumber]; ok {
			return tc, true
		}
	}
	if track.Title != "" {
		if tc, ok := byTitle[match.Normalize(track.Title)]; ok {
			return tc, true
		}
	}
	return model.TrackCredits{}, false
}
