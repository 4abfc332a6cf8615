// Package match selects exactly one remote candidate for a queried album,
// or refuses.
//
// The selection policy is strict and deterministic: the same candidate
// pool, query, and local track set always yield the same candidate or the
// same failure kind. A wrong pick here corrupts the metadata of an entire
// local album, so near-misses are discarded rather than fuzzily accepted
// and surviving ties are reported, never guessed through.
package match

import (
	"errors"

	"github.com/mizuhane/tagsmith/internal/model"
)

// ErrNoMatch is returned when no candidate's album name matches the query
// exactly (after normalization).
var ErrNoMatch = errors.New("no matching catalog entry")

// ErrAmbiguousMatch is returned when more than one candidate survives
// every filtering step. The caller surfaces this to a human instead of
// guessing.
var ErrAmbiguousMatch = errors.New("ambiguous catalog match")

// Select picks the single candidate representing the queried album.
//
// The policy, applied in order:
//
//  1. Keep only candidates whose album name matches the query exactly,
//     case-insensitively (width-folded and NFKC-normalized first).
//  2. One survivor: done.
//  3. If the query names a known artist, keep only candidates whose
//     artist matches it the same way; a single survivor is returned.
//  4. Score remaining candidates by track-list agreement with the local
//     tracks: only candidates whose track count equals the local count
//     are scored, by the number of exactly matching titles in order.
//     The best score wins; a score tie is broken by preferring
//     StructuredAPI candidates over ScrapedSite ones.
//  5. An empty pool after step 1 fails with ErrNoMatch; a tie that
//     survives step 4 fails with ErrAmbiguousMatch.
func Select(candidates []model.Candidate, query model.AlbumQuery, localTracks []*model.LocalTrack) (model.Candidate, error) {
	wantAlbum := Normalize(query.AlbumName)

	var pool []model.Candidate
	for _, c := range candidates {
		if Normalize(c.AlbumName) == wantAlbum {
			pool = append(pool, c)
		}
	}

	if len(pool) == 0 {
		return model.Candidate{}, ErrNoMatch
	}
	if len(pool) == 1 {
		return pool[0], nil
	}

	if query.KnownArtist != "" {
		wantArtist := Normalize(query.KnownArtist)
		var filtered []model.Candidate
		for _, c := range pool {
			if Normalize(c.ArtistName) == wantArtist {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) == 1 {
			return filtered[0], nil
		}
		if len(filtered) > 1 {
			pool = filtered
		}
		// A filter that removes everything is ignored: the known artist
		// may be tagged differently locally than the catalogs list it,
		// and discarding the whole pool here would turn a resolvable
		// track-list comparison into a false NoMatch.
	}

	return selectByTrackOverlap(pool, localTracks)
}

// selectByTrackOverlap scores candidates against the local track set and
// returns the single best one, or ErrAmbiguousMatch when the best score is
// shared across source kinds' tie-break.
func selectByTrackOverlap(pool []model.Candidate, localTracks []*model.LocalTrack) (model.Candidate, error) {
	localTitles := make([]string, len(localTracks))
	for i, t := range localTracks {
		localTitles[i] = Normalize(t.Title)
	}

	bestScore := -1
	var best []model.Candidate
	for _, c := range pool {
		score := overlapScore(c, localTitles)
		switch {
		case score > bestScore:
			bestScore = score
			best = []model.Candidate{c}
		case score == bestScore:
			best = append(best, c)
		}
	}

	if len(best) == 1 {
		return best[0], nil
	}

	// Tie-break: the structured source is considered more authoritative
	// than the scraped one.
	var structured []model.Candidate
	for _, c := range best {
		if c.Source == model.SourceStructuredAPI {
			structured = append(structured, c)
		}
	}
	if len(structured) == 1 {
		return structured[0], nil
	}

	return model.Candidate{}, ErrAmbiguousMatch
}

// overlapScore counts exact position-wise title matches between the
// candidate's track list and the local titles. Candidates whose track
// count differs from the local count score -1 and can never beat a
// count-matching candidate; they can still tie with each other.
func overlapScore(c model.Candidate, localTitles []string) int {
	if len(c.Tracks) != len(localTitles) {
		return -1
	}

	score := 0
	for i, ct := range c.Tracks {
		if Normalize(ct.Title) == localTitles[i] {
			score++
		}
	}
	return score
}
