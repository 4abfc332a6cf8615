package model

// SourceKind identifies which remote catalog produced a candidate.
type SourceKind int

const (
	// SourceStructuredAPI is the structured search service (iTunes Search API).
	SourceStructuredAPI SourceKind = iota

	// SourceScrapedSite is the HTML-scraped storefront (Tower Records).
	SourceScrapedSite
)

// String returns a short human-readable name for the source.
func (k SourceKind) String() string {
	switch k {
	case SourceStructuredAPI:
		return "itunes"
	case SourceScrapedSite:
		return "tower"
	default:
		return "unknown"
	}
}

// AlbumQuery is the immutable input to a single enrichment run.
//
// AlbumName is the primary lookup key and is always required. KnownArtist
// is optional; when present it is used to narrow the candidate pool during
// disambiguation, never to build the outgoing search query.
type AlbumQuery struct {
	AlbumName   string
	KnownArtist string
}

// CandidateTrack is one entry in a remote candidate's track listing.
type CandidateTrack struct {
	// Number is the 1-indexed track number. Zero means the source did not
	// report one.
	Number int

	// Title is the track title as reported by the source.
	Title string
}

// Candidate is one remote catalog entry that might represent the queried
// album. Candidates are produced fresh per query and never persisted.
//
// Example:
//
//	c := Candidate{
//	    SourceID:   "1440857781",
//	    AlbumName:  "Abbey Road",
//	    ArtistName: "The Beatles",
//	    Source:     SourceStructuredAPI,
//	}
type Candidate struct {
	// SourceID is the source-native identifier (iTunes collection ID or
	// Tower product ID).
	SourceID string

	// AlbumName is the album title as listed by the source.
	AlbumName string

	// ArtistName is the album artist as listed by the source.
	ArtistName string

	// Tracks is the ordered track listing, when the source provides one.
	Tracks []CandidateTrack

	// ArtworkURL points at downloadable cover art. Empty means the source
	// offers none for this entry.
	ArtworkURL string

	// DetailURL is the product detail page holding per-track credits.
	// Only scraped-site candidates carry one.
	DetailURL string

	// Source records which catalog produced this candidate.
	Source SourceKind
}

// HasArtwork reports whether the candidate offers downloadable cover art.
func (c Candidate) HasArtwork() bool {
	return c.ArtworkURL != ""
}
