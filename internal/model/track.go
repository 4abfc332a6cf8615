package model

// FieldCategory names one enrichable slot in a track's tag set.
type FieldCategory int

const (
	// FieldArtwork is the embedded cover picture.
	FieldArtwork FieldCategory = iota

	// FieldComposer is the songwriter credit.
	FieldComposer

	// FieldArranger is the arranger credit.
	FieldArranger

	// FieldLyricist is the lyricist credit.
	FieldLyricist
)

// String returns the category name used in logs and summaries.
func (c FieldCategory) String() string {
	switch c {
	case FieldArtwork:
		return "artwork"
	case FieldComposer:
		return "composer"
	case FieldArranger:
		return "arranger"
	case FieldLyricist:
		return "lyricist"
	default:
		return "unknown"
	}
}

// CreditCategories lists the text credit slots, in write order.
var CreditCategories = []FieldCategory{FieldComposer, FieldArranger, FieldLyricist}

// TagFields is a track's snapshot of enrichable tag categories.
//
// A category is Present when it maps to a non-empty value and Absent
// otherwise; the engine only ever asks "is this category present" before
// deciding whether a write is permitted. For FieldArtwork the stored value
// is the picture's MIME type, not the image bytes.
type TagFields map[FieldCategory]string

// Has reports whether the category is Present.
func (f TagFields) Has(cat FieldCategory) bool {
	return f[cat] != ""
}

// Set records a value for the category. Setting the empty string marks the
// category Absent.
func (f TagFields) Set(cat FieldCategory, value string) {
	if value == "" {
		delete(f, cat)
		return
	}
	f[cat] = value
}

// Clone returns an independent copy of the snapshot.
func (f TagFields) Clone() TagFields {
	out := make(TagFields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// LocalTrack is one audio file belonging to the album being enriched.
//
// The engine never owns the underlying file; all tag access goes through
// the tag store. Fields is a run-scoped snapshot used for idempotency
// checks and bookkeeping, updated after each successful write.
type LocalTrack struct {
	// Path is the absolute path of the audio file.
	Path string

	// TrackNumber is the 1-indexed track number from the file's tags.
	// Zero means the file does not report one.
	TrackNumber int

	// Title is the track title from the file's tags.
	Title string

	// Fields is the current snapshot of enrichable categories.
	Fields TagFields
}

// ArtworkAsset is a downloaded cover image shared by every track in an
// album. It is written once to the cache and attached to tracks by
// reference.
type ArtworkAsset struct {
	// Bytes is the image data exactly as fetched (or as converted by the
	// imaging settings).
	Bytes []byte

	// SourceURL is where the image was downloaded from.
	SourceURL string

	// CachedPath is the album-name-keyed cache file holding the bytes.
	CachedPath string
}

// MIMEType sniffs the asset's image format from its leading bytes.
// JPEG and PNG are recognized; anything else is reported as JPEG, which is
// what the remote catalogs serve in practice.
func (a *ArtworkAsset) MIMEType() string {
	if len(a.Bytes) >= 8 &&
		a.Bytes[0] == 0x89 && a.Bytes[1] == 'P' && a.Bytes[2] == 'N' && a.Bytes[3] == 'G' {
		return "image/png"
	}
	return "image/jpeg"
}

// TrackCredits holds the scraped credit fields for one remote track.
// Empty fields mean the source listed no credit of that kind.
type TrackCredits struct {
	TrackNumber int
	Title       string
	Composer    string
	Arranger    string
	Lyricist    string
}

// Empty reports whether the entry carries no credit at all.
func (tc TrackCredits) Empty() bool {
	return tc.Composer == "" && tc.Arranger == "" && tc.Lyricist == ""
}

// Field returns the credit value for a category.
func (tc TrackCredits) Field(cat FieldCategory) string {
	switch cat {
	case FieldComposer:
		return tc.Composer
	case FieldArranger:
		return tc.Arranger
	case FieldLyricist:
		return tc.Lyricist
	default:
		return ""
	}
}

// CreditRecord is the per-track credit listing scraped from a candidate's
// detail page.
type CreditRecord struct {
	Tracks []TrackCredits
}
