package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mizuhane/tagsmith/internal/httpx"
	"github.com/mizuhane/tagsmith/internal/model"
)

const (
	itunesSearchURL = "https://itunes.apple.com/search"
	itunesLookupURL = "https://itunes.apple.com/lookup"
)

// ITunesSource queries the iTunes Search API for album candidates.
//
// Search issues an album-entity search keyed by album name alone, then a
// per-collection song lookup to fill each candidate's track listing. The
// API's artworkUrl100 thumbnail is upscaled to the configured quality by
// URL substitution; Apple serves the larger renditions at predictable
// paths.
type ITunesSource struct {
	client  *httpx.Client
	country string
	limit   int
	quality string
}

// NewITunesSource creates the structured API source.
//
// country is the storefront country code ("jp", "us", ...). limit caps the
// number of album candidates requested. quality selects the artwork
// rendition: small, medium, large, or original.
func NewITunesSource(client *httpx.Client, country string, limit int, quality string) *ITunesSource {
	if limit <= 0 {
		limit = 10
	}
	return &ITunesSource{client: client, country: country, limit: limit, quality: quality}
}

// Kind reports the source kind for candidates produced here.
func (s *ITunesSource) Kind() model.SourceKind {
	return model.SourceStructuredAPI
}

// itunesResult is one record in a search or lookup response. Search
// results are albums (wrapperType "collection"); lookup results mix the
// collection record with its songs (wrapperType "track").
type itunesResult struct {
	WrapperType    string `json:"wrapperType"`
	CollectionID   int64  `json:"collectionId"`
	CollectionName string `json:"collectionName"`
	ArtistName     string `json:"artistName"`
	ArtworkURL100  string `json:"artworkUrl100"`
	TrackNumber    int    `json:"trackNumber"`
	TrackName      string `json:"trackName"`
}

type itunesResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []itunesResult `json:"results"`
}

// Search returns album candidates for the query's album name.
//
// Fails with ErrSourceUnavailable if either the search call or a song
// lookup cannot complete. An affirmative zero-match response returns an
// empty slice and no error.
func (s *ITunesSource) Search(ctx context.Context, query model.AlbumQuery) ([]model.Candidate, error) {
	params := url.Values{}
	params.Set("term", query.AlbumName)
	params.Set("country", s.country)
	params.Set("entity", "album")
	params.Set("media", "music")
	params.Set("limit", strconv.Itoa(s.limit))

	var res itunesResponse
	if err := s.client.GetJSON(ctx, itunesSearchURL+"?"+params.Encode(), &res); err != nil {
		return nil, fmt.Errorf("%w: itunes search: %v", ErrSourceUnavailable, err)
	}

	if res.ResultCount == 0 {
		return nil, nil
	}

	candidates := make([]model.Candidate, 0, len(res.Results))
	for _, r := range res.Results {
		if r.WrapperType != "collection" || r.CollectionID == 0 {
			continue
		}

		tracks, err := s.lookupTracks(ctx, r.CollectionID)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, model.Candidate{
			SourceID:   strconv.FormatInt(r.CollectionID, 10),
			AlbumName:  r.CollectionName,
			ArtistName: r.ArtistName,
			Tracks:     tracks,
			ArtworkURL: upscaleArtworkURL(r.ArtworkURL100, s.quality),
			Source:     model.SourceStructuredAPI,
		})
	}

	return candidates, nil
}

// lookupTracks fetches the ordered song listing for a collection.
func (s *ITunesSource) lookupTracks(ctx context.Context, collectionID int64) ([]model.CandidateTrack, error) {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(collectionID, 10))
	params.Set("entity", "song")
	params.Set("country", s.country)

	var res itunesResponse
	if err := s.client.GetJSON(ctx, itunesLookupURL+"?"+params.Encode(), &res); err != nil {
		return nil, fmt.Errorf("%w: itunes lookup %d: %v", ErrSourceUnavailable, collectionID, err)
	}

	var tracks []model.CandidateTrack
	for _, r := range res.Results {
		if r.WrapperType != "track" {
			// The lookup echoes the collection record first; skip it.
			continue
		}
		tracks = append(tracks, model.CandidateTrack{
			Number: r.TrackNumber,
			Title:  r.TrackName,
		})
	}

	return tracks, nil
}

// upscaleArtworkURL rewrites the 100x100 thumbnail URL to a larger
// rendition.
//
// Quality mapping: small keeps the 100x100 thumbnail, medium 600x600,
// large 1200x1200, original 3000x3000.
func upscaleArtworkURL(artworkURL100, quality string) string {
	if artworkURL100 == "" {
		return ""
	}

	var size string
	switch quality {
	case "small":
		return artworkURL100
	case "medium":
		size = "600x600bb"
	case "original":
		size = "3000x3000bb"
	default: // large
		size = "1200x1200bb"
	}

	return strings.Replace(artworkURL100, "100x100bb", size, 1)
}
