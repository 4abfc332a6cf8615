package catalog

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mizuhane/tagsmith/internal/httpx"
	"github.com/mizuhane/tagsmith/internal/model"
)

// TowerSource scrapes the Tower Records storefront for album candidates
// and per-track songwriter credits.
//
// Parsing is driven by fixed page-structure assumptions:
//
//   - Search result rows are anchors with class "tr-item-block" whose href
//     is "/item/<numeric id>".
//   - The row's title lives in an element with class
//     "tr-item-block-info-item-name", the artist in
//     "tr-item-block-info-artist-name".
//   - A zero-match page carries the "item-search-no-result" marker.
//   - On product detail pages, each track is an element with class
//     "recorded-contents-list-track-item" containing "-track-number" and
//     "-track-title" children plus a "-track-hidden-area" block where
//     credit lines are labelled by bold spans (作詞／作曲／編曲).
//
// A fetched page that matches none of these assumptions fails with
// ErrScrapeStructureMismatch rather than silently returning nothing.
type TowerSource struct {
	client  *httpx.Client
	baseURL string
	delay   time.Duration
	limit   int
}

// NewTowerSource creates the scraped storefront source.
//
// delay is the politeness pause applied before every storefront request;
// limit caps how many result rows are turned into candidates (each costs
// one detail-page fetch for the track listing).
func NewTowerSource(client *httpx.Client, delay time.Duration, limit int) *TowerSource {
	if limit <= 0 {
		limit = 10
	}
	return &TowerSource{
		client:  client,
		baseURL: "https://tower.jp",
		delay:   delay,
		limit:   limit,
	}
}

// Kind reports the source kind for candidates produced here.
func (s *TowerSource) Kind() model.SourceKind {
	return model.SourceScrapedSite
}

// Search returns album candidates for the query's album name.
//
// The outgoing query converts half-width ampersands to full-width ones
// (the storefront's own search does this) and restricts results to CD
// formats. Each result row is completed with the ordered track listing
// from its product detail page, since the listing page itself carries
// none.
func (s *TowerSource) Search(ctx context.Context, query model.AlbumQuery) ([]model.Candidate, error) {
	processed := strings.ReplaceAll(query.AlbumName, "&", "＆")
	searchURL := fmt.Sprintf("%s/search/item/%s?format=121%%7C131", s.baseURL, url.PathEscape(processed))

	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	page, err := s.client.GetString(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: tower search: %v", ErrSourceUnavailable, err)
	}

	rows, err := parseSearchResults(page, s.baseURL)
	if err != nil {
		return nil, err
	}

	if len(rows) > s.limit {
		rows = rows[:s.limit]
	}

	candidates := make([]model.Candidate, 0, len(rows))
	for _, row := range rows {
		tracks, err := s.fetchTrackListing(ctx, row.detailURL)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, model.Candidate{
			SourceID:   row.productID,
			AlbumName:  row.title,
			ArtistName: row.artist,
			Tracks:     tracks,
			DetailURL:  row.detailURL,
			Source:     model.SourceScrapedSite,
		})
	}

	return candidates, nil
}

// FetchCredits scrapes the per-track songwriter credits from a scraped
// candidate's product detail page.
func (s *TowerSource) FetchCredits(ctx context.Context, candidate model.Candidate) (model.CreditRecord, error) {
	if candidate.DetailURL == "" {
		return model.CreditRecord{}, fmt.Errorf("%w: candidate %s has no detail page", ErrScrapeStructureMismatch, candidate.SourceID)
	}

	if err := s.pause(ctx); err != nil {
		return model.CreditRecord{}, err
	}

	page, err := s.client.GetString(ctx, candidate.DetailURL)
	if err != nil {
		return model.CreditRecord{}, fmt.Errorf("%w: tower detail: %v", ErrSourceUnavailable, err)
	}

	credits, err := parseTrackCredits(page)
	if err != nil {
		return model.CreditRecord{}, err
	}
	return model.CreditRecord{Tracks: credits}, nil
}

// fetchTrackListing retrieves just the numbered titles from a detail page.
func (s *TowerSource) fetchTrackListing(ctx context.Context, detailURL string) ([]model.CandidateTrack, error) {
	if err := s.pause(ctx); err != nil {
		return nil, err
	}

	page, err := s.client.GetString(ctx, detailURL)
	if err != nil {
		return nil, fmt.Errorf("%w: tower detail: %v", ErrSourceUnavailable, err)
	}

	credits, err := parseTrackCredits(page)
	if err != nil {
		return nil, err
	}

	tracks := make([]model.CandidateTrack, 0, len(credits))
	for _, c := range credits {
		tracks = append(tracks, model.CandidateTrack{Number: c.TrackNumber, Title: c.Title})
	}
	return tracks, nil
}

// pause sleeps for the politeness delay, honoring cancellation.
func (s *TowerSource) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// resultRow is one parsed search result row.
type resultRow struct {
	productID string
	title     string
	artist    string
	detailURL string
}

const (
	towerItemBlockMarker = `class="tr-item-block"`
	towerNoResultMarker  = "item-search-no-result"

	towerTitleMarker  = "tr-item-block-info-item-name"
	towerArtistMarker = "tr-item-block-info-artist-name"

	towerTrackItemMarker  = "recorded-contents-list-track-item"
	towerTrackNumMarker   = "-track-number"
	towerTrackTitleMarker = "-track-title"
	towerHiddenAreaMarker = "-track-hidden-area"
)

var towerItemHrefRe = regexp.MustCompile(`href="(/item/(\d+))"`)

// parseSearchResults extracts result rows from a search listing page.
//
// Returns an empty slice (no error) when the page affirmatively reports
// zero matches, and ErrScrapeStructureMismatch when neither result rows
// nor the no-result marker can be found.
func parseSearchResults(page, baseURL string) ([]resultRow, error) {
	segments := splitOnMarker(page, towerItemBlockMarker)
	if len(segments) == 0 {
		if strings.Contains(page, towerNoResultMarker) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: no result rows and no zero-match marker in search page", ErrScrapeStructureMismatch)
	}

	var rows []resultRow
	for _, seg := range segments {
		m := towerItemHrefRe.FindStringSubmatch(seg)
		if m == nil {
			continue
		}
		rows = append(rows, resultRow{
			productID: m[2],
			title:     textAfterMarker(seg, towerTitleMarker),
			artist:    textAfterMarker(seg, towerArtistMarker),
			detailURL: baseURL + m[1],
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: result rows present but none carried an item link", ErrScrapeStructureMismatch)
	}
	return rows, nil
}

// parseTrackCredits extracts the recorded-contents listing from a product
// detail page: track numbers, titles, and the credit lines hidden behind
// each track's expandable area.
func parseTrackCredits(page string) ([]model.TrackCredits, error) {
	segments := splitOnMarker(page, towerTrackItemMarker)
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no track items in detail page", ErrScrapeStructureMismatch)
	}

	credits := make([]model.TrackCredits, 0, len(segments))
	for _, seg := range segments {
		tc := model.TrackCredits{
			Title: textAfterMarker(seg, towerTrackTitleMarker),
		}
		if num := textAfterMarker(seg, towerTrackNumMarker); num != "" {
			tc.TrackNumber, _ = strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(num), "."))
		}

		if idx := strings.Index(seg, towerHiddenAreaMarker); idx != -1 {
			hidden := seg[idx:]
			tc.Lyricist = creditValue(hidden, "作詞")
			tc.Composer = creditValue(hidden, "作曲")
			tc.Arranger = creditValue(hidden, "編曲")
		}

		credits = append(credits, tc)
	}

	return credits, nil
}

// creditValue extracts the value following a bold credit label, e.g.
//
//	<span class="is-bold">作曲：</span><a href="...">菅野よう子</a>
//
// Multiple linked names are joined with single spaces. Returns "" when
// the label is not present for this track.
func creditValue(hidden, label string) string {
	idx := strings.Index(hidden, label)
	if idx == -1 {
		return ""
	}

	rest := hidden[idx+len(label):]
	// The value runs until the next credit label's bold span or the end of
	// the paragraph block.
	end := strings.Index(rest, "is-bold")
	if end != -1 {
		rest = rest[:end]
	}
	if end := strings.Index(rest, "hidden-paragraph"); end != -1 {
		rest = rest[:end]
	}

	value := stripTags(rest)
	value = strings.TrimLeft(value, "：: ")

	// Collapse the whitespace left behind by stripped anchors.
	names := strings.Fields(value)
	if len(names) == 0 {
		return ""
	}
	return strings.Join(names, " ")
}

// splitOnMarker returns the page segments that each start at an occurrence
// of marker and run to the next occurrence (or end of page). The text
// before the first occurrence is discarded.
func splitOnMarker(page, marker string) []string {
	parts := strings.Split(page, marker)
	if len(parts) < 2 {
		return nil
	}
	return parts[1:]
}

// textAfterMarker extracts the first text node after the element carrying
// the given class marker: it finds the marker, skips to the end of the
// current tag, strips any nested opening tags, and returns the trimmed,
// HTML-unescaped text up to the next tag.
func textAfterMarker(seg, marker string) string {
	idx := strings.Index(seg, marker)
	if idx == -1 {
		return ""
	}

	rest := seg[idx:]
	gt := strings.Index(rest, ">")
	if gt == -1 {
		return ""
	}
	rest = rest[gt+1:]

	// Skip nested opening tags until actual text.
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(rest, "<") {
			break
		}
		gt = strings.Index(rest, ">")
		if gt == -1 {
			return ""
		}
		rest = rest[gt+1:]
	}

	end := strings.Index(rest, "<")
	if end != -1 {
		rest = rest[:end]
	}

	return strings.TrimSpace(html.UnescapeString(rest))
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// stripTags removes HTML tags and unescapes entities, inserting a space
// where each tag stood so adjacent text nodes don't fuse.
func stripTags(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(html.UnescapeString(s))
}
