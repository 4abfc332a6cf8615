package catalog

import (
	"errors"
	"testing"
)

const searchPageFixture = `<html><body>
<div class="TOL-item-search-result-PC-result-tile-display-item">
  <a class="tr-item-block" href="/item/4497459">
    <div class="tr-item-block-info-item-name"><a>PRiSM</a></div>
    <div class="tr-item-block-info-artist-name"><p><a>Sora Amamiya</a></p></div>
  </a>
</div>
<div class="TOL-item-search-result-PC-result-tile-display-item">
  <a class="tr-item-block" href="/item/4497460">
    <div class="tr-item-block-info-item-name"><a>PRiSM (Limited Edition)</a></div>
    <div class="tr-item-block-info-artist-name"><p><a>Sora Amamiya</a></p></div>
  </a>
</div>
</body></html>`

func TestParseSearchResults(t *testing.T) {
	rows, err := parseSearchResults(searchPageFixture, "https://tower.jp")
	if err != nil {
		t.Fatalf("parseSearchResults: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.productID != "4497459" {
		t.Errorf("productID = %q, want %q", first.productID, "4497459")
	}
	if first.title != "PRiSM" {
		t.Errorf("title = %q, want %q", first.title, "PRiSM")
	}
	if first.artist != "Sora Amamiya" {
		t.Errorf("artist = %q, want %q", first.artist, "Sora Amamiya")
	}
	if first.detailURL != "https://tower.jp/item/4497459" {
		t.Errorf("detailURL = %q", first.detailURL)
	}
}

func TestParseSearchResults_ZeroMatches(t *testing.T) {
	page := `<html><body><div class="item-search-no-result">該当する商品が見つかりませんでした</div></body></html>`

	rows, err := parseSearchResults(page, "https://tower.jp")
	if err != nil {
		t.Fatalf("zero-match page should not error, got %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParseSearchResults_StructureMismatch(t *testing.T) {
	// Neither result rows nor the no-result marker: layout changed.
	page := `<html><body><div class="totally-new-layout"></div></body></html>`

	_, err := parseSearchResults(page, "https://tower.jp")
	if !errors.Is(err, ErrScrapeStructureMismatch) {
		t.Errorf("err = %v, want ErrScrapeStructureMismatch", err)
	}
}

const detailPageFixture = `<html><body>
<li class="TOL-item-info-PC-tab-recorded-contents-list-track-item">
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-number"><span>1.</span></div>
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-title">Skyreach</div>
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-hidden-area">
    <div class="TOL-item-info-PC-tab-recorded-contents-list-track-hidden-paragraph">
      <div><span class="is-bold">作詞：</span><a href="#">Saori Codama</a></div>
      <div><span class="is-bold">作曲：</span><a href="#">Kegani</a></div>
      <div><span class="is-bold">編曲：</span><a href="#">Evan Call</a></div>
    </div>
  </div>
</li>
<li class="TOL-item-info-PC-tab-recorded-contents-list-track-item">
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-number"><span>2.</span></div>
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-title">Hope Notes</div>
  <div class="TOL-item-info-PC-tab-recorded-contents-list-track-hidden-area">
    <div class="TOL-item-info-PC-tab-recorded-contents-list-track-hidden-paragraph">
      <div><span class="is-bold">作曲：</span><a href="#">Ryota Tomaru</a></div>
    </div>
  </div>
</li>
</body></html>`

func TestParseTrackCredits(t *testing.T) {
	credits, err := parseTrackCredits(detailPageFixture)
	if err != nil {
		t.Fatalf("parseTrackCredits: %v", err)
	}

	if len(credits) != 2 {
		t.Fatalf("got %d tracks, want 2", len(credits))
	}

	first := credits[0]
	if first.TrackNumber != 1 {
		t.Errorf("TrackNumber = %d, want 1", first.TrackNumber)
	}
	if first.Title != "Skyreach" {
		t.Errorf("Title = %q, want %q", first.Title, "Skyreach")
	}
	if first.Lyricist != "Saori Codama" {
		t.Errorf("Lyricist = %q, want %q", first.Lyricist, "Saori Codama")
	}
	if first.Composer != "Kegani" {
		t.Errorf("Composer = %q, want %q", first.Composer, "Kegani")
	}
	if first.Arranger != "Evan Call" {
		t.Errorf("Arranger = %q, want %q", first.Arranger, "Evan Call")
	}

	second := credits[1]
	if second.TrackNumber != 2 || second.Title != "Hope Notes" {
		t.Errorf("second track = %+v", second)
	}
	if second.Composer != "Ryota Tomaru" {
		t.Errorf("Composer = %q, want %q", second.Composer, "Ryota Tomaru")
	}
	// Credits the page doesn't list stay empty.
	if second.Lyricist != "" || second.Arranger != "" {
		t.Errorf("unlisted credits should be empty, got %+v", second)
	}
}

func TestParseTrackCredits_StructureMismatch(t *testing.T) {
	_, err := parseTrackCredits(`<html><body>nothing here</body></html>`)
	if !errors.Is(err, ErrScrapeStructureMismatch) {
		t.Errorf("err = %v, want ErrScrapeStructureMismatch", err)
	}
}
