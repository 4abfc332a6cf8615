// Package artwork downloads, caches, and prepares album cover art.
//
// Artwork is fetched at most once per album. The download lands in an
// album-name-keyed cache file and every track of the album shares the
// same in-memory asset. Tracks that already carry an embedded picture
// are skipped, so re-running a completed album performs no writes.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mizuhane/tagsmith/internal/config"
	"github.com/mizuhane/tagsmith/internal/httpx"
	ioutils "github.com/mizuhane/tagsmith/internal/io"
	"github.com/mizuhane/tagsmith/internal/model"
)

// ErrArtworkFetchFailed is returned when cover art cannot be obtained for
// a matched candidate. The album's credit data is unaffected.
var ErrArtworkFetchFailed = errors.New("artwork fetch failed")

// Resolver fetches cover art for matched candidates and decides per track
// whether it should be embedded.
type Resolver struct {
	client   *httpx.Client
	images   *ioutils.ImageService
	cacheDir string

	resizeInTags  bool
	maxSizeInTags int
	convertToJPG  bool
}

// NewResolver creates a Resolver using the artwork settings.
func NewResolver(client *httpx.Client, settings *config.Settings) *Resolver {
	return &Resolver{
		client:        client,
		images:        ioutils.NewImageService(),
		cacheDir:      settings.CacheDir,
		resizeInTags:  settings.ArtworkResizeInTags,
		maxSizeInTags: settings.ArtworkMaxSizeInTags,
		convertToJPG:  settings.ConvertArtworkToJPG,
	}
}

// NeedsArtwork reports whether the track should receive embedded artwork.
// A track that already carries any picture is left as-is.
func NeedsArtwork(track *model.LocalTrack) bool {
	return !track.Fields.Has(model.FieldArtwork)
}

// Resolve obtains the album's cover art, downloading it only when the
// cache does not already hold it.
//
// The returned asset carries the bytes prepared for embedding (resized
// and converted per settings); the cache file keeps the original
// download. Any failure is reported as ErrArtworkFetchFailed.
func (r *Resolver) Resolve(ctx context.Context, candidate *model.Candidate) (*model.ArtworkAsset, error) {
	if !candidate.HasArtwork() {
		return nil, fmt.Errorf("%w: %s offers no artwork for %q",
			ErrArtworkFetchFailed, candidate.Source, candidate.AlbumName)
	}

	cachePath := r.CachePath(candidate.AlbumName)

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if err := ioutils.EnsureDir(r.cacheDir); err != nil {
			return nil, fmt.Errorf("%w: create cache dir: %v", ErrArtworkFetchFailed, err)
		}
		if err := r.client.DownloadFile(ctx, candidate.ArtworkURL, cachePath); err != nil {
			return nil, fmt.Errorf("%w: download %s: %v",
				ErrArtworkFetchFailed, candidate.ArtworkURL, err)
		}
		data, err = os.ReadFile(cachePath)
		if err != nil {
			return nil, fmt.Errorf("%w: read cached artwork: %v", ErrArtworkFetchFailed, err)
		}
	}

	embed, err := r.prepareForEmbedding(data)
	if err != nil {
		return nil, fmt.Errorf("%w: prepare image: %v", ErrArtworkFetchFailed, err)
	}

	return &model.ArtworkAsset{
		Bytes:      embed,
		SourceURL:  candidate.ArtworkURL,
		CachedPath: cachePath,
	}, nil
}

// CachePath returns the cache file for an album name. The key is the
// sanitized album name, so the same album always maps to the same file.
func (r *Resolver) CachePath(albumName string) string {
	return filepath.Join(r.cacheDir, ioutils.SanitizeFileName(albumName)+".jpg")
}

// prepareForEmbedding applies the imaging settings to the raw download.
func (r *Resolver) prepareForEmbedding(data []byte) ([]byte, error) {
	if r.resizeInTags && r.maxSizeInTags > 0 {
		return r.images.ResizeImage(data, r.maxSizeInTags, r.maxSizeInTags)
	}
	if r.convertToJPG {
		return r.images.ConvertToJPEG(data)
	}
	return data, nil
}
