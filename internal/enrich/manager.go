// Package enrich coordinates a full enrichment run: locating the local
// album, searching the remote catalogs, disambiguating to a single
// candidate, and writing artwork or credits track by track.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mizuhane/tagsmith/internal/artwork"
	"github.com/mizuhane/tagsmith/internal/catalog"
	"github.com/mizuhane/tagsmith/internal/composer"
	"github.com/mizuhane/tagsmith/internal/config"
	"github.com/mizuhane/tagsmith/internal/httpx"
	"github.com/mizuhane/tagsmith/internal/library"
	"github.com/mizuhane/tagsmith/internal/match"
	"github.com/mizuhane/tagsmith/internal/model"
	"github.com/mizuhane/tagsmith/internal/tagstore"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an enrichment progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// albumLocator finds local albums by name.
type albumLocator interface {
	Locate(albumName string) ([]*library.Album, error)
}

// searcher produces the remote candidate pool for a query.
type searcher interface {
	Search(ctx context.Context, query model.AlbumQuery) ([]model.Candidate, error)
}

// creditsFetcher retrieves the per-track credit listing for a scraped
// candidate's detail page.
type creditsFetcher interface {
	FetchCredits(ctx context.Context, candidate model.Candidate) (model.CreditRecord, error)
}

// artworkSource obtains the album's cover art asset.
type artworkSource interface {
	Resolve(ctx context.Context, candidate *model.Candidate) (*model.ArtworkAsset, error)
}

// Manager coordinates enrichment runs.
type Manager struct {
	settings *config.Settings
	log      *logrus.Logger

	locator albumLocator
	search  searcher
	credits creditsFetcher
	artwork artworkSource
	store   tagstore.Store

	// Parallel processes multiple matched album directories concurrently.
	// Tracks within one album are always written sequentially.
	Parallel bool

	onProgress func(ProgressEvent)
}

// NewManager creates a Manager wired to the real catalogs and the local
// file system.
func NewManager(settings *config.Settings, log *logrus.Logger, onProgress func(ProgressEvent)) *Manager {
	client := httpx.NewClient(settings.HTTPTimeout())
	tower := catalog.NewTowerSource(client, settings.ScrapeDelay(), settings.SearchLimit)
	itunes := catalog.NewITunesSource(client, settings.Country, settings.SearchLimit, settings.ArtworkQuality)
	store := tagstore.NewFileStore()

	if log == nil {
		log = logrus.New()
	}

	return &Manager{
		settings:   settings,
		log:        log,
		locator:    library.NewLocator(settings.MediaRoot, store),
		search:     catalog.NewClient(itunes, tower),
		credits:    tower,
		artwork:    artwork.NewResolver(client, settings),
		store:      store,
		onProgress: onProgress,
	}
}

// RunArtwork enriches every local album matching the query with embedded
// cover art. Tracks that already carry a picture are skipped; a fully
// covered album triggers no network traffic beyond the initial search.
func (m *Manager) RunArtwork(ctx context.Context, query model.AlbumQuery) ([]*model.Summary, error) {
	albums, err := m.locator.Locate(query.AlbumName)
	if err != nil {
		return nil, err
	}

	candidates, err := m.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d candidates for %q", len(candidates), query.AlbumName),
		Level:   LevelVerbose,
	})

	return m.runAlbums(ctx, albums, "Artwork", func(ctx context.Context, album *library.Album) (*model.Summary, error) {
		return m.enrichArtwork(ctx, album, candidates, query)
	})
}

func (m *Manager) enrichArtwork(ctx context.Context, album *library.Album, candidates []model.Candidate, query model.AlbumQuery) (*model.Summary, error) {
	summary := &model.Summary{Album: album.AlbumDir}

	var pending []*model.LocalTrack
	for _, track := range album.Tracks {
		if artwork.NeedsArtwork(track) {
			pending = append(pending, track)
		} else {
			summary.Skipped++
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Skipping %s: artwork present", filepath.Base(track.Path)),
				Level:   LevelVerbose,
			})
		}
	}
	if len(pending) == 0 {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("All tracks of %s already carry artwork", album.AlbumDir),
			Level:   LevelInfo,
		})
		return summary, nil
	}

	candidate, err := match.Select(candidates, query, album.Tracks)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Matched %s - %s (%s)", candidate.ArtistName, candidate.AlbumName, candidate.Source),
		Level:   LevelInfo,
	})

	asset, err := m.artwork.Resolve(ctx, &candidate)
	if err != nil {
		// The failure is scoped to the tracks that would have been
		// written; skipped tracks keep their standing and the run
		// continues with a partial-success summary.
		for _, track := range pending {
			summary.AddFailure(track.Path, model.FieldArtwork, err.Error())
		}
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("Artwork unavailable for %s: %v", album.AlbumDir, err),
			Level:   LevelWarning,
		})
		return summary, nil
	}

	for _, track := range pending {
		if err := m.store.WriteArtwork(track.Path, asset); err != nil {
			summary.AddFailure(track.Path, model.FieldArtwork, err.Error())
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Error embedding artwork in %s: %v", filepath.Base(track.Path), err),
				Level:   LevelWarning,
			})
			continue
		}
		track.Fields.Set(model.FieldArtwork, asset.MIMEType())
		summary.Written++
	}

	return summary, nil
}

// RunComposer overwrites the composer, arranger, and lyricist tags of
// every local album matching the query with the credits listed on the
// matched candidate's detail page.
func (m *Manager) RunComposer(ctx context.Context, query model.AlbumQuery) ([]*model.Summary, error) {
	albums, err := m.locator.Locate(query.AlbumName)
	if err != nil {
		return nil, err
	}

	candidates, err := m.search.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	// Credits live on the scraped storefront's detail pages, so the
	// structured API's candidates cannot serve this run.
	var pool []model.Candidate
	for _, c := range candidates {
		if c.DetailURL != "" {
			pool = append(pool, c)
		}
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d credit-bearing candidates for %q", len(pool), query.AlbumName),
		Level:   LevelVerbose,
	})

	return m.runAlbums(ctx, albums, "Credits", func(ctx context.Context, album *library.Album) (*model.Summary, error) {
		return m.enrichCredits(ctx, album, pool, query)
	})
}

// maxParallelAlbums bounds concurrent album processing in Parallel mode.
const maxParallelAlbums = 4

// runAlbums applies one enrichment step to every matched album directory,
// sequentially by default or concurrently when Parallel is set. A failed
// album never stops the others; all failures are joined into the returned
// error. Result order follows album order regardless of timing.
func (m *Manager) runAlbums(ctx context.Context, albums []*library.Album, what string,
	fn func(context.Context, *library.Album) (*model.Summary, error)) ([]*model.Summary, error) {

	results := make([]*model.Summary, len(albums))
	failures := make([]error, len(albums))

	process := func(ctx context.Context, i int) {
		album := albums[i]
		summary, err := fn(ctx, album)
		if err != nil {
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("%s failed for %s: %v", what, album.AlbumDir, err),
				Level:   LevelError,
			})
			failures[i] = fmt.Errorf("%s: %w", album.AlbumDir, err)
			return
		}
		m.progress(ProgressEvent{Message: summary.String(), Level: LevelSuccess})
		results[i] = summary
	}

	if m.Parallel && len(albums) > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelAlbums)
		for i := range albums {
			i := i
			g.Go(func() error {
				process(gctx, i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range albums {
			process(ctx, i)
		}
	}

	var summaries []*model.Summary
	var errs []error
	for i := range albums {
		if results[i] != nil {
			summaries = append(summaries, results[i])
		}
		if failures[i] != nil {
			errs = append(errs, failures[i])
		}
	}
	return summaries, errors.Join(errs...)
}

func (m *Manager) enrichCredits(ctx context.Context, album *library.Album, pool []model.Candidate, query model.AlbumQuery) (*model.Summary, error) {
	summary := &model.Summary{Album: album.AlbumDir}

	candidate, err := match.Select(pool, query, album.Tracks)
	if err != nil {
		return nil, err
	}
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Matched %s - %s (%s)", candidate.ArtistName, candidate.AlbumName, candidate.Source),
		Level:   LevelInfo,
	})

	record, err := m.credits.FetchCredits(ctx, candidate)
	if err != nil {
		return nil, err
	}

	assignments := composer.Resolve(&record, album.Tracks)
	if len(assignments) == 0 {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("No credits listed for any track of %s", album.AlbumDir),
			Level:   LevelWarning,
		})
		return summary, nil
	}

	for _, a := range assignments {
		for _, cat := range a.Categories() {
			value := a.Credits.Field(cat)
			if err := m.store.WriteCredit(a.Track.Path, cat, value); err != nil {
				summary.AddFailure(a.Track.Path, cat, err.Error())
				m.progress(ProgressEvent{
					Message: fmt.Sprintf("Error writing %s to %s: %v", cat, filepath.Base(a.Track.Path), err),
					Level:   LevelWarning,
				})
				continue
			}
			a.Track.Fields.Set(cat, value)
			summary.Written++
		}
	}

	return summary, nil
}

// Inspect returns the local albums matching the name with their current
// tag snapshots, performing no network access and no writes.
func (m *Manager) Inspect(albumName string) ([]*library.Album, error) {
	return m.locator.Locate(albumName)
}

// progress forwards an event to the callback and mirrors it to the log.
func (m *Manager) progress(event ProgressEvent) {
	switch event.Level {
	case LevelVerbose:
		m.log.Debug(event.Message)
	case LevelWarning:
		m.log.Warn(event.Message)
	case LevelError:
		m.log.Error(event.Message)
	default:
		m.log.Info(event.Message)
	}

	if m.onProgress != nil {
		m.onProgress(event)
	}
}
