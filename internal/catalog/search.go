package catalog

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mizuhane/tagsmith/internal/model"
)

// Source is one remote catalog queried during a run.
type Source interface {
	// Search returns candidates for the query's album name. An empty
	// slice with a nil error means the source affirmatively reported
	// zero matches.
	Search(ctx context.Context, query model.AlbumQuery) ([]model.Candidate, error)

	// Kind identifies the source's candidates.
	Kind() model.SourceKind
}

// Client fans a query out to every configured source and merges the
// results into a single candidate pool.
type Client struct {
	sources []Source
}

// NewClient creates a search client over the given sources.
func NewClient(sources ...Source) *Client {
	return &Client{sources: sources}
}

// Search queries all sources concurrently and returns the combined pool.
//
// Any source failure fails the whole search: a candidate pool missing one
// source's entries could disambiguate to the wrong album, so partial pools
// are never returned. The combined pool is ordered deterministically by
// (source kind, source ID) regardless of response timing.
func (c *Client) Search(ctx context.Context, query model.AlbumQuery) ([]model.Candidate, error) {
	results := make([][]model.Candidate, len(c.sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range c.sources {
		i, src := i, src
		g.Go(func() error {
			candidates, err := src.Search(ctx, query)
			if err != nil {
				return err
			}
			results[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []model.Candidate
	for _, r := range results {
		pool = append(pool, r...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Source != pool[j].Source {
			return pool[i].Source < pool[j].Source
		}
		return pool[i].SourceID < pool[j].SourceID
	})

	return pool, nil
}
