package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mizuhane/tagsmith/internal/enrich"
	"github.com/mizuhane/tagsmith/internal/model"
)

func newArtworkCommand(flags *rootFlags) *cobra.Command {
	var artist string
	var strict bool
	var parallel bool

	cmd := &cobra.Command{
		Use:   "artwork <album>",
		Short: "Embed catalog cover art into an album's tracks",
		Long: `Searches the remote catalogs for the named album, downloads its
cover art, and embeds it into every track that does not already carry a
picture. Tracks with existing artwork are never touched, so re-running a
completed album is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrichment(flags, args[0], artist, strict, parallel,
				func(ctx context.Context, m *enrich.Manager, q model.AlbumQuery) ([]*model.Summary, error) {
					return m.RunArtwork(ctx, q)
				})
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist name used to narrow ambiguous matches")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail the run if any per-track write fails")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Process multiple matched album directories concurrently")

	return cmd
}

func newComposerCommand(flags *rootFlags) *cobra.Command {
	var artist string
	var strict bool
	var parallel bool

	cmd := &cobra.Command{
		Use:   "composer <album>",
		Short: "Write composer, arranger, and lyricist credits from the catalog",
		Long: `Searches the remote catalogs for the named album, scrapes the
per-track credit listing from the matched entry's detail page, and writes
composer, arranger, and lyricist tags to the local tracks. Existing
credits are overwritten; the catalog listing is taken as authoritative.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrichment(flags, args[0], artist, strict, parallel,
				func(ctx context.Context, m *enrich.Manager, q model.AlbumQuery) ([]*model.Summary, error) {
					return m.RunComposer(ctx, q)
				})
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Artist name used to narrow ambiguous matches")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail the run if any per-track write fails")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Process multiple matched album directories concurrently")

	return cmd
}

// runEnrichment wires a Manager, runs one enrichment operation under a
// signal-cancelled context, and prints the per-album summaries.
func runEnrichment(flags *rootFlags, album, artist string, strict, parallel bool,
	run func(context.Context, *enrich.Manager, model.AlbumQuery) ([]*model.Summary, error)) error {

	settings, err := flags.settings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := enrich.NewManager(settings, flags.logger(), nil)
	manager.Parallel = parallel
	query := model.AlbumQuery{AlbumName: album, KnownArtist: artist}

	summaries, err := run(ctx, manager, query)
	for _, s := range summaries {
		fmt.Println(s)
	}
	if err != nil {
		return err
	}

	if strict {
		for _, s := range summaries {
			if !s.FullySucceeded() {
				return fmt.Errorf("%d write(s) failed", totalFailed(summaries))
			}
		}
	}
	return nil
}

func totalFailed(summaries []*model.Summary) int {
	n := 0
	for _, s := range summaries {
		n += s.Failed
	}
	return n
}
