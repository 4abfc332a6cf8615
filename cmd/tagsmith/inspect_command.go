package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizuhane/tagsmith/internal/enrich"
	"github.com/mizuhane/tagsmith/internal/model"
)

func newInspectCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <album>",
		Short: "Show the current tag state of a local album",
		Long: `Lists the tracks of every local album matching the name, with the
artwork and credit fields each file currently carries. Read-only; no
network access, no writes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := flags.settings()
			if err != nil {
				return err
			}

			manager := enrich.NewManager(settings, flags.logger(), nil)
			albums, err := manager.Inspect(args[0])
			if err != nil {
				return err
			}

			for _, album := range albums {
				fmt.Printf("%s / %s (%d tracks)\n", album.ArtistDir, album.AlbumDir, len(album.Tracks))
				for _, track := range album.Tracks {
					fmt.Printf("  %2d. %-40s %s\n", track.TrackNumber, track.Title, fieldList(track.Fields))
				}
			}
			return nil
		},
	}
}

// fieldList renders the present categories of a track, artwork first.
func fieldList(fields model.TagFields) string {
	if len(fields) == 0 {
		return "(no enrichable fields)"
	}

	out := ""
	if fields.Has(model.FieldArtwork) {
		out = "artwork"
	}
	for _, cat := range model.CreditCategories {
		if !fields.Has(cat) {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s=%s", cat, fields[cat])
	}
	return out
}
