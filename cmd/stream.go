package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/addon"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/vixsrc"
)

func init() {
	rootCmd.AddCommand(streamCmd)
}

// streamCmd prints the synthesized streams of a composite id.
var streamCmd = &cobra.Command{
	Use:               "stream <movie|series> <id>",
	Short:             "Print the player link of a title or episode",
	Example:           "  vixstremio stream movie tmdb:603\n  vixstremio stream series tmdb:1399:1:1",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category := parseCategory(args[0])

		streams := []*media.Stream{}
		if stream, ok := vixsrc.PlayerFromConfig().Link(args[1], category).Get(); ok {
			streams = append(streams, stream)
		}

		printJSON(cmd, addon.StreamResponse{Streams: streams})
	},
}
