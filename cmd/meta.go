package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/addon"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/tmdb"
)

func init() {
	rootCmd.AddCommand(metaCmd)
}

// metaCmd resolves and prints one display record.
var metaCmd = &cobra.Command{
	Use:               "meta <movie|series> <id>",
	Short:             "Resolve a title through TMDB",
	Example:           "  vixstremio meta movie tmdb:603",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category := parseCategory(args[0])

		external, ok := media.LookupExternal(args[1]).Get()
		if !ok {
			handleErr(fmt.Errorf("malformed id %q, expected tmdb:<id>", args[1]))
		}

		meta := tmdb.New(tmdb.OptionsFromConfig()).Lookup(context.Background(), external, category)
		printJSON(cmd, addon.MetaResponse{Meta: meta.OrEmpty()})
	},
}
