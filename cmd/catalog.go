package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/addon"
	"github.com/vixstremio/vixstremio/catalog"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/icon"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/style"
	"github.com/vixstremio/vixstremio/util"
)

func completionCategories(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Map(media.Categories(), func(c media.Category, _ int) string { return c.String() }), cobra.ShellCompDirectiveNoFileComp
}

func parseCategory(raw string) media.Category {
	category, ok := media.ParseCategory(raw)
	if !ok {
		handleErr(fmt.Errorf("unknown type %s, expected movie or series", style.Fg(color.Red)(raw)))
	}
	return category
}

func printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(v))
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().IntP("limit", "l", 0, "Maximum titles to resolve, 0 uses catalog.limit")
	catalogCmd.Flags().BoolP("json", "j", false, "Print the catalog response as JSON")
}

// catalogCmd prints the aggregated catalog of a category.
var catalogCmd = &cobra.Command{
	Use:               "catalog <movie|series>",
	Short:             "Build and print the catalog of a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionCategories,
	Run: func(cmd *cobra.Command, args []string) {
		category := parseCategory(args[0])
		metas := catalog.FromConfig().Catalog(context.Background(), category, lo.Must(cmd.Flags().GetInt("limit")))

		if lo.Must(cmd.Flags().GetBool("json")) {
			printJSON(cmd, addon.CatalogResponse{Metas: metas})
			return
		}

		cmd.Println(style.Title(util.Capitalize(category.String())))
		for _, meta := range metas {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Success), style.Bold(meta.Name), style.Faint(meta.ID))
		}
		cmd.Println(style.Fg(color.Cyan)(util.Quantify(len(metas), "title", "titles")))
	},
}
