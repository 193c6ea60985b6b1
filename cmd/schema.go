package cmd

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/addon"
)

var schemaTargets = map[string]any{
	"manifest": &addon.Manifest{},
	"catalog":  &addon.CatalogResponse{},
	"stream":   &addon.StreamResponse{},
	"meta":     &addon.MetaResponse{},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd generates JSON schemas for the protocol payloads.
var schemaCmd = &cobra.Command{
	Use:       "schema [manifest|catalog|stream|meta]",
	Short:     "Generate the JSON schema of an addon response",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: lo.Keys(schemaTargets),
	Run: func(cmd *cobra.Command, args []string) {
		target := "manifest"
		if len(args) == 1 {
			target = args[0]
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		printJSON(cmd, reflector.Reflect(schemaTargets[target]))
	},
}
