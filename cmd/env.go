package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/config"
	"github.com/vixstremio/vixstremio/style"
	"github.com/vixstremio/vixstremio/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every variable the addon reads, legacy aliases included.
func envNames() []string {
	names := []string{where.EnvConfigPath}
	for _, name := range config.EnvExposed {
		field := config.Default[name]
		names = append(names, field.EnvNames()...)
	}

	slices.Sort(names)
	return slices.Compact(names)
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envNames() {
			value := os.Getenv(env)
			present := value != ""

			if !present && setOnly {
				continue
			}

			if present && unsetOnly {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
