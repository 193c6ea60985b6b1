package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/style"
	"github.com/vixstremio/vixstremio/where"
)

// whereTarget pairs a resolvable path with its CLI flag.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort string
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Config file", where.ConfigFile, "file", "f"},
	{"Logs", where.Logs, "logs", "l"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		whereCmd.Flags().BoolP(n.argLong, n.argShort, false, n.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays the filesystem paths used by the addon.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths used by the addon",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.Purple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
