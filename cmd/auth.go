package cmd

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vixstremio/vixstremio/auth"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/icon"
	"github.com/vixstremio/vixstremio/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the TMDB API key stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the TMDB API key stored in the system keyring",
	Long: `Manage the TMDB API key stored in the system keyring.
A key set through tmdb.api_key or TMDB_API_KEY takes precedence over the stored one.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("key", "k", "", "The API key, prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the TMDB API key",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := lo.Must(cmd.Flags().GetString("key"))

		if apiKey == "" {
			prompt := survey.Password{
				Message: "TMDB API key (v3):",
				Help:    "Create one at https://www.themoviedb.org/settings/api",
			}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("empty api key"))
		}

		handleErr(auth.SetKey(apiKey))
		cmd.Printf("%s stored TMDB API key in the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the TMDB API key comes from",
	Run: func(cmd *cobra.Command, args []string) {
		apiKey, source := auth.Credential()
		if source == auth.SourceNone {
			cmd.Printf("%s no TMDB API key configured\n", style.Fg(color.Red)(icon.Get(icon.Fail)))
			return
		}

		cmd.Printf("%s TMDB API key %s from %s\n",
			style.Fg(color.Green)(icon.Get(icon.Key)),
			style.Faint(mask(apiKey)),
			style.Fg(color.Purple)(string(source)),
		)
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the TMDB API key from the keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteKey())
		cmd.Printf("%s removed TMDB API key from the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// mask keeps the last four characters of a secret.
func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}
