package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/addon"
	"github.com/vixstremio/vixstremio/catalog"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/icon"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/log"
	"github.com/vixstremio/vixstremio/style"
	"github.com/vixstremio/vixstremio/tmdb"
	"github.com/vixstremio/vixstremio/vixsrc"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "Interface to bind, empty for all")
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))

	serveCmd.Flags().IntP("port", "p", 7000, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))

	serveCmd.Flags().IntP("limit", "l", 200, "Maximum titles resolved per catalog request")
	lo.Must0(viper.BindPFlag(key.CatalogLimit, serveCmd.Flags().Lookup("limit")))
}

// serveCmd runs the addon HTTP server until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the addon server",
	Long:  "Run the addon HTTP server. Install it in Stremio by pasting the printed manifest URL.",
	Run: func(cmd *cobra.Command, args []string) {
		resolver := tmdb.New(tmdb.OptionsFromConfig())
		aggregator := catalog.New(vixsrc.ListerFromConfig(), resolver, viper.GetInt(key.CatalogLimit))
		handler := addon.NewHandler(aggregator, resolver, vixsrc.PlayerFromConfig())

		port := viper.GetInt(key.ServerPort)
		server := addon.NewServer(viper.GetString(key.ServerHost), port, handler.Routes())

		printBanner(port, resolver.HasCredential())

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handleErr(addon.Serve(ctx, server))
	},
}

func printBanner(port int, hasCredential bool) {
	out := os.Stderr

	_, _ = fmt.Fprintln(out, style.Title("VixSrc addon running"))
	_, _ = fmt.Fprintf(out, "%s %s %d\n", icon.Get(icon.Success), style.Faint("Port"), port)
	_, _ = fmt.Fprintf(out, "%s %s %s\n", icon.Get(icon.Link), style.Faint("Manifest"), style.Bold(addon.ManifestURL(port)))
	_, _ = fmt.Fprintln(out, style.Italic("Install it in Stremio by pasting the URL above."))

	if !hasCredential {
		log.Warn("no TMDB API key configured, catalogs will be empty")
		_, _ = fmt.Fprintf(out, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)),
			style.Fg(color.Yellow)("TMDB API key missing: set TMDB_API_KEY or run \"vixstremio auth set\""))
	}
}
