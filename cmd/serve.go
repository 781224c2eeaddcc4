package cmd

import (
	"github.com/spf13/cobra"

	"cunycal/exporter"
	"cunycal/settings"
	"cunycal/site"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the export pipeline over HTTP",
	Long: `Serve starts an HTTP server with three endpoints: POST /export accepts a
page snapshot ({"url": ..., "html": ...}) and responds with the calendar
document, /settings reads and updates the reminder preference, and /health
reports liveness.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default: config listen)")
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := settings.Open(conf.SettingsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	addr := flagListen
	if addr == "" {
		addr = conf.Listen
	}

	server := &site.Server{
		Exporter: exporter.Exporter{Settings: store},
		Settings: store,
	}
	return server.ListenAndServe(addr)
}
