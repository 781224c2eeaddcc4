package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cunycal/calendar"
	"cunycal/downloader"
	"cunycal/exporter"
	"cunycal/scraper"
	"cunycal/settings"
)

var (
	flagURL      string
	flagOut      string
	flagReminder int
)

var exportCmd = &cobra.Command{
	Use:   "export <page.html>",
	Short: "Extract a schedule from a saved portal page and write an .ics file",
	Long: `Export reads a saved portal page (Student Center or Schedule Builder),
extracts the class schedule and writes a recurring-event calendar file.

The page address must be passed with --url; it selects the extraction
strategy the same way the live portal page would.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&flagURL, "url", "", "address of the portal page the snapshot came from (required)")
	exportCmd.Flags().StringVar(&flagOut, "out", "", "output directory (default: config output_dir)")
	exportCmd.Flags().IntVar(&flagReminder, "reminder", calendar.DefaultReminderMinutes,
		"reminder lead time in minutes, 0 disables the alarm")
	_ = exportCmd.MarkFlagRequired("url")
}

func runExport(cmd *cobra.Command, args []string) error {
	html, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading page snapshot: %w", err)
	}
	page, err := scraper.NewPage(flagURL, string(html))
	if err != nil {
		return err
	}

	// A --reminder flag overrides the stored preference for this one export.
	var src exporter.SettingsSource
	if cmd.Flags().Changed("reminder") {
		src = exporter.Static{ReminderMinutes: flagReminder}
	} else {
		store, err := settings.Open(conf.SettingsDB)
		if err != nil {
			log.Warn().Err(err).Msg("settings store unavailable, using defaults")
		} else {
			defer store.Close()
			src = store
		}
	}

	outDir := flagOut
	if outDir == "" {
		outDir = conf.OutputDir
	}

	exp := exporter.Exporter{
		Settings:   src,
		Downloader: downloader.FileDownloader{Dir: outDir},
	}
	result, err := exp.Export(cmd.Context(), page, time.Now())
	if err != nil {
		return err
	}

	log.Info().Str("semester", result.Semester).Int("meetings", result.Meetings).
		Msg("schedule exported")
	fmt.Fprintln(cmd.OutOrStdout(), result.ID)
	return nil
}
