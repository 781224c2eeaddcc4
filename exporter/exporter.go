// Package exporter ties the pipeline together: page snapshot -> extraction ->
// serialization -> download. One call per export; the schedule being built is
// owned by that call and nothing is retried.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cunycal/calendar"
	"cunycal/downloader"
	"cunycal/scraper"
)

// MIMEType is the content type attached to exported calendar documents.
const MIMEType = "text/calendar; charset=utf-8"

// ErrNoSchedule reports a page where no strategy found any meetings.
var ErrNoSchedule = errors.New("no schedule data found on this page")

// SettingsSource supplies export settings. Implementations must fall back to
// defaults internally rather than fail.
type SettingsSource interface {
	Get(ctx context.Context) calendar.ExportSettings
}

// Static is a fixed-value SettingsSource, useful when the lead time comes
// from a flag instead of the store.
type Static calendar.ExportSettings

func (s Static) Get(context.Context) calendar.ExportSettings {
	return calendar.ExportSettings(s)
}

// Exporter runs one full export. Settings and Downloader are optional: a nil
// Settings uses the default reminder lead time, a nil Downloader skips the
// download step (the document is still returned).
type Exporter struct {
	Settings   SettingsSource
	Downloader downloader.Downloader
}

// Result describes a completed export.
type Result struct {
	Filename string
	ID       string // downloader identifier, empty when no downloader is set
	Semester string
	Meetings int
	Document string
}

// Export extracts the schedule from page and serializes it. It fails with
// ErrNoSchedule when extraction finds nothing, and propagates serialization
// and download failures; no partial file is produced.
func (e Exporter) Export(ctx context.Context, page *scraper.Page, now time.Time) (Result, error) {
	schedule := scraper.ScrapeSchedule(page, now)
	if len(schedule.Meetings) == 0 {
		return Result{}, ErrNoSchedule
	}

	settings := calendar.ExportSettings{ReminderMinutes: calendar.DefaultReminderMinutes}
	if e.Settings != nil {
		settings = e.Settings.Get(ctx)
	}

	document, filename, err := calendar.Serialize(schedule, settings)
	if err != nil {
		return Result{}, err
	}

	var id string
	if e.Downloader != nil {
		id, err = e.Downloader.Download([]byte(document), MIMEType, filename)
		if err != nil {
			return Result{}, fmt.Errorf("downloading %s: %w", filename, err)
		}
	}

	return Result{
		Filename: filename,
		ID:       id,
		Semester: schedule.Semester,
		Meetings: len(schedule.Meetings),
		Document: document,
	}, nil
}
