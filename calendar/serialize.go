package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"

	"cunycal/scraper"
)

var (
	// ErrNoMeetings reports an export attempted on an empty schedule.
	ErrNoMeetings = errors.New("schedule contains no meetings")
	// ErrNoEvents reports that every meeting failed event construction.
	ErrNoEvents = errors.New("no valid events could be created from schedule data")
)

// icalLocalTimestamp is the floating local-time form for DTSTART/DTEND; the
// recurrence UNTIL is the only UTC-pinned timestamp in the document.
const icalLocalTimestamp = "20060102T150405"

// Serialize renders a full schedule as an iCalendar document and returns the
// document together with its filename. A meeting whose fields cannot be
// parsed is dropped and logged; the export only fails when there is nothing
// left to encode.
func Serialize(schedule scraper.ScheduleData, settings ExportSettings) (document, filename string, err error) {
	if len(schedule.Meetings) == 0 {
		return "", "", ErrNoMeetings
	}

	events := make([]Event, 0, len(schedule.Meetings))
	for _, m := range schedule.Meetings {
		ev, buildErr := BuildEvent(m, settings)
		if buildErr != nil {
			log.Warn().Err(buildErr).Str("course", m.CourseID).
				Msg("dropping meeting with unparseable fields")
			continue
		}
		events = append(events, ev)
	}
	if len(events) == 0 {
		return "", "", ErrNoEvents
	}

	document, err = encodeCalendar(events)
	if err != nil {
		return "", "", fmt.Errorf("generating calendar file: %w", err)
	}
	return document, Filename(schedule.Semester), nil
}

// encodeCalendar hands the full event set to the iCalendar encoding library
// in one pass.
func encodeCalendar(events []Event) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//cunycal//Schedule Export//EN")

	now := time.Now().UTC()
	for _, e := range events {
		ve := cal.AddEvent(e.UID)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		ve.SetDescription(e.Description)
		ve.SetLocation(e.Location)
		ve.SetProperty(ics.ComponentPropertyDtStart, e.Start.Format(icalLocalTimestamp))
		ve.SetProperty(ics.ComponentPropertyDtEnd, e.End.Format(icalLocalTimestamp))
		ve.SetProperty(ics.ComponentPropertyRrule, e.RecurrenceRule())

		if e.ReminderMinutes > 0 {
			alarm := ve.AddAlarm()
			alarm.SetProperty(ics.ComponentProperty(ics.PropertyAction), string(ics.ActionDisplay))
			alarm.SetProperty(ics.ComponentProperty(ics.PropertyDescription), "Upcoming class - "+e.Title)
			alarm.SetProperty(ics.ComponentProperty(ics.PropertyTrigger), fmt.Sprintf("-PT%dM", e.ReminderMinutes))
		}
	}

	doc := cal.Serialize()
	if doc == "" {
		return "", errors.New("calendar encoder produced no output")
	}
	return doc, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the download name from the semester label, collapsing
// whitespace runs to single hyphens: "Fall 2025" -> "Schedule-Fall-2025.ics".
func Filename(semester string) string {
	return "Schedule-" + whitespaceRun.ReplaceAllString(strings.TrimSpace(semester), "-") + ".ics"
}
