// Package calendar converts an extracted schedule into a standards-compliant
// iCalendar document: one weekly-recurring VEVENT per course meeting.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cunycal/scraper"
)

// DefaultReminderMinutes is the lead time applied when the settings store has
// no stored preference or cannot be read.
const DefaultReminderMinutes = 10

// ExportSettings is the export configuration supplied by the settings store.
type ExportSettings struct {
	// ReminderMinutes is the alarm lead time; 0 disables the alarm.
	ReminderMinutes int `json:"reminderMinutes"`
}

// Event is one serializable calendar event, derived 1:1 from a CourseMeeting.
// It has no identity beyond a single serialization pass.
type Event struct {
	UID             string
	Title           string
	Description     string
	Location        string
	Start           time.Time // first representative occurrence, local wall clock
	End             time.Time
	ByDay           string // comma-joined day codes
	Until           string // YYYYMMDDTHHMMSSZ, UTC recurrence cutoff
	ReminderMinutes int
}

// RecurrenceRule renders the weekly repeat description with its explicit end
// timestamp.
func (e Event) RecurrenceRule() string {
	return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s", e.ByDay, e.Until)
}

// BuildEvent derives an event record from one meeting. Meetings with
// unparseable date or time fields yield an error so the caller can drop them
// without aborting the rest of the export.
func BuildEvent(m scraper.CourseMeeting, settings ExportSettings) (Event, error) {
	startDate, err := parseLocalDate(m.StartDate)
	if err != nil {
		return Event{}, fmt.Errorf("start date: %w", err)
	}
	endDate, err := parseLocalDate(m.EndDate)
	if err != nil {
		return Event{}, fmt.Errorf("end date: %w", err)
	}
	startHour, startMin, err := parseClock(m.StartTime)
	if err != nil {
		return Event{}, fmt.Errorf("start time: %w", err)
	}
	endHour, endMin, err := parseClock(m.EndTime)
	if err != nil {
		return Event{}, fmt.Errorf("end time: %w", err)
	}
	if len(m.Days) == 0 {
		return Event{}, fmt.Errorf("meeting %s has no weekdays", m.CourseID)
	}

	y, mo, d := startDate.Date()
	return Event{
		UID:             UID(m),
		Title:           fmt.Sprintf("%s (%s)", m.Title, m.CourseID),
		Description:     "Instructor: " + m.Instructor,
		Location:        m.Location,
		Start:           time.Date(y, mo, d, startHour, startMin, 0, 0, time.Local),
		End:             time.Date(y, mo, d, endHour, endMin, 0, 0, time.Local),
		ByDay:           strings.Join(m.Days, ","),
		Until:           formatUntil(endDate),
		ReminderMinutes: settings.ReminderMinutes,
	}, nil
}

// UID is deterministic over (courseId, startTime, days): re-exporting the
// same schedule regenerates identical identifiers, so calendar applications
// recognize a re-import.
func UID(m scraper.CourseMeeting) string {
	return m.CourseID + "-" + m.StartTime + "-" + strings.Join(m.Days, "")
}

// parseLocalDate reads YYYY-MM-DD as a local calendar date. Splitting the
// fields by hand keeps the date anchored to local midnight; parsing it as a
// UTC instant and converting afterwards can land on the previous day.
func parseLocalDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("malformed date %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour > 23 {
		return 0, 0, fmt.Errorf("malformed time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute > 59 {
		return 0, 0, fmt.Errorf("malformed time %q", s)
	}
	return hour, minute, nil
}

// formatUntil advances the recurrence end date to the last instant of that
// day in local time and renders it in UTC. The conversion uses that date's
// own UTC offset, so a daylight-saving switch mid-semester does not move the
// cutoff.
func formatUntil(endDate time.Time) string {
	last := time.Date(endDate.Year(), endDate.Month(), endDate.Day(),
		23, 59, 59, int(999*time.Millisecond), time.Local)
	return last.UTC().Format("20060102T150405") + "Z"
}
