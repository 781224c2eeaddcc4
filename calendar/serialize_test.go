package calendar

import (
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cunycal/scraper"
)

func sampleSchedule() scraper.ScheduleData {
	return scraper.ScheduleData{
		Semester: "Fall 2025",
		Meetings: []scraper.CourseMeeting{sampleMeeting()},
	}
}

func TestSerialize(t *testing.T) {
	doc, filename, err := Serialize(sampleSchedule(), ExportSettings{ReminderMinutes: 10})
	require.NoError(t, err)

	assert.Equal(t, "Schedule-Fall-2025.ics", filename)
	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR"))
	assert.Contains(t, doc, "BEGIN:VEVENT")
	assert.Contains(t, doc, "UID:CSCI-316-14:00-MOWE")
	assert.Contains(t, doc, "RRULE:FREQ=WEEKLY;BYDAY=MO,WE;UNTIL=")
	assert.Contains(t, doc, "LOCATION:Science Building 201")

	// The document must parse back through the encoding library.
	cal, err := ics.ParseCalendar(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
}

func TestSerializeReminderAlarm(t *testing.T) {
	withAlarm, _, err := Serialize(sampleSchedule(), ExportSettings{ReminderMinutes: 10})
	require.NoError(t, err)
	assert.Contains(t, withAlarm, "BEGIN:VALARM")
	assert.Contains(t, withAlarm, "ACTION:DISPLAY")
	assert.Contains(t, withAlarm, "TRIGGER:-PT10M")

	noAlarm, _, err := Serialize(sampleSchedule(), ExportSettings{ReminderMinutes: 0})
	require.NoError(t, err)
	assert.NotContains(t, noAlarm, "VALARM")
	assert.NotContains(t, noAlarm, "TRIGGER")
}

func TestSerializeEmptySchedule(t *testing.T) {
	_, _, err := Serialize(scraper.ScheduleData{Semester: "Fall 2025"}, ExportSettings{})
	assert.ErrorIs(t, err, ErrNoMeetings)
}

func TestSerializeAllMeetingsMalformed(t *testing.T) {
	broken := sampleMeeting()
	broken.StartDate = "not-a-date"
	schedule := scraper.ScheduleData{
		Semester: "Fall 2025",
		Meetings: []scraper.CourseMeeting{broken},
	}
	_, _, err := Serialize(schedule, ExportSettings{})
	assert.ErrorIs(t, err, ErrNoEvents)
}

func TestSerializeDropsMalformedKeepsRest(t *testing.T) {
	broken := sampleMeeting()
	broken.CourseID = "BRKN-000"
	broken.StartTime = "garbage"

	schedule := sampleSchedule()
	schedule.Meetings = append(schedule.Meetings, broken)

	doc, _, err := Serialize(schedule, ExportSettings{})
	require.NoError(t, err)
	assert.Contains(t, doc, "CSCI-316")
	assert.NotContains(t, doc, "BRKN-000")
}

func TestFilename(t *testing.T) {
	tests := []struct {
		semester string
		want     string
	}{
		{"Fall 2025", "Schedule-Fall-2025.ics"},
		{"Summer  2025", "Schedule-Summer-2025.ics"},
		{"Spring\t2026", "Schedule-Spring-2026.ics"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.semester))
	}
}
