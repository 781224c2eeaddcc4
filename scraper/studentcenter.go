package scraper

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// studentCenterRows covers the row shapes the Student Center renders: rows
// with a CLASS_-prefixed id, rows inside a grouping box, and rows of the
// level-1 grid table.
const studentCenterRows = `tr[id*='CLASS_'], .ps_box-group tr, table.PSLEVEL1GRID tr`

// Generic row pattern set, shared by the Student Center parser. Kept separate
// from the Schedule Builder block patterns; the two layouts are tuned
// independently.
var (
	genericCourseRe = regexp.MustCompile(`([A-Z]{2,4}[-\s]?\d{2,4})`)
	genericTimeRe   = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(?:AM|PM)?\s*[-\x{2013}]\s*(\d{1,2}:\d{2})\s*(AM|PM)?`)
)

func scrapeStudentCenter(page *Page, now time.Time) []CourseMeeting {
	var meetings []CourseMeeting
	page.doc.Find(studentCenterRows).Each(func(_ int, row *goquery.Selection) {
		if m, ok := parseStudentCenterRow(row, now); ok {
			meetings = append(meetings, m)
		}
	})
	return meetings
}

// parseStudentCenterRow reads one schedule row: course code, component
// (appended to the title), combined days+time, then optional room and
// instructor. Rows with fewer than three cells are skipped, not failed.
func parseStudentCenterRow(row *goquery.Selection, now time.Time) (CourseMeeting, bool) {
	cells := row.Find("td, th")
	if cells.Length() < 3 {
		return CourseMeeting{}, false
	}

	courseText := text(cells.Eq(0))
	componentText := text(cells.Eq(1))
	daysTimeText := text(cells.Eq(2))
	room := textOr(cells.Eq(3), "TBA")
	instructor := textOr(cells.Eq(4), "TBA")

	if courseText == "" || daysTimeText == "" {
		return CourseMeeting{}, false
	}

	title := strings.TrimSpace(courseText + " " + componentText)
	return buildMeeting(title, daysTimeText, daysTimeText, room, instructor, now)
}

// buildMeeting assembles a meeting from loosely separated row fields using
// the generic pattern set. The days and time may share one field.
func buildMeeting(courseText, timeText, daysText, location, instructor string, now time.Time) (CourseMeeting, bool) {
	if courseText == "" || timeText == "" {
		return CourseMeeting{}, false
	}

	courseID := courseText
	if m := genericCourseRe.FindStringSubmatch(courseText); m != nil {
		courseID = m[1]
	} else if i := strings.IndexByte(courseText, ' '); i > 0 {
		courseID = courseText[:i]
	}

	tm := genericTimeRe.FindStringSubmatch(timeText)
	if tm == nil {
		return CourseMeeting{}, false
	}
	// tm[3] is the trailing marker of the range; a marker glued to either
	// side's minutes overrides it inside ParseTime.
	start, okStart := ParseTime(tm[1], tm[3])
	end, okEnd := ParseTime(tm[2], tm[3])
	if !okStart || !okEnd {
		return CourseMeeting{}, false
	}

	days := ParseDays(daysText)
	if len(days) == 0 {
		return CourseMeeting{}, false
	}

	startDate, endDate := SemesterDateRange(now)
	meeting := CourseMeeting{
		CourseID:   courseID,
		Title:      courseText,
		Instructor: instructor,
		Location:   location,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		StartTime:  start,
		EndTime:    end,
	}
	if !meeting.Valid() {
		log.Debug().Str("course", courseID).Msg("row parsed but meeting invariant failed, skipping")
		return CourseMeeting{}, false
	}
	return meeting, true
}
