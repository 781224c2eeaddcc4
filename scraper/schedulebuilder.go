package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Schedule Builder pattern set. Overlaps with the generic row patterns but is
// tuned for this layout: course numbers are exactly three digits and the time
// range is spelled with "to".
var (
	blockCourseRe = regexp.MustCompile(`([A-Z]{2,4})\s+(\d{3})`)
	blockTitleRe  = regexp.MustCompile(`[A-Z]{2,4}\s+\d{3}\s+([^\x{2022}\n]+)`)
	blockTimeRe   = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM))\s*to\s*(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	blockDaysRe   = regexp.MustCompile(`(?i)(Mon|Tue|Wed|Thu|Fri|Sat|Sun)(?:,\s*(Mon|Tue|Wed|Thu|Fri|Sat|Sun))?`)

	legendScheduleRe = regexp.MustCompile(`(?is)(.*?)\s*:\s*(\d{1,2}:\d{2}\s*(?:AM|PM))\s*to\s*(\d{1,2}:\d{2}\s*(?:AM|PM))`)
	urlCourseRe      = regexp.MustCompile(`([A-Z]{2,4})-(\d{3})`)
)

// sbStrategy is one tier of the Schedule Builder fallback chain. All tiers
// share the same result contract: a possibly empty list of meetings.
type sbStrategy struct {
	name string
	fn   func(*Page, time.Time) []CourseMeeting
}

// scrapeScheduleBuilder runs the fallback chain in order and stops at the
// first tier that yields anything. An empty tier is not an error, it just
// hands over to the next one.
func scrapeScheduleBuilder(page *Page, now time.Time) []CourseMeeting {
	strategies := []sbStrategy{
		{"legend-box", parseLegendBox},
		{"url-parameters", parseCoursesFromURL},
		{"course-blocks", parseCourseBlocks},
		{"free-text", parseFreeText},
	}

	for _, s := range strategies {
		if meetings := s.fn(page, now); len(meetings) > 0 {
			log.Debug().Str("strategy", s.name).Int("meetings", len(meetings)).
				Msg("schedule builder strategy matched")
			return meetings
		}
		log.Debug().Str("strategy", s.name).Msg("schedule builder strategy yielded nothing")
	}
	return nil
}

// parseLegendBox reads the structured course summary box next to the visual
// calendar grid.
func parseLegendBox(page *Page, now time.Time) []CourseMeeting {
	legend := page.doc.Find("#legend_box, .legend_box")
	if legend.Length() == 0 {
		return nil
	}

	var meetings []CourseMeeting
	legend.Find(".course_box").Each(func(_ int, box *goquery.Selection) {
		if m, ok := parseCourseBox(box, now); ok {
			meetings = append(meetings, m)
		}
	})
	return meetings
}

// parseCourseBox extracts one enrolled course from its legend entry. A box
// without a schedule line, or whose days resolve to nothing, is skipped.
func parseCourseBox(box *goquery.Selection, now time.Time) (CourseMeeting, bool) {
	courseCode := text(box.Find(".course_title").First())
	if courseCode == "" {
		return CourseMeeting{}, false
	}

	title := courseCode
	nameSpan := box.Find(".header_cell span").
		Not(".term_label").Not(".session_label").Not(".mobileNUmber").First()
	if name := text(nameSpan); name != "" {
		title = courseCode + " - " + name
	}

	scheduleText := text(box.Find("#hoursInLegend").First())
	m := legendScheduleRe.FindStringSubmatch(scheduleText)
	if m == nil {
		return CourseMeeting{}, false
	}

	days := ParseDays(strings.TrimSpace(m[1]))
	if len(days) == 0 {
		return CourseMeeting{}, false
	}
	start, okStart := ParseTime(m[2], "")
	end, okEnd := ParseTime(m[3], "")
	if !okStart || !okEnd {
		return CourseMeeting{}, false
	}

	instructor := textOr(box.Find(`.rightnclear[title='Instructor(s)']`).First(), "TBA")
	location := textOr(box.Find(".location_block").First(), "TBA")

	startDate, endDate := SemesterDateRange(now)
	meeting := CourseMeeting{
		CourseID:   strings.Join(strings.Fields(courseCode), "-"),
		Title:      title,
		Instructor: instructor,
		Location:   location,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		StartTime:  start,
		EndTime:    end,
	}
	return meeting, meeting.Valid()
}

// parseCoursesFromURL synthesizes placeholder meetings from the indexed
// course_<i>_0 query parameters. The URL names the enrolled courses but
// carries no meeting detail, so days and times are fixed defaults: callers
// get an approximate schedule rather than nothing. This is the documented
// accuracy ceiling of the tier.
func parseCoursesFromURL(page *Page, now time.Time) []CourseMeeting {
	u, err := url.Parse(page.URL)
	if err != nil {
		return nil
	}
	params := u.Query()
	startDate, endDate := SemesterDateRange(now)

	var meetings []CourseMeeting
	for i := 0; ; i++ {
		param := params.Get(fmt.Sprintf("course_%d_0", i))
		if param == "" {
			break
		}
		m := urlCourseRe.FindStringSubmatch(param)
		if m == nil {
			continue
		}
		meetings = append(meetings, CourseMeeting{
			CourseID:   param,
			Title:      m[1] + " " + m[2],
			Instructor: "TBA",
			Location:   "TBA",
			StartDate:  startDate,
			EndDate:    endDate,
			Days:       []string{"MO", "WE"},
			StartTime:  "09:00",
			EndTime:    "10:15",
		})
	}
	return meetings
}

// parseCourseBlocks scans elements whose class attribute hints at a course or
// class container and applies the block pattern set to their text.
func parseCourseBlocks(page *Page, now time.Time) []CourseMeeting {
	var meetings []CourseMeeting
	page.doc.Find(`[class*='course'], [class*='class']`).Each(func(_ int, block *goquery.Selection) {
		if m, ok := parseBlockText(block.Text(), now); ok {
			meetings = append(meetings, m)
		}
	})
	return meetings
}

// parseBlockText applies the Schedule Builder block patterns to one chunk of
// text: course code, title up to a bullet or line break, "H:MM AM to H:MM PM"
// time range, and abbreviated or full weekday names.
func parseBlockText(blockText string, now time.Time) (CourseMeeting, bool) {
	cm := blockCourseRe.FindStringSubmatch(blockText)
	if cm == nil {
		return CourseMeeting{}, false
	}
	courseID := cm[1] + "-" + cm[2]

	title := courseID
	if tm := blockTitleRe.FindStringSubmatch(blockText); tm != nil {
		title = strings.TrimSpace(tm[1])
	}

	t := blockTimeRe.FindStringSubmatch(blockText)
	if t == nil {
		return CourseMeeting{}, false
	}
	start, okStart := ParseTime(t[1], "")
	end, okEnd := ParseTime(t[2], "")
	if !okStart || !okEnd {
		return CourseMeeting{}, false
	}

	days := ParseDays(blockDaysRe.FindString(blockText))
	if len(days) == 0 {
		return CourseMeeting{}, false
	}

	startDate, endDate := SemesterDateRange(now)
	meeting := CourseMeeting{
		CourseID:   courseID,
		Title:      title,
		Instructor: "TBA",
		Location:   "TBA",
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		StartTime:  start,
		EndTime:    end,
	}
	return meeting, meeting.Valid()
}
