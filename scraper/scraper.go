// Package scraper extracts a student's class schedule from saved CUNY portal
// pages. Two portal families are supported: the tabular Student Center layout
// and the Schedule Builder layout, the latter through a chain of fallback
// strategies. All parsing works on a static page snapshot, so every strategy
// is testable against plain HTML fixtures.
package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Format identifies which portal family a page belongs to.
type Format int

const (
	FormatUnknown Format = iota
	FormatStudentCenter
	FormatScheduleBuilder
)

func (f Format) String() string {
	switch f {
	case FormatStudentCenter:
		return "student-center"
	case FormatScheduleBuilder:
		return "schedule-builder"
	}
	return "unknown"
}

// Page is an immutable snapshot of one portal page: its address plus the
// parsed document. It is the only handle the extraction strategies get.
type Page struct {
	URL string
	doc *goquery.Document
}

// NewPage parses raw page HTML into a snapshot.
func NewPage(pageURL, html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page HTML: %w", err)
	}
	return &Page{URL: pageURL, doc: doc}, nil
}

// DetectFormat inspects a page address and routes it to a portal family.
// Unknown addresses select no extraction at all.
func DetectFormat(pageURL string) Format {
	switch {
	case strings.Contains(pageURL, "home.cunyfirst.cuny.edu") && strings.Contains(pageURL, "CLASS_SCHEDULE"):
		return FormatStudentCenter
	case strings.Contains(pageURL, "schedulebuilder.cuny.edu"),
		strings.Contains(pageURL, "sb.cunyfirst.cuny.edu"):
		return FormatScheduleBuilder
	}
	return FormatUnknown
}

// ScrapeSchedule extracts the full schedule from a page snapshot. "Nothing
// found" is not an error: callers receive an empty meeting list and decide
// what that means. now drives the semester and date-range fallbacks.
func ScrapeSchedule(page *Page, now time.Time) ScheduleData {
	var meetings []CourseMeeting

	format := DetectFormat(page.URL)
	switch format {
	case FormatStudentCenter:
		meetings = scrapeStudentCenter(page, now)
	case FormatScheduleBuilder:
		meetings = scrapeScheduleBuilder(page, now)
	default:
		log.Debug().Str("url", page.URL).Msg("address matches no known portal, skipping extraction")
	}

	semester := DetectSemester(page, now)
	log.Info().
		Stringer("format", format).
		Str("semester", semester).
		Int("meetings", len(meetings)).
		Msg("schedule extraction finished")

	return ScheduleData{Semester: semester, Meetings: meetings}
}

// text returns the trimmed text of a selection.
func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// textOr returns the trimmed text of a selection, or fallback when empty.
func textOr(s *goquery.Selection, fallback string) string {
	if t := text(s); t != "" {
		return t
	}
	return fallback
}
