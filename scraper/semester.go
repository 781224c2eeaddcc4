package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	termLabelRe  = regexp.MustCompile(`(?i)(\d{4})\s+(Fall|Spring|Summer|Winter)`)
	termCodeRe   = regexp.MustCompile(`(\d{2})(\d{2})(\d{2})`)
	seasonYearRe = regexp.MustCompile(`(?i)(Fall|Spring|Summer|Winter)\s*(\d{4})`)

	titleCaser = cases.Title(language.English)
)

// DetectSemester finds the semester label ("Fall 2025") for a page. It tries,
// in order: an on-page term label element, the term code in the page address,
// a free-text scan of the body, and finally a calendar fallback derived from
// now.
func DetectSemester(page *Page, now time.Time) string {
	var labeled string
	page.doc.Find(".term_label").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := termLabelRe.FindStringSubmatch(s.Text()); m != nil {
			labeled = titleCaser.String(strings.ToLower(m[2])) + " " + m[1]
			return false
		}
		return true
	})
	if labeled != "" {
		return labeled
	}

	if sem, ok := semesterFromTermCode(page.URL); ok {
		return sem
	}

	if m := seasonYearRe.FindStringSubmatch(text(page.doc.Find("body"))); m != nil {
		return titleCaser.String(strings.ToLower(m[1])) + " " + m[2]
	}

	return fmt.Sprintf("%s %d", currentSeason(now), now.Year())
}

// semesterFromTermCode decodes the Student Center term parameter, a six-digit
// code of the form YY|YY|NN where the trailing pair selects the season:
// 10 Spring, 20 Summer, 30 Fall. Unknown trailing codes default to Fall.
func semesterFromTermCode(pageURL string) (string, bool) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}
	term := u.Query().Get("term")
	if term == "" {
		return "", false
	}
	m := termCodeRe.FindStringSubmatch(term)
	if m == nil {
		return "", false
	}

	season := "Fall"
	switch m[3] {
	case "10":
		season = "Spring"
	case "20":
		season = "Summer"
	}
	return season + " 20" + m[2], true
}

func currentSeason(now time.Time) string {
	switch m := int(now.Month()); {
	case m >= 8 || m == 1:
		return "Fall"
	case m >= 2 && m <= 5:
		return "Spring"
	default:
		return "Summer"
	}
}

// SemesterDateRange returns the default inclusive start and end dates
// (YYYY-MM-DD) for the semester containing now. Source formats that carry no
// explicit date range fall back to these bounds.
func SemesterDateRange(now time.Time) (start, end string) {
	year := now.Year()
	switch m := int(now.Month()); {
	case m >= 8 || m == 1:
		return fmt.Sprintf("%d-08-28", year), fmt.Sprintf("%d-12-15", year)
	case m >= 2 && m <= 5:
		return fmt.Sprintf("%d-01-28", year), fmt.Sprintf("%d-05-15", year)
	default:
		return fmt.Sprintf("%d-06-01", year), fmt.Sprintf("%d-08-15", year)
	}
}
