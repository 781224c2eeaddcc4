package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectSemesterFromTermLabel(t *testing.T) {
	html := `<div><span class="term_label">2025 Fall</span></div>`
	page := mustPage(t, scheduleBuilderURL, html)
	assert.Equal(t, "Fall 2025", DetectSemester(page, fallSemester))
}

func TestDetectSemesterFromTermCode(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"122510", "Spring 2025"},
		{"122520", "Summer 2025"},
		{"122530", "Fall 2025"},
		{"122690", "Fall 2026"}, // unknown trailing code defaults to Fall
	}
	for _, tt := range tests {
		url := "https://home.cunyfirst.cuny.edu/psp/CLASS_SCHEDULE?term=" + tt.term
		page := mustPage(t, url, `<div>no label</div>`)
		assert.Equal(t, tt.want, DetectSemester(page, fallSemester), tt.term)
	}
}

func TestDetectSemesterFromBodyText(t *testing.T) {
	html := `<html><body><h1>Spring 2026 Class Schedule</h1></body></html>`
	page := mustPage(t, "https://schedulebuilder.cuny.edu/schedule", html)
	assert.Equal(t, "Spring 2026", DetectSemester(page, fallSemester))
}

func TestDetectSemesterCalendarFallback(t *testing.T) {
	page := mustPage(t, "https://schedulebuilder.cuny.edu/schedule", `<div>nothing here</div>`)

	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), "Fall 2025"},
		{time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC), "Fall 2025"},
		{time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), "Fall 2026"},
		{time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "Spring 2026"},
		{time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC), "Summer 2026"},
		{time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC), "Summer 2026"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectSemester(page, tt.now), tt.now)
	}
}

func TestSemesterDateRange(t *testing.T) {
	tests := []struct {
		now        time.Time
		start, end string
	}{
		{time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), "2025-08-28", "2025-12-15"},
		{time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "2026-01-28", "2026-05-15"},
		{time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), "2026-06-01", "2026-08-15"},
	}
	for _, tt := range tests {
		start, end := SemesterDateRange(tt.now)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}
