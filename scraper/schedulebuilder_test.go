package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scheduleBuilderURL = "https://schedulebuilder.cuny.edu/schedule?term=122530"

const legendBoxHTML = `
<div id="legend_box">
  <div class="course_box">
    <div class="course_title">CSCI 316</div>
    <div class="header_cell">
      <span class="term_label">2025 Fall</span>
      <span>Programming Languages</span>
    </div>
    <div id="hoursInLegend">Mo, We : 2:00 PM to 3:15 PM</div>
    <div class="rightnclear" title="Instructor(s)">Prof. Smith</div>
    <div class="location_block">Science Building 201</div>
  </div>
  <div class="course_box">
    <div class="course_title">MATH 242</div>
    <div id="hoursInLegend">Tu, Th : 10:00 AM to 11:15 AM</div>
  </div>
  <div class="course_box">
    <div class="course_title">ENGL 110</div>
    <div>no schedule line in this box</div>
  </div>
</div>
`

func TestParseLegendBox(t *testing.T) {
	page := mustPage(t, scheduleBuilderURL, legendBoxHTML)
	schedule := ScrapeSchedule(page, fallSemester)

	// The third box has no schedule line and is skipped.
	require.Len(t, schedule.Meetings, 2)

	csci := schedule.Meetings[0]
	assert.Equal(t, "CSCI-316", csci.CourseID)
	assert.Equal(t, "CSCI 316 - Programming Languages", csci.Title)
	assert.Equal(t, []string{"MO", "WE"}, csci.Days)
	assert.Equal(t, "14:00", csci.StartTime)
	assert.Equal(t, "15:15", csci.EndTime)
	assert.Equal(t, "Prof. Smith", csci.Instructor)
	assert.Equal(t, "Science Building 201", csci.Location)

	math := schedule.Meetings[1]
	assert.Equal(t, "MATH-242", math.CourseID)
	assert.Equal(t, "MATH 242", math.Title)
	assert.Equal(t, []string{"TU", "TH"}, math.Days)
	assert.Equal(t, "TBA", math.Instructor)
	assert.Equal(t, "TBA", math.Location)
}

func TestURLParameterFallback(t *testing.T) {
	// No legend box on the page: the URL-parameter tier takes over and
	// synthesizes placeholder meetings.
	url := "https://sb.cunyfirst.cuny.edu/criteria.jsp?course_0_0=CSCI-316&course_1_0=MATH-242"
	page := mustPage(t, url, `<html><body><div>interactive grid only</div></body></html>`)
	schedule := ScrapeSchedule(page, fallSemester)

	require.Len(t, schedule.Meetings, 2)
	assert.Equal(t, "CSCI-316", schedule.Meetings[0].CourseID)
	assert.Equal(t, "CSCI 316", schedule.Meetings[0].Title)
	assert.Equal(t, "MATH-242", schedule.Meetings[1].CourseID)

	// Placeholder meetings still satisfy the meeting invariant.
	for _, m := range schedule.Meetings {
		assert.True(t, m.Valid())
		assert.Equal(t, []string{"MO", "WE"}, m.Days)
		assert.Equal(t, "09:00", m.StartTime)
		assert.Equal(t, "10:15", m.EndTime)
		assert.Equal(t, "TBA", m.Instructor)
	}
}

func TestURLParameterIndexGap(t *testing.T) {
	// Enumeration stops at the first missing index.
	url := "https://sb.cunyfirst.cuny.edu/criteria.jsp?course_0_0=CSCI-316&course_2_0=MATH-242"
	page := mustPage(t, url, `<html><body></body></html>`)
	schedule := ScrapeSchedule(page, fallSemester)

	require.Len(t, schedule.Meetings, 1)
	assert.Equal(t, "CSCI-316", schedule.Meetings[0].CourseID)
}

func TestCourseBlockScan(t *testing.T) {
	html := `
	<div>
	  <div class="course-info">CSCI 340 Operating Systems ` + "•" + ` 11:00 AM to 12:15 PM ` + "•" + ` Mon, Wed</div>
	</div>`
	page := mustPage(t, "https://schedulebuilder.cuny.edu/schedule", html)
	schedule := ScrapeSchedule(page, fallSemester)

	require.Len(t, schedule.Meetings, 1)
	m := schedule.Meetings[0]
	assert.Equal(t, "CSCI-340", m.CourseID)
	assert.Equal(t, "Operating Systems", m.Title)
	assert.Equal(t, []string{"MO", "WE"}, m.Days)
	assert.Equal(t, "11:00", m.StartTime)
	assert.Equal(t, "12:15", m.EndTime)
}

func TestFreeTextFallback(t *testing.T) {
	// No legend box, no course parameters, no course/class containers: the
	// full free-text scan is the last tier standing.
	html := `
	<div>
	  <p>Enrolled sections</p>
	  <table>
	    <tr>
	      <td>ENGL 110 Writing ` + "•" + ` 9:00 AM to 10:15 AM ` + "•" + ` Tue, Thu</td>
	    </tr>
	  </table>
	</div>`
	page := mustPage(t, "https://schedulebuilder.cuny.edu/schedule", html)
	schedule := ScrapeSchedule(page, fallSemester)

	require.Len(t, schedule.Meetings, 1)
	m := schedule.Meetings[0]
	assert.Equal(t, "ENGL-110", m.CourseID)
	assert.Equal(t, "Writing", m.Title)
	assert.Equal(t, []string{"TU", "TH"}, m.Days)
	assert.Equal(t, "09:00", m.StartTime)
	assert.Equal(t, "10:15", m.EndTime)
}

func TestScheduleBuilderNothingFound(t *testing.T) {
	page := mustPage(t, "https://schedulebuilder.cuny.edu/schedule", `<html><body><p>empty</p></body></html>`)
	schedule := ScrapeSchedule(page, fallSemester)
	assert.Empty(t, schedule.Meetings)
}
