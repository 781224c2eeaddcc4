package scraper

// CourseMeeting is one recurring weekly class session. A lecture and its lab
// are separate meetings even when they share a course code.
type CourseMeeting struct {
	CourseID   string   // short code, e.g. "CSCI-316"
	Title      string   // human-readable course/section name
	Instructor string   // "TBA" when unknown
	Location   string   // "TBA" when unknown
	StartDate  string   // YYYY-MM-DD, inclusive
	EndDate    string   // YYYY-MM-DD, inclusive
	Days       []string // iCalendar weekday codes: MO,TU,WE,TH,FR,SA,SU
	StartTime  string   // 24-hour HH:MM wall clock
	EndTime    string   // 24-hour HH:MM wall clock
}

// Valid reports whether the meeting satisfies the construction invariant:
// identified, at least one weekday, and a positive-length time window.
// Zero-padded HH:MM strings compare correctly as text.
func (m CourseMeeting) Valid() bool {
	return m.CourseID != "" && m.Title != "" && len(m.Days) > 0 && m.StartTime < m.EndTime
}

// ScheduleData holds one semester's full schedule. Meetings keep the order in
// which they were discovered on the page.
type ScheduleData struct {
	Semester string
	Meetings []CourseMeeting
}
