package scraper

import (
	"regexp"
	"strings"
)

// dayCodes maps every portal spelling to the two-letter iCalendar code.
// TH and SU are reserved for Thursday and Sunday so the single letters T and
// S stay unambiguous (Tuesday and Saturday). Canonical codes map to
// themselves, which makes normalization idempotent.
var dayCodes = map[string]string{
	"M": "MO", "T": "TU", "W": "WE", "TH": "TH", "F": "FR", "S": "SA", "SU": "SU",

	"Mo": "MO", "Tu": "TU", "We": "WE", "Th": "TH", "Fr": "FR", "Sa": "SA", "Su": "SU",

	"MO": "MO", "TU": "TU", "WE": "WE", "FR": "FR", "SA": "SA",

	"Mon": "MO", "Tue": "TU", "Wed": "WE", "Thu": "TH", "Fri": "FR", "Sat": "SA", "Sun": "SU",

	"Monday": "MO", "Tuesday": "TU", "Wednesday": "WE", "Thursday": "TH",
	"Friday": "FR", "Saturday": "SA", "Sunday": "SU",
}

var dayTokenSplit = regexp.MustCompile(`[,\s]+`)

// ParseDays normalizes a free-form weekday string ("MoWe", "Tue, Thu",
// "Monday, Wednesday") into iCalendar codes. Unrecognized tokens are dropped
// silently, first-appearance order is preserved and duplicates collapse. An
// all-unrecognized input yields an empty set, which rejects the meeting.
func ParseDays(s string) []string {
	var days []string
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			days = append(days, code)
		}
	}

	for _, tok := range dayTokenSplit.Split(strings.TrimSpace(s), -1) {
		if tok == "" {
			continue
		}
		if code, ok := lookupDay(tok); ok {
			add(code)
			continue
		}
		// Student Center glues two-letter codes together: "MoWe", "TuTh".
		if codes, ok := splitGluedDays(tok); ok {
			for _, c := range codes {
				add(c)
			}
		}
	}
	return days
}

func lookupDay(tok string) (string, bool) {
	if c, ok := dayCodes[tok]; ok {
		return c, true
	}
	// Full and abbreviated names arrive in mixed case from free-text scans.
	if len(tok) >= 3 {
		t := strings.ToUpper(tok[:1]) + strings.ToLower(tok[1:])
		if c, ok := dayCodes[t]; ok {
			return c, true
		}
	}
	return "", false
}

// splitGluedDays splits an even-length run of two-letter day codes. It only
// succeeds when every chunk resolves, so arbitrary words fall through.
func splitGluedDays(tok string) ([]string, bool) {
	if len(tok) < 4 || len(tok)%2 != 0 {
		return nil, false
	}
	codes := make([]string, 0, len(tok)/2)
	for i := 0; i < len(tok); i += 2 {
		chunk := tok[i : i+2]
		c, ok := dayCodes[chunk]
		if !ok {
			c, ok = dayCodes[strings.ToUpper(chunk)]
		}
		if !ok {
			return nil, false
		}
		codes = append(codes, c)
	}
	return codes, true
}
