package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ampmGlued matches minutes with the meridiem marker fused on: "00PM".
var ampmGlued = regexp.MustCompile(`(?i)^(\d+)(AM|PM)$`)

// ParseTime converts a 12-hour clock token to zero-padded 24-hour "HH:MM".
// The AM/PM marker may arrive separately in period ("2:00" + "PM"), glued to
// the minutes ("2:00PM"), or not at all for already-24-hour input. 12 AM maps
// to hour 0 and 12 PM stays 12.
func ParseTime(raw, period string) (string, bool) {
	clean := strings.ReplaceAll(raw, " ", "")
	parts := strings.SplitN(clean, ":", 2)
	if len(parts) != 2 {
		return "", false
	}

	minStr := parts[1]
	if m := ampmGlued.FindStringSubmatch(minStr); m != nil {
		minStr = m[1]
		period = m[2]
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	minutes, err := strconv.Atoi(minStr)
	if err != nil {
		return "", false
	}

	switch strings.ToUpper(strings.TrimSpace(period)) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}

	if hours > 23 || minutes > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), true
}
