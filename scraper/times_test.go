package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		period string
		want   string
		ok     bool
	}{
		{"midnight", "12:00", "AM", "00:00", true},
		{"noon", "12:00", "PM", "12:00", true},
		{"afternoon", "2:00", "PM", "14:00", true},
		{"morning", "10:00", "AM", "10:00", true},
		{"glued marker", "2:00PM", "", "14:00", true},
		{"glued marker lower case", "9:05am", "", "09:05", true},
		{"glued marker overrides period", "2:00PM", "AM", "14:00", true},
		{"spaced marker", "2:00 PM", "", "14:00", true},
		{"already 24 hour", "14:30", "", "14:30", true},
		{"lowercase period", "3:15", "pm", "15:15", true},
		{"no colon", "200PM", "", "", false},
		{"garbage", "noon", "", "", false},
		{"minutes out of range", "10:75", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.raw, tt.period)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
