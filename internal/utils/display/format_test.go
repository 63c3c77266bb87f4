package display_test

import (
	"testing"
	"time"

	"github.com/meetmate/meetmate_backend/internal/utils/display"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// A Saturday at noon, so weekday labels are predictable.
var now = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"thirty minutes ago", now.Add(-30 * time.Minute), "Just now"},
		{"just under an hour", now.Add(-59 * time.Minute), "Just now"},
		{"one hour", now.Add(-1 * time.Hour), "1h ago"},
		{"ninety minutes floors to one hour", now.Add(-90 * time.Minute), "1h ago"},
		{"late same band", now.Add(-23 * time.Hour), "23h ago"},
		{"one day", now.Add(-24 * time.Hour), "Yesterday"},
		{"just under two days", now.Add(-47 * time.Hour), "Yesterday"},
		{"two days", now.Add(-48 * time.Hour), "2 days ago"},
		{"three days and change", now.Add(-75 * time.Hour), "3 days ago"},
		{"ten days", now.Add(-10 * 24 * time.Hour), "10 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.RelativeTime(now, tt.t))
		})
	}
}

func TestNextMeetup(t *testing.T) {
	thursdayEvening := time.Date(2026, time.March, 19, 18, 30, 0, 0, time.UTC)
	nextSaturday := now.Add(7 * 24 * time.Hour)
	twelveDaysOut := now.AddDate(0, 0, 12)
	aprilDate := time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date *time.Time
		want string
	}{
		{"no plan", nil, "No upcoming meetup"},
		{"right now", &now, "Today"},
		{"later today rounds up to tomorrow", timePtr(now.Add(3 * time.Hour)), "Tomorrow, 2:00 PM"},
		{"exactly one day out", timePtr(now.Add(24 * time.Hour)), "Tomorrow, 2:00 PM"},
		{"within the week uses the weekday", &thursdayEvening, "Thursday, 6:30 PM"},
		{"seventh day still in weekday band", &nextSaturday, "Saturday, 12:00 PM"},
		{"beyond a week uses the date", &twelveDaysOut, "Mar 26"},
		{"next month", &aprilDate, "Apr 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.NextMeetup(now, tt.date))
		})
	}
}

func TestBudget(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"450.00", "R450"},
		{"450.75", "R451"},
		{"120.40", "R120"},
		{"99.50", "R100"},
		{"0", "R0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, display.Budget(decimal.RequireFromString(tt.amount)))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
