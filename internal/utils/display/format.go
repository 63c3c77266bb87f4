// Package display contains the presentation formatting rules shared by the
// wallet and group read models: relative timestamps, next-meetup labels and
// Rand amounts rendered the way the mobile client expects them.
package display

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RelativeTime renders how long ago a ledger entry was created, in the
// fixed bands the transaction feed uses.
func RelativeTime(now, t time.Time) string {
	hours := int(math.Floor(now.Sub(t).Hours()))
	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case hours < 48:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", hours/24)
	}
}

// NextMeetup renders the upcoming-meetup label for a group. The day count is
// rounded up from the raw duration until the plan. The tomorrow band carries
// a fixed time of day rather than the plan's stored time, matching what the
// client currently displays.
func NextMeetup(now time.Time, date *time.Time) string {
	if date == nil {
		return "No upcoming meetup"
	}
	days := int(math.Ceil(date.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow, 2:00 PM"
	case days <= 7:
		return fmt.Sprintf("%s, %s", date.Weekday().String(), clockTime(*date))
	default:
		return date.Format("Jan 2")
	}
}

// Budget renders a per-person budget as a whole-Rand display string, e.g. "R450".
func Budget(amount decimal.Decimal) string {
	return "R" + amount.Round(0).String()
}

// clockTime formats a time of day as e.g. "2:00 PM" (no zero-padded hour).
func clockTime(t time.Time) string {
	return t.Format("3:04 PM")
}
