package screens

import (
	"fmt"
	"time"
)

// playTime renders accumulated play time as "2h 15m", "45m" or "< 1m".
// Zero means never played and shows "-".
func playTime(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return "< 1m"
	}
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// lastPlayed renders a Unix timestamp relative to now: "Today",
// "Yesterday", the weekday within the last week, then a date. The year is
// only shown for other years.
func lastPlayed(timestamp int64, now time.Time) string {
	if timestamp == 0 {
		return "Never"
	}
	t := time.Unix(timestamp, 0).In(now.Location())

	switch days := daysBefore(t, now); {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return t.Weekday().String()
	case t.Year() == now.Year():
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// daysBefore counts calendar days from t to now. Negative when t is later.
func daysBefore(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	// Noon avoids DST shifts moving a date across midnight
	from := time.Date(ty, tm, td, 12, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}

// addedDate renders the date a game entered the library.
func addedDate(timestamp int64) string {
	if timestamp == 0 {
		return "Unknown"
	}
	return time.Unix(timestamp, 0).Format("Jan 2, 2006")
}
