package stats

import (
	"fmt"
	"strconv"
	"time"
)

// HourLabel formats an hour of day (0-23) as a 12-hour label: "12am", "8am", "2pm".
func HourLabel(hour int) string {
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + suffix
}

// WeekdayLabel gives the 3-letter abbreviation, e.g. "Mon".
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

// WeekLabel labels the n-th (1-based, oldest first) week bucket.
func WeekLabel(n int) string {
	return "Week " + strconv.Itoa(n)
}

// FormatVolume renders milliliters for display: "400 ml" below a liter, "59.5 L" above.
func FormatVolume(ml int) string {
	if ml < 1000 {
		return strconv.Itoa(ml) + " ml"
	}
	liters := float64(ml) / 1000
	s := strconv.FormatFloat(liters, 'f', 1, 64)
	if s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}
	return fmt.Sprintf("%s L", s)
}
