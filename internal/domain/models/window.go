package models

import "fmt"

// TimeWindow selects a relative calendar period of the trip history.
// It is a pure enumeration with no internal state.
type TimeWindow string

const (
	// WindowToday keeps trips recorded on the same calendar day as "now",
	// in the caller's local calendar (not UTC).
	WindowToday TimeWindow = "today"

	// WindowLast7Days keeps trips whose absolute distance to "now",
	// counted in started days, is at most 7.
	WindowLast7Days TimeWindow = "7d"

	// WindowCurrentMonth keeps trips recorded in the same (month, year)
	// local-calendar pair as "now".
	WindowCurrentMonth TimeWindow = "month"

	// WindowAll disables filtering entirely.
	WindowAll TimeWindow = "all"
)

// ParseTimeWindow maps a query-string value onto a TimeWindow.
// An empty value defaults to WindowAll; anything else unknown is an error.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch s {
	case "":
		return WindowAll, nil
	case string(WindowToday):
		return WindowToday, nil
	case string(WindowLast7Days):
		return WindowLast7Days, nil
	case string(WindowCurrentMonth):
		return WindowCurrentMonth, nil
	case string(WindowAll):
		return WindowAll, nil
	default:
		return "", fmt.Errorf("unknown time window %q (expected today, 7d, month or all)", s)
	}
}
