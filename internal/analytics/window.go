// Package analytics is the aggregation-and-projection engine of ridepulse.
//
// Every function in it is pure: an immutable snapshot of trips in, a freshly
// allocated result out. No I/O, no wall-clock reads, no shared state, so
// concurrent calls never interfere and identical inputs always produce
// identical outputs. Callers that need filter and projection to reflect the
// same history must pass the same snapshot to both calls.
package analytics

import (
	"math"
	"time"

	"github.com/ridepulse/ridepulse/internal/domain/models"
)

// FilterByWindow returns the subset of trips whose RecordedAt falls inside
// the given window relative to now, preserving the input order.
//
// "now" is always an explicit parameter (never read from the clock) so the
// filter is deterministic and testable. Calendar comparisons (today, current
// month) happen in now's location: "today" means the user's local today.
func FilterByWindow(trips []models.Trip, window models.TimeWindow, now time.Time) []models.Trip {
	if window == models.WindowAll {
		return trips
	}

	out := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		if inWindow(t.RecordedAt, window, now) {
			out = append(out, t)
		}
	}
	return out
}

func inWindow(ts time.Time, window models.TimeWindow, now time.Time) bool {
	local := ts.In(now.Location())

	switch window {
	case models.WindowToday:
		y1, m1, d1 := now.Date()
		y2, m2, d2 := local.Date()
		return y1 == y2 && m1 == m2 && d1 == d2

	case models.WindowLast7Days:
		// Absolute distance in started days. Because the distance is
		// absolute, trips up to 7 days in the FUTURE of now are admitted
		// too. That matches the deployed behavior and is kept on purpose.
		days := math.Ceil(math.Abs(now.Sub(ts).Hours()) / 24)
		return days <= 7

	case models.WindowCurrentMonth:
		return now.Month() == local.Month() && now.Year() == local.Year()

	default:
		return true
	}
}
