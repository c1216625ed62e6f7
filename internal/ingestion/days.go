package ingestion

import "time"

// LastNDays returns the last n calendar days ending at ref's day, oldest
// first, each normalized to midnight UTC. Drivers work weekends and holidays,
// so the app exports a file for every day without exception.
//
// Parameters:
//   - n:   number of days (>= 1).
//   - ref: reference time; its calendar day is the most recent entry.
//
// Returns:
//   - []time.Time: n midnight-UTC dates in ascending order.
func LastNDays(n int, ref time.Time) []time.Time {
	if n < 1 {
		n = 1
	}
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		dates[n-1-i] = day.AddDate(0, 0, -i)
	}
	return dates
}
