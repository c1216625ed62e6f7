package analytics

import "github.com/ridepulse/ridepulse/internal/domain/models"

// Summarize computes the aggregate statistics for a trip set.
//
// It is total over any finite input: the empty set yields a zeroed Summary,
// and every division is guarded on its own denominator so no field is ever
// NaN or Inf. In particular AvgProfitPerHour is exactly 0 when TotalTimeMin
// is 0 even if there are rides with nonzero profit.
//
// The averages are weighted (sum over sum), not means of per-trip ratios:
// a driver's R$/h over the window is total profit over total hours, so long
// trips weigh in proportionally instead of each trip counting equally.
func Summarize(trips []models.Trip) models.Summary {
	var s models.Summary
	s.TotalRides = len(trips)

	for _, t := range trips {
		s.TotalEarnings += t.TotalPrice
		s.TotalProfit += t.NetProfit
		s.TotalFuelCost += t.TotalFuelCost
		s.TotalTimeMin += t.TotalTimeMin
		s.TotalKm += t.TotalDistanceKm
	}

	if s.TotalTimeMin > 0 {
		s.AvgProfitPerHour = s.TotalProfit / s.TotalTimeMin * 60
	}
	if s.TotalRides > 0 {
		s.AvgProfitPerRide = s.TotalProfit / float64(s.TotalRides)
	}
	if s.TotalKm > 0 {
		s.AvgEarningsPerKm = s.TotalEarnings / s.TotalKm
	}

	return s
}
