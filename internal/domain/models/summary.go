package models

// Summary holds the aggregate earnings statistics for a filtered trip set.
//
// It is a derived value object: recomputed wholesale on every filter change,
// never persisted, owned by the caller for the duration of one render.
//
// The three averages are weighted aggregates over the whole set
// (sum of numerators over sum of denominators), NOT averages of per-trip
// ratios; a per-trip mean would bias toward short trips.
//
// swagger:model Summary
type Summary struct {
	TotalEarnings    float64 `json:"total_earnings" example:"300.00"`
	TotalProfit      float64 `json:"total_profit" example:"180.00"`
	TotalFuelCost    float64 `json:"total_fuel_cost" example:"70.00"`
	TotalTimeMin     float64 `json:"total_time_min" example:"90"`
	TotalRides       int     `json:"total_rides" example:"2"`
	TotalKm          float64 `json:"total_km" example:"30"`
	AvgProfitPerHour float64 `json:"avg_profit_per_hour" example:"120.00"`
	AvgProfitPerRide float64 `json:"avg_profit_per_ride" example:"90.00"`
	AvgEarningsPerKm float64 `json:"avg_earnings_per_km" example:"10.00"`
}
