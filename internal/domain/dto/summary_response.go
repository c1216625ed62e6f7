package dto

import (
	"github.com/ridepulse/ridepulse/internal/domain/models"
	"github.com/ridepulse/ridepulse/internal/format"
)

// SummaryResponse is the JSON structure returned by GET /api/v1/summary.
//
// It carries both raw values (for client-side math) and pre-formatted pt-BR
// display strings, so the mobile client renders without its own locale
// logic. Field names may differ from internal models; this keeps the API
// surface decoupled from business logic.
type SummaryResponse struct {
	Window models.TimeWindow `json:"window" example:"7d"`

	TotalEarnings    float64 `json:"total_earnings" example:"300"`
	TotalProfit      float64 `json:"total_profit" example:"210"`
	TotalFuelCost    float64 `json:"total_fuel_cost" example:"70"`
	TotalTimeMin     float64 `json:"total_time_min" example:"90"`
	TotalRides       int     `json:"total_rides" example:"2"`
	TotalKm          float64 `json:"total_km" example:"30"`
	AvgProfitPerHour float64 `json:"avg_profit_per_hour" example:"140"`
	AvgProfitPerRide float64 `json:"avg_profit_per_ride" example:"105"`
	AvgEarningsPerKm float64 `json:"avg_earnings_per_km" example:"10"`

	Display SummaryDisplay `json:"display"`
}

// SummaryDisplay holds the locale-formatted renditions of the summary.
type SummaryDisplay struct {
	TotalEarnings    string `json:"total_earnings" example:"R$ 300,00"`
	TotalProfit      string `json:"total_profit" example:"R$ 210,00"`
	TotalFuelCost    string `json:"total_fuel_cost" example:"R$ 70,00"`
	AvgProfitPerHour string `json:"avg_profit_per_hour" example:"R$ 140,00"`
	AvgProfitPerRide string `json:"avg_profit_per_ride" example:"R$ 105,00"`
	AvgEarningsPerKm string `json:"avg_earnings_per_km" example:"R$ 10,00"`
	TotalKm          string `json:"total_km" example:"30,00"`
}

// NewSummaryResponse maps a computed Summary onto the API response.
func NewSummaryResponse(window models.TimeWindow, s models.Summary) SummaryResponse {
	return SummaryResponse{
		Window:           window,
		TotalEarnings:    s.TotalEarnings,
		TotalProfit:      s.TotalProfit,
		TotalFuelCost:    s.TotalFuelCost,
		TotalTimeMin:     s.TotalTimeMin,
		TotalRides:       s.TotalRides,
		TotalKm:          s.TotalKm,
		AvgProfitPerHour: s.AvgProfitPerHour,
		AvgProfitPerRide: s.AvgProfitPerRide,
		AvgEarningsPerKm: s.AvgEarningsPerKm,
		Display: SummaryDisplay{
			TotalEarnings:    format.Currency(s.TotalEarnings),
			TotalProfit:      format.Currency(s.TotalProfit),
			TotalFuelCost:    format.Currency(s.TotalFuelCost),
			AvgProfitPerHour: format.Currency(s.AvgProfitPerHour),
			AvgProfitPerRide: format.Currency(s.AvgProfitPerRide),
			AvgEarningsPerKm: format.Currency(s.AvgEarningsPerKm),
			TotalKm:          format.Decimal(s.TotalKm),
		},
	}
}
