package dto

import "github.com/ridepulse/ridepulse/internal/domain/models"

// ChartResponse is the JSON structure returned by GET /api/v1/chart.
//
// The geometry is ready to render: normalized coordinates for both series,
// the SVG polyline path of each, and the scale metadata. All styling,
// colors and hover behavior belong to the client.
type ChartResponse struct {
	Window models.TimeWindow `json:"window" example:"month"`

	Points       []models.ChartPoint `json:"points"`
	EarningsPath string              `json:"earnings_path" example:"M24.00 276.00 L776.00 52.36"`
	CostPath     string              `json:"cost_path" example:"M24.00 276.00 L776.00 221.09"`

	Width    float64 `json:"width" example:"800"`
	Height   float64 `json:"height" example:"300"`
	Padding  float64 `json:"padding" example:"24"`
	MaxValue float64 `json:"max_value" example:"220"`
}

// NewChartResponse maps a computed geometry onto the API response.
func NewChartResponse(window models.TimeWindow, g *models.ChartGeometry) ChartResponse {
	return ChartResponse{
		Window:       window,
		Points:       g.Points,
		EarningsPath: g.EarningsPath,
		CostPath:     g.CostPath,
		Width:        g.Width,
		Height:       g.Height,
		Padding:      g.Padding,
		MaxValue:     g.MaxValue,
	}
}

// TripsResponse is the JSON structure returned by GET /api/v1/trips.
type TripsResponse struct {
	Window models.TimeWindow `json:"window" example:"today"`
	Count  int               `json:"count" example:"3"`
	Trips  []models.Trip     `json:"trips"`
}
