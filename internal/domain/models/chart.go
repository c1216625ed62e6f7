package models

// ChartPoint is the projection of one trip onto the chart canvas.
// The same X is shared by both series; YEarnings and YCost are the vertical
// coordinates of the earnings and fuel-cost series under a single shared
// scale. Trip points back at the source record so a renderer can implement
// hover/inspection without recomputing anything.
type ChartPoint struct {
	Index     int     `json:"index"`
	X         float64 `json:"x"`
	YEarnings float64 `json:"y_earnings"`
	YCost     float64 `json:"y_cost"`
	Trip      *Trip   `json:"trip"`
}

// ChartGeometry is the full 2D layout of the two overlaid series for a fixed
// canvas. Points are ordered chronologically ascending (oldest first)
// regardless of the input collection's order; the paths are SVG polyline
// path descriptions ("M x y L x y ...") joining each series' points by rank.
//
// Geometry is ephemeral and deterministic: identical trips and canvas
// dimensions always yield bit-identical output.
type ChartGeometry struct {
	Points       []ChartPoint `json:"points"`
	EarningsPath string       `json:"earnings_path"`
	CostPath     string       `json:"cost_path"`

	// Canvas and scale metadata, so renderers can place axes and gridlines
	// without re-deriving the projection.
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Padding  float64 `json:"padding"`
	MaxValue float64 `json:"max_value"` // shared vertical scale top, 10% above the data maximum
}
