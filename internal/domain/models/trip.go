package models

import "time"

// Trip represents one completed ride/delivery as exported by the driver app.
// JSON field names keep the exporter's (Portuguese) naming so payloads stay
// compatible with the mobile client.
//
// A Trip is a fully-formed, immutable record by the time it reaches this
// service: negative durations/distances or unparseable timestamps are the
// producer's problem and behavior on such input is undefined here.
type Trip struct {
	ID              string    `json:"id"`
	RecordedAt      time.Time `json:"data"`
	TotalPrice      float64   `json:"total_price"`             // gross revenue
	NetProfit       float64   `json:"lucro_liquido"`           // revenue minus costs, may be negative
	TotalFuelCost   float64   `json:"custo_total_combustivel"` // non-negative
	TotalTimeMin    float64   `json:"total_time_min"`          // non-negative
	TotalDistanceKm float64   `json:"total_distance_km"`       // non-negative
}
