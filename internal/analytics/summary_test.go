package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/ridepulse/ridepulse/internal/domain/models"
)

func day(n int) time.Time {
	return time.Date(2025, 9, n, 12, 0, 0, 0, time.UTC)
}

func TestSummarize_EmptyIsAllZero(t *testing.T) {
	s := Summarize(nil)

	if s.TotalRides != 0 {
		t.Fatalf("TotalRides=%d, want 0", s.TotalRides)
	}
	zeros := []float64{
		s.TotalEarnings, s.TotalProfit, s.TotalFuelCost, s.TotalTimeMin, s.TotalKm,
		s.AvgProfitPerHour, s.AvgProfitPerRide, s.AvgEarningsPerKm,
	}
	for i, v := range zeros {
		if v != 0 {
			t.Fatalf("field #%d = %v, want exactly 0", i, v)
		}
	}
}

// Concrete scenario from the product sheet: two trips, window = all.
func TestSummarize_TwoTrips(t *testing.T) {
	trips := []models.Trip{
		{ID: "1", RecordedAt: day(1), TotalPrice: 100, NetProfit: 70, TotalFuelCost: 20, TotalTimeMin: 30, TotalDistanceKm: 10},
		{ID: "2", RecordedAt: day(2), TotalPrice: 200, NetProfit: 140, TotalFuelCost: 50, TotalTimeMin: 60, TotalDistanceKm: 20},
	}

	s := Summarize(trips)

	if s.TotalEarnings != 300 || s.TotalFuelCost != 70 || s.TotalProfit != 210 {
		t.Fatalf("totals: %+v", s)
	}
	if s.TotalTimeMin != 90 || s.TotalKm != 30 || s.TotalRides != 2 {
		t.Fatalf("totals: %+v", s)
	}
	if want := s.TotalProfit / s.TotalTimeMin * 60; s.AvgProfitPerHour != want {
		t.Fatalf("AvgProfitPerHour=%v, want %v", s.AvgProfitPerHour, want)
	}
	if s.AvgProfitPerRide != 105 {
		t.Fatalf("AvgProfitPerRide=%v, want 105", s.AvgProfitPerRide)
	}
	if s.AvgEarningsPerKm != 10 {
		t.Fatalf("AvgEarningsPerKm=%v, want 10", s.AvgEarningsPerKm)
	}
}

func TestSummarize_SingleTrip(t *testing.T) {
	s := Summarize([]models.Trip{
		{ID: "1", RecordedAt: day(1), TotalPrice: 55.5, NetProfit: 31.2, TotalFuelCost: 12.3, TotalTimeMin: 45, TotalDistanceKm: 18},
	})

	if s.TotalRides != 1 {
		t.Fatalf("TotalRides=%d", s.TotalRides)
	}
	if s.AvgProfitPerRide != s.TotalProfit {
		t.Fatalf("single trip: AvgProfitPerRide=%v, want TotalProfit=%v", s.AvgProfitPerRide, s.TotalProfit)
	}
}

// Zero total time with rides present: the ratio is undefined and must be
// exactly 0, never NaN or Inf, even with nonzero (or negative) profit.
func TestSummarize_ZeroTimeGuard(t *testing.T) {
	cases := []struct {
		name   string
		profit float64
	}{
		{"positive profit", 42},
		{"negative profit", -13.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Summarize([]models.Trip{
				{ID: "1", RecordedAt: day(1), NetProfit: tc.profit, TotalTimeMin: 0},
			})
			if s.AvgProfitPerHour != 0 {
				t.Fatalf("AvgProfitPerHour=%v, want exactly 0", s.AvgProfitPerHour)
			}
		})
	}
}

func TestSummarize_ZeroKmGuard(t *testing.T) {
	s := Summarize([]models.Trip{
		{ID: "1", RecordedAt: day(1), TotalPrice: 80, TotalDistanceKm: 0, TotalTimeMin: 10},
	})
	if s.AvgEarningsPerKm != 0 {
		t.Fatalf("AvgEarningsPerKm=%v, want exactly 0", s.AvgEarningsPerKm)
	}
}

func TestSummarize_NeverNaNOrInf(t *testing.T) {
	inputs := [][]models.Trip{
		nil,
		{{ID: "1", RecordedAt: day(1)}},
		{{ID: "1", RecordedAt: day(1), NetProfit: -100}},
		{{ID: "1", RecordedAt: day(1), TotalPrice: 10}, {ID: "2", RecordedAt: day(2), TotalTimeMin: 0}},
	}

	for i, trips := range inputs {
		s := Summarize(trips)
		for j, v := range []float64{s.AvgProfitPerHour, s.AvgProfitPerRide, s.AvgEarningsPerKm} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("input #%d ratio #%d is %v", i, j, v)
			}
		}
	}
}

// The averages must weight by volume (sum/sum), not average per-trip ratios.
// A short expensive trip and a long cheap one make the two forms diverge.
func TestSummarize_WeightedNotMeanOfRatios(t *testing.T) {
	trips := []models.Trip{
		{ID: "short", RecordedAt: day(1), TotalPrice: 30, NetProfit: 30, TotalTimeMin: 10, TotalDistanceKm: 2},
		{ID: "long", RecordedAt: day(2), TotalPrice: 60, NetProfit: 60, TotalTimeMin: 110, TotalDistanceKm: 48},
	}

	s := Summarize(trips)

	// sum/sum: 90 profit over 120 min = 45 R$/h.
	if s.AvgProfitPerHour != 45 {
		t.Fatalf("AvgProfitPerHour=%v, want 45", s.AvgProfitPerHour)
	}
	// mean of per-trip rates would be (180 + 32.72..)/2, about 106.4; reject it.
	meanOfRatios := (30.0/10*60 + 60.0/110*60) / 2
	if s.AvgProfitPerHour == meanOfRatios {
		t.Fatalf("average must not be a mean of per-trip ratios")
	}
	// sum/sum: 90 earnings over 50 km.
	if s.AvgEarningsPerKm != 90.0/50 {
		t.Fatalf("AvgEarningsPerKm=%v, want %v", s.AvgEarningsPerKm, 90.0/50)
	}
}
