package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ridepulse/ridepulse/internal/domain/models"
)

// ErrInsufficientData is returned by ProjectChart when there are fewer than
// two trips to project: there is no meaningful line through fewer than two
// points, and the renderer is expected to show a placeholder instead.
var ErrInsufficientData = errors.New("analytics: at least two trips are required to project a chart")

// headroom is the extra vertical scale margin above the true data maximum,
// so peak values are not clipped at the canvas edge.
const headroom = 1.1

// ProjectChart maps a trip sequence onto normalized canvas coordinates for
// the two overlaid series (earnings and fuel cost).
//
// Trips are reordered chronologically ascending before projection, whatever
// the input order; charts read left to right as time moving forward. The
// input slice itself is never touched, sorting happens on a copy.
//
// Horizontal layout is by RANK, not by elapsed time: point i of n sits at
// padding + i/(n-1)·(width-2·padding), so two trips a minute apart and two
// trips a week apart get equal spacing. This is intentional, kept from the
// deployed chart.
//
// Both series share one vertical scale anchored at zero, topped at the
// global maximum of both series plus 10% headroom. When every price and
// fuel cost is zero the scale degenerates and every point maps to the
// baseline height-padding rather than dividing by zero.
func ProjectChart(trips []models.Trip, width, height, padding float64) (*models.ChartGeometry, error) {
	if len(trips) < 2 {
		return nil, ErrInsufficientData
	}

	ordered := make([]models.Trip, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	maxVal := 0.0
	for _, t := range ordered {
		if t.TotalPrice > maxVal {
			maxVal = t.TotalPrice
		}
		if t.TotalFuelCost > maxVal {
			maxVal = t.TotalFuelCost
		}
	}
	maxVal *= headroom

	n := len(ordered)
	step := (width - 2*padding) / float64(n-1)

	geo := &models.ChartGeometry{
		Points:   make([]models.ChartPoint, 0, n),
		Width:    width,
		Height:   height,
		Padding:  padding,
		MaxValue: maxVal,
	}

	var earnings, cost strings.Builder
	for i := range ordered {
		t := &ordered[i]
		x := padding + float64(i)*step
		ye := projectY(t.TotalPrice, maxVal, height, padding)
		yc := projectY(t.TotalFuelCost, maxVal, height, padding)

		geo.Points = append(geo.Points, models.ChartPoint{
			Index:     i,
			X:         x,
			YEarnings: ye,
			YCost:     yc,
			Trip:      t,
		})

		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&earnings, "%s%.2f %.2f", cmd, x, ye)
		fmt.Fprintf(&cost, "%s%.2f %.2f", cmd, x, yc)
	}

	geo.EarningsPath = earnings.String()
	geo.CostPath = cost.String()
	return geo, nil
}

// projectY maps a value onto the vertical axis: zero sits on the baseline
// (height-padding) and maxVal at the top padding. A zero maxVal means no
// revenue or cost at all was recorded; everything collapses to the baseline.
func projectY(v, maxVal, height, padding float64) float64 {
	if maxVal == 0 {
		return height - padding
	}
	return height - padding - v/maxVal*(height-2*padding)
}
