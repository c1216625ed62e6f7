package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridepulse/ridepulse/config"
	"github.com/ridepulse/ridepulse/internal/analytics"
	"github.com/ridepulse/ridepulse/internal/domain/dto"
	"github.com/ridepulse/ridepulse/internal/domain/models"
	"github.com/ridepulse/ridepulse/internal/service"
)

// timeNow is an indirection for unit testing; defaults to time.Now.
// The analytics engine itself never reads the clock; this is the single
// place where "now" enters the system.
var timeNow = time.Now

// Handler provides HTTP handlers for the earnings analytics endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Translate them into service calls
//   - Map service results and sentinel errors onto response DTOs and
//     HTTP status codes
type Handler struct {
	svc   service.AnalyticsService
	chart config.ChartConfig // default canvas when the request omits dimensions
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AnalyticsService, chart config.ChartConfig) *Handler {
	return &Handler{svc: svc, chart: chart}
}

// GetSummary handles GET /api/v1/summary requests.
//
// GetSummary godoc
// @Summary      Earnings summary for a time window
// @Description  Returns totals and weighted averages over the trips inside the selected window
// @Tags         analytics
// @Produce      json
// @Param        window  query     string  false  "Time window: today, 7d, month or all (default all)"  example(7d)
// @Success      200     {object}  dto.SummaryResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	window, err := models.ParseTimeWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	summary, err := h.svc.GetSummary(c.Request.Context(), window, timeNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute summary", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(window, summary))
}

// GetChart handles GET /api/v1/chart requests.
//
// GetChart godoc
// @Summary      Chart geometry for a time window
// @Description  Projects the windowed trips onto a canvas: one point per trip for the earnings and fuel-cost series plus the polyline path of each
// @Tags         analytics
// @Produce      json
// @Param        window   query     string   false  "Time window: today, 7d, month or all (default all)"  example(month)
// @Param        width    query     number   false  "Canvas width in px (default from config)"   example(800)
// @Param        height   query     number   false  "Canvas height in px (default from config)"  example(300)
// @Param        padding  query     number   false  "Canvas padding in px (default from config)" example(24)
// @Success      200      {object}  dto.ChartResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse  "Fewer than two trips in the window"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/chart [get]
func (h *Handler) GetChart(c *gin.Context) {
	window, err := models.ParseTimeWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	width, err := queryFloat(c, "width", h.chart.Width)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid width", err))
		return
	}
	height, err := queryFloat(c, "height", h.chart.Height)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid height", err))
		return
	}
	padding, err := queryFloat(c, "padding", h.chart.Padding)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid padding", err))
		return
	}
	if width <= 0 || height <= 0 || padding < 0 || 2*padding >= width || 2*padding >= height {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("canvas dimensions out of range", nil))
		return
	}

	geo, err := h.svc.GetChart(c.Request.Context(), window, timeNow(), width, height, padding)
	if errors.Is(err, analytics.ErrInsufficientData) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("not enough trips to draw a chart", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to project chart", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewChartResponse(window, geo))
}

// GetTrips handles GET /api/v1/trips requests.
//
// GetTrips godoc
// @Summary      Trips inside a time window
// @Description  Returns the raw trip records selected by the window, in history order
// @Tags         analytics
// @Produce      json
// @Param        window  query     string  false  "Time window: today, 7d, month or all (default all)"  example(today)
// @Success      200     {object}  dto.TripsResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/trips [get]
func (h *Handler) GetTrips(c *gin.Context) {
	window, err := models.ParseTimeWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	trips, err := h.svc.ListTrips(c.Request.Context(), window, timeNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list trips", err))
		return
	}

	c.JSON(http.StatusOK, dto.TripsResponse{Window: window, Count: len(trips), Trips: trips})
}

// queryFloat reads an optional float query parameter, falling back to def
// when absent.
func queryFloat(c *gin.Context, name string, def float64) (float64, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
