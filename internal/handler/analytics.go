package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// AnalyticsHandler serves the reporting endpoints. Query dates are calendar
// days (YYYY-MM-DD) interpreted in the business timezone and expanded to an
// inclusive day range.
type AnalyticsHandler struct {
	svc *service.AnalyticsService
	loc *time.Location
}

func NewAnalyticsHandler(svc *service.AnalyticsService, loc *time.Location) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, loc: loc}
}

// dayRange parses from/to query parameters into [00:00:00, 23:59:59.999] of
// the respective days.
func (h *AnalyticsHandler) dayRange(c echo.Context) (time.Time, time.Time, bool) {
	fromStr, toStr := c.QueryParam("from"), c.QueryParam("to")
	if fromStr == "" || toStr == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "missing required query parameters: from and to dates",
			"example": "/api/analytics?from=2026-08-20&to=2026-08-25",
		})
		return time.Time{}, time.Time{}, false
	}
	from, err1 := time.ParseInLocation("2006-01-02", fromStr, h.loc)
	to, err2 := time.ParseInLocation("2006-01-02", toStr, h.loc)
	if err1 != nil || err2 != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date format, use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1).Add(-time.Millisecond), true
}

// PerRoom handles GET /api/analytics.
func (h *AnalyticsHandler) PerRoom(c echo.Context) error {
	from, to, ok := h.dayRange(c)
	if !ok {
		return nil
	}
	analytics, err := h.svc.Analytics(from, to)
	if err != nil {
		return respondError(c, err, "failed to fetch analytics")
	}
	return c.JSON(http.StatusOK, analytics)
}

// Room handles GET /api/analytics/room/:roomId.
func (h *AnalyticsHandler) Room(c echo.Context) error {
	from, to, ok := h.dayRange(c)
	if !ok {
		return nil
	}
	analytics, err := h.svc.RoomAnalytics(c.Param("roomId"), from, to)
	if err != nil {
		return respondError(c, err, "failed to fetch room analytics")
	}
	return c.JSON(http.StatusOK, analytics)
}

// Overview handles GET /api/analytics/overview.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	from, to, ok := h.dayRange(c)
	if !ok {
		return nil
	}
	stats, err := h.svc.Overview(from, to)
	if err != nil {
		return respondError(c, err, "failed to fetch statistics")
	}
	return c.JSON(http.StatusOK, stats)
}

// Utilization handles GET /api/analytics/utilization.
func (h *AnalyticsHandler) Utilization(c echo.Context) error {
	from, to, ok := h.dayRange(c)
	if !ok {
		return nil
	}
	metrics, err := h.svc.Utilization(from, to)
	if err != nil {
		return respondError(c, err, "failed to fetch metrics")
	}
	return c.JSON(http.StatusOK, metrics)
}
