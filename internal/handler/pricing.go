package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// PricingHandler exposes the pricing engine for previews and display.
type PricingHandler struct {
	svc *service.BookingService
}

func NewPricingHandler(svc *service.BookingService) *PricingHandler {
	return &PricingHandler{svc: svc}
}

// Info handles GET /api/pricing/info?roomId=101 and returns the room's base
// rate, peak rate and the peak windows for display.
func (h *PricingHandler) Info(c echo.Context) error {
	roomID := c.QueryParam("roomId")
	if roomID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId query parameter is required"})
	}
	info, err := h.svc.PricingInfo(roomID)
	if err != nil {
		return respondError(c, err, "failed to fetch pricing info")
	}
	return c.JSON(http.StatusOK, info)
}

// Quote handles POST /api/pricing/quote. It prices an interval without
// booking it: same time rules, no conflict check, nothing persisted.
func (h *PricingHandler) Quote(c echo.Context) error {
	var body struct {
		RoomID    string `json:"roomId"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	quote, err := h.svc.PreviewQuote(body.RoomID, body.StartTime, body.EndTime)
	if err != nil {
		return respondError(c, err, "failed to compute quote")
	}
	return c.JSON(http.StatusOK, quote)
}
