package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create handles POST /api/bookings. The full validation pipeline runs in
// the service; every rejection kind surfaces here with its mapped status.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	resp, err := h.svc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err, "failed to create booking")
	}
	return c.JSON(http.StatusCreated, resp)
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c echo.Context) error {
	booking, err := h.svc.CancelBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, "failed to cancel booking")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "booking cancelled successfully",
		"booking": echo.Map{
			"bookingId": booking.ID,
			"roomId":    booking.RoomID,
			"userName":  booking.UserName,
			"status":    booking.Status,
			"startTime": booking.StartTime,
			"endTime":   booking.EndTime,
		},
	})
}

// List handles GET /api/bookings and returns all bookings, newest first.
func (h *BookingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Bookings())
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.svc.Booking(c.Param("id"))
	if err != nil {
		return respondError(c, err, "failed to fetch booking")
	}
	return c.JSON(http.StatusOK, booking)
}

// ListByRoom handles GET /api/bookings/room/:roomId.
func (h *BookingHandler) ListByRoom(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.BookingsByRoom(c.Param("roomId")))
}
