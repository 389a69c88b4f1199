package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/model"
	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// RoomHandler serves the room inventory endpoints.
type RoomHandler struct {
	svc *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// List handles GET /api/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Rooms())
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.svc.Room(c.Param("id"))
	if err != nil {
		return respondError(c, err, "failed to fetch room")
	}
	return c.JSON(http.StatusOK, room)
}

// Stats handles GET /api/rooms/:id/stats.
func (h *RoomHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Param("id"))
	if err != nil {
		return respondError(c, err, "failed to fetch room statistics")
	}
	return c.JSON(http.StatusOK, stats)
}

// Create handles POST /api/rooms. Admin only; the route is registered behind
// JWT auth with the ADMIN role.
func (h *RoomHandler) Create(c echo.Context) error {
	var body model.Room
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.svc.AddRoom(body)
	if err != nil {
		return respondError(c, err, "failed to create room")
	}
	return c.JSON(http.StatusCreated, room)
}
