package handler // handler contains the HTTP layer: request binding and response mapping

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/service"
)

// rejectionStatus maps a rejection kind to its HTTP status. The service
// layer classifies; this is the only place the classification meets HTTP.
func rejectionStatus(k service.Kind) int {
	switch k {
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	case service.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes a rejection as its mapped status with the reason, or
// falls back to a generic 500 for unexpected errors. Internal details never
// reach the client.
func respondError(c echo.Context, err error, fallback string) error {
	var rej *service.Rejection
	if errors.As(err, &rej) {
		payload := echo.Map{"error": rej.Reason}
		if len(rej.Violations) > 0 {
			payload["details"] = rej.Violations
		}
		return c.JSON(rejectionStatus(rej.Kind), payload)
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
