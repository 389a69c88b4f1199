package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/meeting-room-booking/internal/config"
	"github.com/iliyamo/meeting-room-booking/internal/handler"
	"github.com/iliyamo/meeting-room-booking/internal/middleware"
)

// Handlers bundles everything the router needs to wire the API surface.
type Handlers struct {
	Rooms     *handler.RoomHandler
	Bookings  *handler.BookingHandler
	Pricing   *handler.PricingHandler
	Analytics *handler.AnalyticsHandler
	Auth      *handler.AuthHandler
}

// Register wires all routes onto the Echo instance. The rate limiter covers
// the whole API; the response cache covers the read-only room, pricing and
// analytics endpoints. Admin routes are registered only when an admin key is
// configured.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api")

	api.GET("/rooms", h.Rooms.List, cache)
	api.GET("/rooms/:id", h.Rooms.Get, cache)
	api.GET("/rooms/:id/stats", h.Rooms.Stats)

	api.POST("/bookings", h.Bookings.Create)
	api.GET("/bookings", h.Bookings.List)
	api.GET("/bookings/:id", h.Bookings.Get)
	api.GET("/bookings/room/:roomId", h.Bookings.ListByRoom)
	api.POST("/bookings/:id/cancel", h.Bookings.Cancel)

	api.GET("/pricing/info", h.Pricing.Info, cache)
	api.POST("/pricing/quote", h.Pricing.Quote)

	api.GET("/analytics", h.Analytics.PerRoom, cache)
	api.GET("/analytics/room/:roomId", h.Analytics.Room, cache)
	api.GET("/analytics/overview", h.Analytics.Overview, cache)
	api.GET("/analytics/utilization", h.Analytics.Utilization, cache)

	if cfg.AdminKey != "" {
		api.POST("/auth/token", h.Auth.Token)
		admin := api.Group("", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("ADMIN"))
		admin.POST("/rooms", h.Rooms.Create)
	}
}
