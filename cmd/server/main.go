package main // Entry point package

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-booking/internal/config"
	"github.com/iliyamo/meeting-room-booking/internal/handler"
	"github.com/iliyamo/meeting-room-booking/internal/pricing"
	"github.com/iliyamo/meeting-room-booking/internal/queue"
	"github.com/iliyamo/meeting-room-booking/internal/repository"
	"github.com/iliyamo/meeting-room-booking/internal/router"
	"github.com/iliyamo/meeting-room-booking/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf(".env load warning: %v", err)
	}
	cfg := config.Load()

	store := repository.NewStore()
	repository.Seed(store)

	// Redis and RabbitMQ are optional collaborators: without them the
	// service still serves everything, just uncached and without events.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	var events service.Events
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		pub, err := queue.NewPublisher(url)
		if err != nil {
			log.Printf("rabbitmq unavailable, booking events disabled: %v", err)
		} else {
			defer pub.Close()
			events = pub
		}
	}

	engine := pricing.NewEngine(cfg)
	validator := service.NewValidator(cfg.Rules, cfg.Timezone)
	clock := service.RealClock{}

	bookingSvc := service.NewBookingService(store, store, validator, engine, clock, events)
	roomSvc := service.NewRoomService(store, store)
	analyticsSvc := service.NewAnalyticsService(store, store)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Rooms:     handler.NewRoomHandler(roomSvc),
		Bookings:  handler.NewBookingHandler(bookingSvc),
		Pricing:   handler.NewPricingHandler(bookingSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc, cfg.Timezone),
		Auth:      handler.NewAuthHandler(cfg.AdminKey, cfg.JWTSecret, cfg.AccessTTLMin),
	}, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tz=%s)", addr, cfg.Env, cfg.Timezone)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
