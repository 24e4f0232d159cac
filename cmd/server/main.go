package main // Entry point package

import (
	"context" // context passed to the cache invalidator
	"log"     // Logging library

	"github.com/labstack/echo/v4"                // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware (CORS)

	"github.com/sulbaranjc/parking-backend/internal/config"     // environment config loader
	"github.com/sulbaranjc/parking-backend/internal/database"   // MySQL connection setup
	"github.com/sulbaranjc/parking-backend/internal/handler"    // HTTP handlers
	mw "github.com/sulbaranjc/parking-backend/internal/middleware" // cache and rate limit middleware
	"github.com/sulbaranjc/parking-backend/internal/queue"      // ticket.closed consumer
	"github.com/sulbaranjc/parking-backend/internal/repository" // store access
	"github.com/sulbaranjc/parking-backend/internal/router"     // route registration
	queue_publisher "github.com/sulbaranjc/parking-backend/internal/service" // event publisher
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg) // Connect to MySQL; fatal on failure
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Repositories share the single injected connection pool.
	spaceRepo := repository.NewSpaceRepo(db)
	ticketRepo := repository.NewTicketRepo(db)

	e := echo.New()
	e.Use(echomw.CORS()) // the frontend is served from another origin

	// Redis-backed middleware; both degrade to pass-throughs when Redis
	// is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(mw.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache, invalidate := mw.NewResponseCache(config.LoadCacheConfig(), rdb)

	// Flipping a space must evict the cached listing so the next read
	// reflects the write.
	invalidateParkings := func(ctx context.Context) error {
		return invalidate(ctx, "/api/parkings")
	}

	spaces := handler.NewSpaceHandler(spaceRepo, invalidateParkings)
	tickets := handler.NewTicketHandler(ticketRepo, queue_publisher.PublishTicketClosed)
	revenue := handler.NewRevenueHandler(ticketRepo)

	router.RegisterRoutes(e)
	router.RegisterAPI(e, spaces, tickets, revenue, cache)

	// Revenue journal consumer; runs its own reconnect loop.
	go func() {
		if err := queue.StartTicketClosedConsumer(); err != nil {
			log.Printf("ticket-closed consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
