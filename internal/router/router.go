package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/sulbaranjc/parking-backend/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers the plumbing endpoints on the provided Echo
// instance: the health check used by load balancers and the smoke-test
// endpoint the frontend pings during development.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/hola", handler.Hola)
}

// RegisterAPI registers the parking API under the /api prefix.  The
// paths are kept verbatim from the first version of this backend so the
// existing frontend keeps working unchanged.  The cache middleware is
// applied only to the parkings listing: the active-tickets listing must
// always reflect a ticket opened a moment ago, so it is never cached.
func RegisterAPI(e *echo.Echo, spaces *handler.SpaceHandler, tickets *handler.TicketHandler, revenue *handler.RevenueHandler, cache echo.MiddlewareFunc) {
	api := e.Group("/api")

	// Parking spaces: full listing plus the availability flip.
	api.GET("/parkings", spaces.List, cache)
	api.POST("/parkings/disponibilidad", spaces.SetAvailability)

	// Ticket lifecycle: open, list open, close.
	api.POST("/tickets/ingresar", tickets.Open)
	api.GET("/tickets/activos", tickets.ListActive)
	api.POST("/tickets/cerrar", tickets.Close)

	// Daily revenue aggregation.
	api.GET("/ingresos/totales", revenue.DailyTotal)
}
