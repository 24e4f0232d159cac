package handler

import (
    "context"  // request-scoped contexts passed to the store
    "net/http" // HTTP status codes
    "time"     // parsing the optional date query parameter

    "github.com/labstack/echo/v4" // Echo web framework
)

// RevenueStore is the slice of the store the revenue endpoint needs.  It
// is satisfied by *repository.TicketRepo and mocked in tests.
type RevenueStore interface {
    RevenueByDate(ctx context.Context, date *time.Time) (float64, error)
}

// RevenueHandler serves the daily revenue aggregation.  The query is a
// pure read: it never mutates state and is safe to call concurrently
// with ticket closures.
type RevenueHandler struct {
    Store RevenueStore
}

// NewRevenueHandler constructs a RevenueHandler with the provided store.
func NewRevenueHandler(store RevenueStore) *RevenueHandler {
    if store == nil {
        panic("nil store passed to NewRevenueHandler")
    }
    return &RevenueHandler{Store: store}
}

// DailyTotal handles GET /api/ingresos/totales.  Without parameters it
// sums amount_due over tickets closed on the store's current date; an
// optional ?date=YYYY-MM-DD parameter selects another day.  A date that
// does not parse is ignored, consistent with the rest of the API
// accepting inputs as-is.  An empty day yields 0.
func (h *RevenueHandler) DailyTotal(c echo.Context) error {
    var date *time.Time
    if raw := c.QueryParam("date"); raw != "" {
        if d, err := time.Parse("2006-01-02", raw); err == nil {
            date = &d
        }
    }
    total, err := h.Store.RevenueByDate(c.Request().Context(), date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "message": "failed to compute daily revenue",
            "error":   err.Error(),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success":      true,
        "totalRevenue": total,
    })
}
