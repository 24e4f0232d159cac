package handler

import (
    "context"  // request-scoped contexts passed to the store
    "errors"   // errors.Is comparisons against repository sentinels
    "net/http" // HTTP status codes
    "time"     // formatting event timestamps

    "github.com/google/uuid"      // event ids on published messages
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/sulbaranjc/parking-backend/internal/model"      // domain types
    "github.com/sulbaranjc/parking-backend/internal/queue"      // ticket.closed event payload
    "github.com/sulbaranjc/parking-backend/internal/repository" // sentinel errors
)

// TicketStore is the slice of the store the ticket endpoints need.  It
// is satisfied by *repository.TicketRepo and mocked in tests.
type TicketStore interface {
    Create(ctx context.Context, spaceID uint64, plate string, hourlyRate float64) (*model.Ticket, error)
    ListOpen(ctx context.Context) ([]model.Ticket, error)
    Close(ctx context.Context, id uint64, hourlyRate float64) (*model.Ticket, error)
}

// PublishFunc publishes a domain event to the message broker.  A nil
// publisher disables event publication entirely.
type PublishFunc func(ctx context.Context, event queue.TicketClosedEvent) error

// TicketHandler serves the ticket lifecycle endpoints: opening a ticket,
// listing the open ones and closing a ticket.  Billing itself lives in
// the store's close statement; this layer only translates errors and
// announces closures on the broker.
type TicketHandler struct {
    Store   TicketStore
    Publish PublishFunc // best effort, failures never fail the request
}

// NewTicketHandler constructs a TicketHandler with the provided store
// and event publisher.  The publisher may be nil.
func NewTicketHandler(store TicketStore, publish PublishFunc) *TicketHandler {
    if store == nil {
        panic("nil store passed to NewTicketHandler")
    }
    return &TicketHandler{Store: store, Publish: publish}
}

// Open handles POST /api/tickets/ingresar.  The entry time is assigned
// by the database clock, never taken from the request, so clients cannot
// shift what they will be billed.  Inputs are otherwise accepted as-is:
// the space id is not checked for existence and a non-positive rate
// simply produces non-positive charges later.
func (h *TicketHandler) Open(c echo.Context) error {
    var body struct {
        SpaceID    uint64  `json:"spaceId"`
        Plate      string  `json:"plate"`
        HourlyRate float64 `json:"hourlyRate"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "success": false,
            "message": "invalid request body",
            "error":   err.Error(),
        })
    }
    ticket, err := h.Store.Create(c.Request().Context(), body.SpaceID, body.Plate, body.HourlyRate)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "message": "failed to create ticket",
            "error":   err.Error(),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": "ticket created",
        "ticket":  ticket,
    })
}

// ListActive handles GET /api/tickets/activos.  It returns every open
// ticket as a JSON array; each call re-queries the store.
func (h *TicketHandler) ListActive(c echo.Context) error {
    tickets, err := h.Store.ListOpen(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "message": "failed to fetch active tickets",
            "error":   err.Error(),
        })
    }
    return c.JSON(http.StatusOK, tickets)
}

// Close handles POST /api/tickets/cerrar.  The rate supplied here is the
// one the ticket is billed at, even when it differs from the rate
// recorded at open.  A missing ticket and an already-closed ticket are
// reported identically as 404; the store's conditional update cannot
// tell them apart and no second close can ever bill twice.
func (h *TicketHandler) Close(c echo.Context) error {
    var body struct {
        TicketID   uint64  `json:"ticketId"`
        HourlyRate float64 `json:"hourlyRate"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "success": false,
            "message": "invalid request body",
            "error":   err.Error(),
        })
    }
    ticket, err := h.Store.Close(c.Request().Context(), body.TicketID, body.HourlyRate)
    if err != nil {
        if errors.Is(err, repository.ErrTicketNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{
                "success": false,
                "message": "ticket not found or already closed",
            })
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "message": "failed to close ticket",
            "error":   err.Error(),
        })
    }
    if h.Publish != nil {
        _ = h.Publish(c.Request().Context(), closedEvent(ticket, body.HourlyRate))
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "ticket":  ticket,
    })
}

// closedEvent builds the broker payload for a freshly closed ticket.
func closedEvent(t *model.Ticket, rate float64) queue.TicketClosedEvent {
    ev := queue.TicketClosedEvent{
        EventID:    uuid.NewString(),
        TicketID:   t.ID,
        SpaceID:    t.SpaceID,
        Plate:      t.Plate,
        EntryTime:  t.EntryTime.UTC().Format(time.RFC3339),
        HourlyRate: rate,
    }
    if t.ExitTime != nil {
        ev.ExitTime = t.ExitTime.UTC().Format(time.RFC3339)
    }
    if t.AmountDue != nil {
        ev.AmountDue = *t.AmountDue
    }
    return ev
}
