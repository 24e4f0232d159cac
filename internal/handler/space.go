package handler

import (
    "context"  // request-scoped contexts passed to the store
    "errors"   // errors.Is comparisons against repository sentinels
    "net/http" // HTTP status codes

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/sulbaranjc/parking-backend/internal/model"      // domain types
    "github.com/sulbaranjc/parking-backend/internal/repository" // sentinel errors
)

// SpaceStore is the slice of the store the space endpoints need.  It is
// satisfied by *repository.SpaceRepo and mocked in tests.
type SpaceStore interface {
    List(ctx context.Context) ([]model.ParkingSpace, error)
    SetAvailability(ctx context.Context, number int, available bool) error
}

// SpaceHandler serves the parking space endpoints: the full listing and
// the availability flip.  The listing is served through a response
// cache, so a successful flip must evict its entry or a client that
// re-fetches the list right after flipping a space would read the
// pre-flip snapshot until the TTL expires.
type SpaceHandler struct {
    Store          SpaceStore
    InvalidateList func(ctx context.Context) error // evicts the cached listing; best effort
}

// NewSpaceHandler constructs a SpaceHandler with the provided store and
// listing-cache invalidator.  The invalidator may be nil when no cache
// is in front of the listing.
func NewSpaceHandler(store SpaceStore, invalidateList func(ctx context.Context) error) *SpaceHandler {
    if store == nil {
        panic("nil store passed to NewSpaceHandler")
    }
    return &SpaceHandler{Store: store, InvalidateList: invalidateList}
}

// List handles GET /api/parkings.  It returns every parking space row as
// a JSON array.  On a store failure this endpoint answers with a
// plain-text 500 body, unlike the rest of the API; the first version of
// the backend behaved this way and clients came to depend on it.
func (h *SpaceHandler) List(c echo.Context) error {
    spaces, err := h.Store.List(c.Request().Context())
    if err != nil {
        return c.String(http.StatusInternalServerError, "failed to fetch parking spaces")
    }
    return c.JSON(http.StatusOK, spaces)
}

// SetAvailability handles POST /api/parkings/disponibilidad.  The body
// carries a space number and the desired availability flag.  Whether any
// open ticket references the space is deliberately not checked.
func (h *SpaceHandler) SetAvailability(c echo.Context) error {
    var body struct {
        SpaceNumber int  `json:"spaceNumber"`
        Available   bool `json:"available"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "success": false,
            "message": "invalid request body",
            "error":   err.Error(),
        })
    }
    err := h.Store.SetAvailability(c.Request().Context(), body.SpaceNumber, body.Available)
    if err != nil {
        if errors.Is(err, repository.ErrSpaceNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{
                "success": false,
                "message": "space not found",
            })
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "success": false,
            "message": "failed to update availability",
            "error":   err.Error(),
        })
    }
    if h.InvalidateList != nil {
        _ = h.InvalidateList(c.Request().Context())
    }
    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": "availability updated",
    })
}
