package middleware

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/sulbaranjc/parking-backend/internal/config"
)

func TestCacheKeyIsStablePerRoute(t *testing.T) {
    // The invalidator must compute the exact key the middleware stores
    // under, so the key depends on the route alone.
    assert.Equal(t, cacheKey("cache", "/api/parkings"), cacheKey("cache", "/api/parkings"))
    assert.NotEqual(t, cacheKey("cache", "/api/parkings"), cacheKey("cache", "/api/tickets/activos"))
    assert.NotEqual(t, cacheKey("cache", "/api/parkings"), cacheKey("other", "/api/parkings"))
}

func TestResponseCacheDisabledIsPassThrough(t *testing.T) {
    mw, invalidate := NewResponseCache(config.CacheConfig{Enabled: true}, nil)

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/api/parkings", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    called := false
    next := func(c echo.Context) error {
        called = true
        return c.String(http.StatusOK, "ok")
    }

    require.NoError(t, mw(next)(c))
    assert.True(t, called)
    assert.Equal(t, http.StatusOK, rec.Code)
    // No Redis client: the invalidator is a no-op rather than an error.
    assert.NoError(t, invalidate(context.Background(), "/api/parkings"))
}
