package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/sulbaranjc/parking-backend/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cacheable
// response: status, content type and raw body.
type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"content_type"`
    Body        []byte `json:"body"`
}

// InvalidateFunc removes the cached response for a route.  Handlers
// whose writes change what a cached listing serves call it after a
// successful mutation so the next read reflects the write instead of
// waiting out the TTL.
type InvalidateFunc func(ctx context.Context, route string) error

// captureWriter captures the response body and status while forwarding
// everything to the client.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int
    limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
    cw.status = code
    cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
    if cw.limit <= 0 || cw.size+len(b) <= cw.limit {
        cw.buf.Write(b)
    }
    cw.size += len(b)
    return cw.ResponseWriter.Write(b)
}

// cacheKey builds a stable key from the route alone.  The cached
// endpoints take no query parameters, and keying by route keeps
// invalidation a single deterministic DEL rather than an enumeration
// of query-string variants.
func cacheKey(prefix, route string) string {
    sum := sha1.Sum([]byte(route))
    return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache returns a middleware that serves GET responses from
// Redis when possible and stores successful responses after a miss,
// together with the InvalidateFunc that evicts a route's entry.  With
// caching disabled or no Redis client available, the middleware is a
// pass-through and the invalidator a no-op.  Only 200 responses within
// the configured size limit are stored.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) (echo.MiddlewareFunc, InvalidateFunc) {
    if !cfg.Enabled || rdb == nil {
        passthrough := func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
        return passthrough, func(ctx context.Context, route string) error { return nil }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }

    mw := func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg.Prefix, c.Path())

            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if err := json.Unmarshal(bs, &cached); err == nil {
                    c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(cached.Status)
                    _, _ = c.Response().Write(cached.Body)
                    return nil
                }
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            if cw.status == http.StatusOK && (cfg.MaxBodyBytes <= 0 || cw.size <= cfg.MaxBodyBytes) {
                cached := cachedResponse{
                    Status:      cw.status,
                    ContentType: c.Response().Header().Get(echo.HeaderContentType),
                    Body:        cw.buf.Bytes(),
                }
                if payload, err := json.Marshal(cached); err == nil {
                    // Store outside the request context so a client hangup does not abort the write.
                    _ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
                }
            }
            return nil
        }
    }

    invalidate := func(ctx context.Context, route string) error {
        return rdb.Del(ctx, cacheKey(cfg.Prefix, route)).Err()
    }
    return mw, invalidate
}
