package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"

    "github.com/sulbaranjc/parking-backend/internal/model"
    "github.com/sulbaranjc/parking-backend/internal/repository"
)

// MockSpaceStore mocks the SpaceStore interface.
type MockSpaceStore struct {
    mock.Mock
}

func (m *MockSpaceStore) List(ctx context.Context) ([]model.ParkingSpace, error) {
    args := m.Called(ctx)
    if args.Get(0) == nil {
        return nil, args.Error(1)
    }
    return args.Get(0).([]model.ParkingSpace), args.Error(1)
}

func (m *MockSpaceStore) SetAvailability(ctx context.Context, number int, available bool) error {
    args := m.Called(ctx, number, available)
    return args.Error(0)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
    e := echo.New()
    var req *http.Request
    if body == "" {
        req = httptest.NewRequest(method, target, nil)
    } else {
        req = httptest.NewRequest(method, target, strings.NewReader(body))
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    return e.NewContext(req, rec), rec
}

func TestListSpaces(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("List", mock.Anything).Return([]model.ParkingSpace{
        {ID: 1, Number: 1, Available: true},
        {ID: 2, Number: 2, Available: false},
    }, nil)

    h := NewSpaceHandler(store, nil)
    c, rec := newTestContext(http.MethodGet, "/api/parkings", "")

    assert.NoError(t, h.List(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var spaces []model.ParkingSpace
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spaces))
    assert.Len(t, spaces, 2)
    assert.True(t, spaces[0].Available)
    store.AssertExpectations(t)
}

func TestListSpacesStoreErrorIsPlainText(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

    h := NewSpaceHandler(store, nil)
    c, rec := newTestContext(http.MethodGet, "/api/parkings", "")

    assert.NoError(t, h.List(c))
    assert.Equal(t, http.StatusInternalServerError, rec.Code)
    // This endpoint answers plain text on failure, not the JSON envelope.
    assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
    assert.Equal(t, "failed to fetch parking spaces", rec.Body.String())
}

func TestSetAvailability(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 5, false).Return(nil)

    h := NewSpaceHandler(store, nil)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":5,"available":false}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var resp map[string]interface{}
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, true, resp["success"])
    store.AssertExpectations(t)
}

func TestSetAvailabilityEvictsCachedListing(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 5, false).Return(nil)

    invalidated := 0
    invalidate := func(ctx context.Context) error {
        invalidated++
        return nil
    }

    h := NewSpaceHandler(store, invalidate)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":5,"available":false}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    // A successful flip must evict the cached listing so the next
    // GET /api/parkings reflects the new availability immediately.
    assert.Equal(t, 1, invalidated)
}

func TestSetAvailabilityFailureLeavesCacheAlone(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 99, true).Return(repository.ErrSpaceNotFound)

    invalidated := 0
    invalidate := func(ctx context.Context) error {
        invalidated++
        return nil
    }

    h := NewSpaceHandler(store, invalidate)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":99,"available":true}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)
    // Nothing changed, so the cached listing is still valid.
    assert.Equal(t, 0, invalidated)
}

func TestSetAvailabilityInvalidationErrorDoesNotFailRequest(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 5, true).Return(nil)

    invalidate := func(ctx context.Context) error {
        return errors.New("redis down")
    }

    h := NewSpaceHandler(store, invalidate)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":5,"available":true}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetAvailabilityUnknownSpace(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 99, true).Return(repository.ErrSpaceNotFound)

    h := NewSpaceHandler(store, nil)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":99,"available":true}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusNotFound, rec.Code)

    var resp map[string]interface{}
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, false, resp["success"])
    assert.Equal(t, "space not found", resp["message"])
}

func TestSetAvailabilityStoreError(t *testing.T) {
    store := new(MockSpaceStore)
    store.On("SetAvailability", mock.Anything, 5, true).Return(errors.New("deadlock"))

    h := NewSpaceHandler(store, nil)
    c, rec := newTestContext(http.MethodPost, "/api/parkings/disponibilidad",
        `{"spaceNumber":5,"available":true}`)

    assert.NoError(t, h.SetAvailability(c))
    assert.Equal(t, http.StatusInternalServerError, rec.Code)

    var resp map[string]interface{}
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, false, resp["success"])
    assert.Contains(t, resp["error"], "deadlock")
}
