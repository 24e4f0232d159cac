package handler

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"
)

// MockRevenueStore mocks the RevenueStore interface.
type MockRevenueStore struct {
    mock.Mock
}

func (m *MockRevenueStore) RevenueByDate(ctx context.Context, date *time.Time) (float64, error) {
    args := m.Called(ctx, date)
    return args.Get(0).(float64), args.Error(1)
}

func TestDailyRevenue(t *testing.T) {
    store := new(MockRevenueStore)
    store.On("RevenueByDate", mock.Anything, (*time.Time)(nil)).Return(180.0, nil)

    h := NewRevenueHandler(store)
    c, rec := newTestContext(http.MethodGet, "/api/ingresos/totales", "")

    assert.NoError(t, h.DailyTotal(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Success      bool    `json:"success"`
        TotalRevenue float64 `json:"totalRevenue"`
    }
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.True(t, resp.Success)
    assert.Equal(t, 180.0, resp.TotalRevenue)
    store.AssertExpectations(t)
}

func TestDailyRevenueEmptyDayIsZero(t *testing.T) {
    store := new(MockRevenueStore)
    store.On("RevenueByDate", mock.Anything, (*time.Time)(nil)).Return(0.0, nil)

    h := NewRevenueHandler(store)
    c, rec := newTestContext(http.MethodGet, "/api/ingresos/totales", "")

    assert.NoError(t, h.DailyTotal(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var resp map[string]interface{}
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 0.0, resp["totalRevenue"])
}

func TestDailyRevenueWithDateParam(t *testing.T) {
    store := new(MockRevenueStore)
    store.On("RevenueByDate", mock.Anything, mock.MatchedBy(func(d *time.Time) bool {
        return d != nil && d.Format("2006-01-02") == "2026-08-27"
    })).Return(42.0, nil)

    h := NewRevenueHandler(store)
    c, rec := newTestContext(http.MethodGet, "/api/ingresos/totales?date=2026-08-27", "")

    assert.NoError(t, h.DailyTotal(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    store.AssertExpectations(t)
}

func TestDailyRevenueBadDateFallsBackToToday(t *testing.T) {
    store := new(MockRevenueStore)
    store.On("RevenueByDate", mock.Anything, (*time.Time)(nil)).Return(0.0, nil)

    h := NewRevenueHandler(store)
    c, rec := newTestContext(http.MethodGet, "/api/ingresos/totales?date=not-a-date", "")

    assert.NoError(t, h.DailyTotal(c))
    assert.Equal(t, http.StatusOK, rec.Code)
    store.AssertExpectations(t)
}

func TestDailyRevenueStoreError(t *testing.T) {
    store := new(MockRevenueStore)
    store.On("RevenueByDate", mock.Anything, (*time.Time)(nil)).
        Return(0.0, errors.New("connection refused"))

    h := NewRevenueHandler(store)
    c, rec := newTestContext(http.MethodGet, "/api/ingresos/totales", "")

    assert.NoError(t, h.DailyTotal(c))
    assert.Equal(t, http.StatusInternalServerError, rec.Code)

    var resp map[string]interface{}
    assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, false, resp["success"])
    assert.Contains(t, resp["error"], "connection refused")
}
