package model

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestElapsedMinutesTruncatesTowardZero(t *testing.T) {
    entry := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

    assert.Equal(t, int64(0), ElapsedMinutes(entry, entry))
    assert.Equal(t, int64(0), ElapsedMinutes(entry, entry.Add(59*time.Second)))
    assert.Equal(t, int64(1), ElapsedMinutes(entry, entry.Add(60*time.Second)))
    assert.Equal(t, int64(90), ElapsedMinutes(entry, entry.Add(90*time.Minute+30*time.Second)))
}

func TestBillableAmountMinuteGranularity(t *testing.T) {
    entry := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

    // 90 minutes at 2.00 bills 180.00: whole minutes times the rate.
    exit := entry.Add(90 * time.Minute)
    assert.Equal(t, 180.0, BillableAmount(entry, exit, 2.00))

    // A fractional minute does not bill.
    assert.Equal(t, 180.0, BillableAmount(entry, exit.Add(45*time.Second), 2.00))
}

func TestBillableAmountZeroRate(t *testing.T) {
    entry := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
    exit := entry.Add(6 * time.Hour)

    // A zero rate is accepted and bills nothing regardless of elapsed time.
    assert.Equal(t, 0.0, BillableAmount(entry, exit, 0))
}

func TestTicketOpen(t *testing.T) {
    entry := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
    ticket := Ticket{ID: 1, SpaceID: 7, Plate: "ABC123", EntryTime: entry, HourlyRate: 2.00}
    assert.True(t, ticket.Open())

    exit := entry.Add(time.Hour)
    due := 120.0
    ticket.ExitTime = &exit
    ticket.AmountDue = &due
    assert.False(t, ticket.Open())
}
