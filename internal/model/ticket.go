package model

import "time"

// Ticket records a vehicle's parking session.  A ticket is open while
// ExitTime is nil and closed once ExitTime and AmountDue are both set;
// the two fields flip together in a single conditional update so a
// ticket can never be half closed or billed twice.
//
// Fields:
//  ID         – primary key identifier.
//  SpaceID    – parking space referenced by the session (not validated).
//  Plate      – free-form vehicle plate string.
//  EntryTime  – assigned by the database clock at creation.
//  HourlyRate – rate supplied when the ticket was opened.
//  ExitTime   – assigned by the database clock at closure (nil = open).
//  AmountDue  – billed amount, set at closure (nil = open).
type Ticket struct {
    ID         uint64     `json:"id"`         // tickets.id
    SpaceID    uint64     `json:"spaceId"`    // tickets.space_id
    Plate      string     `json:"plate"`      // tickets.plate
    EntryTime  time.Time  `json:"entryTime"`  // tickets.entry_time
    HourlyRate float64    `json:"hourlyRate"` // tickets.hourly_rate
    ExitTime   *time.Time `json:"exitTime"`   // tickets.exit_time (nullable)
    AmountDue  *float64   `json:"amountDue"`  // tickets.amount_due (nullable)
}

// Open reports whether the ticket is still open (no exit recorded).
func (t *Ticket) Open() bool { return t.ExitTime == nil }

// ElapsedMinutes returns the number of whole minutes between entry and
// exit.  Fractional minutes truncate toward zero, matching MySQL's
// TIMESTAMPDIFF(MINUTE, ...) semantics used by the close statement.
func ElapsedMinutes(entry, exit time.Time) int64 {
    return int64(exit.Sub(entry) / time.Minute)
}

// BillableAmount mirrors the billing rule applied by the store at
// closure: whole elapsed minutes multiplied by the close-time rate.
func BillableAmount(entry, exit time.Time, rate float64) float64 {
    return float64(ElapsedMinutes(entry, exit)) * rate
}
