// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketClosedEvent is published when a ticket is successfully closed.
// It carries enough information for downstream consumers to journal the
// revenue entry or trigger analytics without querying the primary
// database.  Timestamps are RFC3339 strings in UTC.
type TicketClosedEvent struct {
    EventID    string  `json:"event_id"`
    TicketID   uint64  `json:"ticket_id"`
    SpaceID    uint64  `json:"space_id"`
    Plate      string  `json:"plate"`
    EntryTime  string  `json:"entry_time"`
    ExitTime   string  `json:"exit_time"`
    HourlyRate float64 `json:"hourly_rate"`
    AmountDue  float64 `json:"amount_due"`
}
