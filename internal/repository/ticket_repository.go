package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "time"

    "github.com/sulbaranjc/parking-backend/internal/model"
)

// TicketRepo owns every read and write against the tickets table.  All
// timestamps are assigned by the database clock (NOW()) rather than the
// caller's, so a client can never influence what it is billed.
type TicketRepo struct {
    db *sql.DB
}

// NewTicketRepo returns a new TicketRepo bound to the given database.
func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{db: db} }

// Create opens a ticket for the given space and plate.  The entry time
// comes from NOW() inside the insert and the row is read back so the
// caller observes the store-assigned id and entry time.  Inputs are not
// validated: an unknown space id or a non-positive rate is accepted and
// simply yields the charges that follow from it.
func (r *TicketRepo) Create(ctx context.Context, spaceID uint64, plate string, hourlyRate float64) (*model.Ticket, error) {
    const q = `INSERT INTO tickets (space_id, plate, entry_time, hourly_rate) VALUES (?, ?, NOW(), ?)`
    res, err := r.db.ExecContext(ctx, q, spaceID, plate, hourlyRate)
    if err != nil {
        return nil, fmt.Errorf("TicketRepo.Create: %w", err)
    }
    id, err := res.LastInsertId()
    if err != nil {
        return nil, fmt.Errorf("TicketRepo.Create: %w", err)
    }
    return r.GetByID(ctx, uint64(id))
}

// GetByID returns a single ticket row.  ErrTicketNotFound is returned
// when no row matches the id.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (*model.Ticket, error) {
    const q = `SELECT id, space_id, plate, entry_time, hourly_rate, exit_time, amount_due
               FROM tickets WHERE id = ?`
    var t model.Ticket
    var exitTime sql.NullTime
    var amountDue sql.NullFloat64
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &t.ID, &t.SpaceID, &t.Plate, &t.EntryTime, &t.HourlyRate,
        &exitTime, &amountDue,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrTicketNotFound
        }
        return nil, fmt.Errorf("TicketRepo.GetByID: %w", err)
    }
    t.EntryTime = t.EntryTime.UTC()
    if exitTime.Valid {
        et := exitTime.Time.UTC()
        t.ExitTime = &et
    }
    if amountDue.Valid {
        due := amountDue.Float64
        t.AmountDue = &due
    }
    return &t, nil
}

// ListOpen returns every ticket whose exit time is still null.  The
// result is a fresh snapshot on every call; no ordering is imposed
// beyond the store's natural return order.
func (r *TicketRepo) ListOpen(ctx context.Context) ([]model.Ticket, error) {
    const q = `SELECT id, space_id, plate, entry_time, hourly_rate, exit_time, amount_due
               FROM tickets WHERE exit_time IS NULL`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, fmt.Errorf("TicketRepo.ListOpen: %w", err)
    }
    defer rows.Close()
    tickets := make([]model.Ticket, 0)
    for rows.Next() {
        var t model.Ticket
        var exitTime sql.NullTime
        var amountDue sql.NullFloat64
        if err := rows.Scan(
            &t.ID, &t.SpaceID, &t.Plate, &t.EntryTime, &t.HourlyRate,
            &exitTime, &amountDue,
        ); err != nil {
            return nil, fmt.Errorf("TicketRepo.ListOpen: %w", err)
        }
        t.EntryTime = t.EntryTime.UTC()
        if exitTime.Valid {
            et := exitTime.Time.UTC()
            t.ExitTime = &et
        }
        if amountDue.Valid {
            due := amountDue.Float64
            t.AmountDue = &due
        }
        tickets = append(tickets, t)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("TicketRepo.ListOpen: %w", err)
    }
    return tickets, nil
}

// Close stamps the exit time and bills the ticket in one conditional
// update:
//
//   amount_due = TIMESTAMPDIFF(MINUTE, entry_time, NOW()) * hourlyRate
//
// The WHERE clause requires exit_time IS NULL, so of two concurrent
// close attempts only one can affect a row; the loser (and any close of
// a missing ticket) gets ErrTicketNotFound and the amount is never
// written twice.  The close-time rate is authoritative even when it
// differs from the rate recorded at open.  On success the updated row
// is re-read so the caller observes the store-assigned values.
func (r *TicketRepo) Close(ctx context.Context, id uint64, hourlyRate float64) (*model.Ticket, error) {
    const q = `UPDATE tickets
               SET exit_time = NOW(),
                   amount_due = TIMESTAMPDIFF(MINUTE, entry_time, NOW()) * ?
               WHERE id = ? AND exit_time IS NULL`
    res, err := r.db.ExecContext(ctx, q, hourlyRate, id)
    if err != nil {
        return nil, fmt.Errorf("TicketRepo.Close: %w", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return nil, fmt.Errorf("TicketRepo.Close: %w", err)
    }
    if n == 0 {
        return nil, ErrTicketNotFound
    }
    return r.GetByID(ctx, id)
}

// RevenueByDate sums amount_due over tickets whose exit time falls on
// the given date, or on the store's current date when date is nil.  An
// empty day yields 0, not an error.
func (r *TicketRepo) RevenueByDate(ctx context.Context, date *time.Time) (float64, error) {
    var total float64
    var err error
    if date == nil {
        const q = `SELECT COALESCE(SUM(amount_due), 0) FROM tickets WHERE DATE(exit_time) = CURDATE()`
        err = r.db.QueryRowContext(ctx, q).Scan(&total)
    } else {
        const q = `SELECT COALESCE(SUM(amount_due), 0) FROM tickets WHERE DATE(exit_time) = ?`
        err = r.db.QueryRowContext(ctx, q, date.Format("2006-01-02")).Scan(&total)
    }
    if err != nil {
        return 0, fmt.Errorf("TicketRepo.RevenueByDate: %w", err)
    }
    return total, nil
}
