package repository

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/sulbaranjc/parking-backend/internal/model"
)

// SpaceRepo provides read and availability-update access to parking
// spaces.  Space rows are owned by the schema seed; this repository
// never inserts or deletes them.
type SpaceRepo struct {
    db *sql.DB
}

// NewSpaceRepo returns a new SpaceRepo bound to the given database.
func NewSpaceRepo(db *sql.DB) *SpaceRepo { return &SpaceRepo{db: db} }

// List returns every parking space in the store's natural order.  When
// the table is empty an empty slice is returned, not nil, so the JSON
// encoding is always an array.
func (r *SpaceRepo) List(ctx context.Context) ([]model.ParkingSpace, error) {
    const q = `SELECT id, number, available FROM parking_spaces`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, fmt.Errorf("SpaceRepo.List: %w", err)
    }
    defer rows.Close()
    spaces := make([]model.ParkingSpace, 0)
    for rows.Next() {
        var s model.ParkingSpace
        if err := rows.Scan(&s.ID, &s.Number, &s.Available); err != nil {
            return nil, fmt.Errorf("SpaceRepo.List: %w", err)
        }
        spaces = append(spaces, s)
    }
    if err := rows.Err(); err != nil {
        return nil, fmt.Errorf("SpaceRepo.List: %w", err)
    }
    return spaces, nil
}

// SetAvailability flips the available flag of the space with the given
// number.  No relationship to open tickets is enforced; a space may be
// marked free while a ticket still references it.  When no row matches
// the number, ErrSpaceNotFound is returned.
func (r *SpaceRepo) SetAvailability(ctx context.Context, number int, available bool) error {
    const q = `UPDATE parking_spaces SET available = ? WHERE number = ?`
    res, err := r.db.ExecContext(ctx, q, available, number)
    if err != nil {
        return fmt.Errorf("SpaceRepo.SetAvailability: %w", err)
    }
    n, err := res.RowsAffected()
    if err != nil {
        return fmt.Errorf("SpaceRepo.SetAvailability: %w", err)
    }
    if n == 0 {
        return ErrSpaceNotFound
    }
    return nil
}
