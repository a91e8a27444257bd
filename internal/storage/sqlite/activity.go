package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) AddEvent(ctx context.Context, kind string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO activity_events (kind) VALUES (?)`, kind)
	if err != nil {
		return fmt.Errorf("failed to insert activity event: %w", err)
	}
	return nil
}

// LastEvent returns the timestamp of the most recent event. ok is false
// when no event has ever been recorded.
func (r *ActivityRepo) LastEvent(ctx context.Context) (time.Time, bool, error) {
	var ts time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT created_at FROM activity_events ORDER BY id DESC LIMIT 1`).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query last activity: %w", err)
	}
	return ts, true, nil
}

// CountSince reports how many events were recorded after the cutoff.
func (r *ActivityRepo) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activity_events WHERE created_at > ?`, cutoff).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count activity events: %w", err)
	}
	return n, nil
}
