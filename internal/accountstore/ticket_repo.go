package accountstore

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// TicketRepo implements connmgr.TicketValidator against a tickets table
// an external login server populates: one row per one-time ticket,
// bcrypt-hashed the way the login server's own password storage is.
type TicketRepo struct {
	db *DB
}

// NewTicketRepo wraps an open DB.
func NewTicketRepo(db *DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// Validate looks up masterAccount's pending ticket, bcrypt-compares it
// against the supplied ticket bytes, and consumes it on success so a
// ticket can never be replayed.
func (r *TicketRepo) Validate(ctx context.Context, masterAccount string, ticket []byte) (bool, int32, error) {
	var ticketHash string
	var status int32
	var consumedAt *time.Time

	err := r.db.Pool.QueryRow(ctx,
		`SELECT ticket_hash, status, consumed_at FROM tickets WHERE master_account = $1`,
		masterAccount,
	).Scan(&ticketHash, &status, &consumedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	if consumedAt != nil {
		return false, status, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(ticketHash), ticket) != nil {
		return false, status, nil
	}

	_, err = r.db.Pool.Exec(ctx,
		`UPDATE tickets SET consumed_at = now() WHERE master_account = $1`,
		masterAccount,
	)
	if err != nil {
		return false, 0, err
	}
	return true, status, nil
}
