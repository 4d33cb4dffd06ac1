package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"chavi-website/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// Store owns all SQL against the website database. One table per record
// kind: newsletter, volunteers, donations. Records are append-only; the
// only updates are donation payment-status transitions.
type Store struct {
	DB *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{DB: db}
}

// Ping reports whether the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// InsertSubscription appends one newsletter signup. Duplicate emails are
// fine; every submit is its own record.
func (s *Store) InsertSubscription(ctx context.Context, email string) (models.Subscription, error) {
	var sub models.Subscription
	query := `INSERT INTO newsletter (email)
	          VALUES ($1)
	          RETURNING id, email, created_at`

	if err := s.DB.GetContext(ctx, &sub, query, email); err != nil {
		return models.Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return sub, nil
}

// InsertVolunteer stores a volunteer application verbatim. The form has no
// fixed schema, so the whole submission goes into a JSONB column.
func (s *Store) InsertVolunteer(ctx context.Context, payload json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO volunteers (payload)
	          VALUES ($1)
	          RETURNING id`

	if err := s.DB.GetContext(ctx, &id, query, payload); err != nil {
		return 0, fmt.Errorf("insert volunteer: %w", err)
	}
	return id, nil
}

// InsertDonation appends a donation in the 'recorded' state and returns the
// stored row, including its id and creation timestamp.
func (s *Store) InsertDonation(ctx context.Context, d models.Donation) (models.Donation, error) {
	query := `INSERT INTO donations (name, email, amount_paise, message, payment_status)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, name, email, amount_paise, message, payment_status,
	                    order_id, payment_id, created_at`

	var saved models.Donation
	err := s.DB.GetContext(ctx, &saved, query,
		d.Name, d.Email, d.AmountPaise, d.Message, models.PaymentStatusRecorded)
	if err != nil {
		return models.Donation{}, fmt.Errorf("insert donation: %w", err)
	}
	return saved, nil
}

// GetDonation fetches one donation by id.
func (s *Store) GetDonation(ctx context.Context, id int) (models.Donation, error) {
	var d models.Donation
	query := `SELECT id, name, email, amount_paise, message, payment_status,
	                 order_id, payment_id, created_at
	          FROM donations WHERE id = $1`

	err := s.DB.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Donation{}, ErrNotFound
	}
	if err != nil {
		return models.Donation{}, fmt.Errorf("get donation: %w", err)
	}
	return d, nil
}

// AttachOrder stamps a freshly minted gateway order onto a donation and
// moves it to 'order_created'.
func (s *Store) AttachOrder(ctx context.Context, donationID int, orderID string) error {
	query := `UPDATE donations
	          SET order_id = $1, payment_status = $2
	          WHERE id = $3`

	res, err := s.DB.ExecContext(ctx, query, orderID, models.PaymentStatusOrderCreated, donationID)
	if err != nil {
		return fmt.Errorf("attach order: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPaymentOutcome records the terminal outcome of a payment for the
// donation carrying this order id. A verify call for an order we never
// attached to a donation is not an error; there is simply nothing to update.
func (s *Store) SetPaymentOutcome(ctx context.Context, orderID, paymentID, status string) error {
	query := `UPDATE donations
	          SET payment_status = $1, payment_id = $2
	          WHERE order_id = $3`

	if _, err := s.DB.ExecContext(ctx, query, status, paymentID, orderID); err != nil {
		return fmt.Errorf("set payment outcome: %w", err)
	}
	return nil
}

// RecentDonations lists the newest donations with their payment status.
func (s *Store) RecentDonations(ctx context.Context, limit int) ([]models.Donation, error) {
	var donations []models.Donation
	query := `SELECT id, name, email, amount_paise, message, payment_status,
	                 order_id, payment_id, created_at
	          FROM donations ORDER BY created_at DESC LIMIT $1`

	if err := s.DB.SelectContext(ctx, &donations, query, limit); err != nil {
		return nil, fmt.Errorf("recent donations: %w", err)
	}
	return donations, nil
}
