package models

import (
	"encoding/json"
	"time"
)

// We use 'db' tags for sqlx to automatically map
// the database column names (snake_case) to our Go fields (CamelCase).

// Payment status lifecycle for a donation. A donation starts as 'recorded'
// the moment the form is saved; it only advances if the donor proceeds to
// the payment gateway.
const (
	PaymentStatusRecorded           = "recorded"
	PaymentStatusOrderCreated       = "order_created"
	PaymentStatusVerified           = "verified"
	PaymentStatusVerificationFailed = "verification_failed"
)

// Subscription is a single newsletter signup. Duplicate emails are allowed;
// every submit is its own row.
type Subscription struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// Volunteer holds one volunteer application. The form has no fixed schema,
// so the submitted fields are stored verbatim as a JSON document.
type Volunteer struct {
	ID        int             `db:"id"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at"`
}

// Donation represents a single donation record and its payment outcome.
// OrderID and PaymentID stay empty until the donor reaches the gateway.
type Donation struct {
	ID            int       `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	AmountPaise   int64     `db:"amount_paise"`
	Message       string    `db:"message"`
	PaymentStatus string    `db:"payment_status"`
	OrderID       string    `db:"order_id"`
	PaymentID     string    `db:"payment_id"`
	CreatedAt     time.Time `db:"created_at"`
}
