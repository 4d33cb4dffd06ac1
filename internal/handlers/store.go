package handlers

import (
	"context"
	"encoding/json"

	"chavi-website/internal/models"
)

// Store is the persistence surface the handlers need. *store.Store
// satisfies it; tests substitute a fake.
type Store interface {
	Ping(ctx context.Context) error
	InsertSubscription(ctx context.Context, email string) (models.Subscription, error)
	InsertVolunteer(ctx context.Context, payload json.RawMessage) (int, error)
	InsertDonation(ctx context.Context, d models.Donation) (models.Donation, error)
	GetDonation(ctx context.Context, id int) (models.Donation, error)
	AttachOrder(ctx context.Context, donationID int, orderID string) error
	SetPaymentOutcome(ctx context.Context, orderID, paymentID, status string) error
	RecentDonations(ctx context.Context, limit int) ([]models.Donation, error)
}
