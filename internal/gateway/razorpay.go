package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// All orders are minted in INR with automatic capture; the hosted checkout
// widget collects the actual payment.
const currency = "INR"

// OrderCreator is the slice of the payment gateway this server uses.
// Handlers depend on this interface so tests can swap in a fake.
type OrderCreator interface {
	// CreateOrder asks the gateway to mint an order for the amount, given
	// in the currency's minor unit. Returns the gateway's order id.
	CreateOrder(ctx context.Context, amountPaise int64) (string, error)

	// VerifyPaymentSignature reports whether the signature presented by the
	// checkout widget is the gateway's keyed signature over (orderID, paymentID).
	VerifyPaymentSignature(orderID, paymentID, signature string) bool

	// KeyID returns the public key the client needs for the checkout widget.
	KeyID() string
}

// Razorpay talks to the real gateway through the official SDK.
type Razorpay struct {
	client *razorpay.Client
	keyID  string
	secret string
}

func NewRazorpay(keyID, secret string) *Razorpay {
	return &Razorpay{
		client: razorpay.NewClient(keyID, secret),
		keyID:  keyID,
		secret: secret,
	}
}

func (r *Razorpay) CreateOrder(ctx context.Context, amountPaise int64) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         "rcpt_" + uuid.NewString(),
		"payment_capture": 1,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order create: response missing order id")
	}
	return orderID, nil
}

func (r *Razorpay) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, r.secret)
}

func (r *Razorpay) KeyID() string {
	return r.keyID
}
