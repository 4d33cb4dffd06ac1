// Package client is the submission client for the website API. It mirrors
// what the site's forms do: one call per form action, no automatic retry,
// and a per-form guard so an action cannot be submitted again while a
// previous submission is still in flight.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// ErrSubmissionInFlight means the same form already has a submission
// pending. The caller keeps its data and may retry once the first call
// settles; this is the programmatic equivalent of a disabled submit button.
var ErrSubmissionInFlight = errors.New("client: submission already in flight")

// ErrInvalidAmount is returned locally, before any network call, when a
// donation or order amount does not parse to a positive number.
var ErrInvalidAmount = errors.New("client: amount must be a positive number")

// APIError is a non-success response from the server. The server only ever
// sends a generic message; the status code distinguishes bad input (4xx)
// from server trouble (5xx).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: server returned %d: %s", e.StatusCode, e.Message)
}

// form identifies one logical form, for the in-flight guard.
type form string

const (
	formNewsletter form = "newsletter"
	formVolunteer  form = "volunteer"
	formDonation   form = "donation"
	formOrder      form = "order"
	formVerify     form = "verify"
)

// Client talks to the website API. Safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu       sync.Mutex
	inFlight map[form]bool
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:  baseURL,
		httpc:    &http.Client{Timeout: 30 * time.Second},
		inFlight: make(map[form]bool),
	}
}

// NewWithHTTPClient lets callers supply their own http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	c := New(baseURL)
	c.httpc = httpc
	return c
}

// acquire marks a form as submitting. The returned release must run on
// every exit path so the form is usable again regardless of outcome.
func (c *Client) acquire(f form) (release func(), err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[f] {
		return nil, ErrSubmissionInFlight
	}
	c.inFlight[f] = true
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.inFlight[f] = false
	}, nil
}

// post sends a JSON body and decodes the JSON response into out (when out
// is non-nil). Non-2xx responses become an *APIError.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("client: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = "request failed"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("client: decode response: %w", err)
		}
	}
	return nil
}

// Subscribe signs an email up for the newsletter.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	release, err := c.acquire(formNewsletter)
	if err != nil {
		return err
	}
	defer release()

	return c.post(ctx, "/api/newsletter", map[string]string{"email": email}, nil)
}

// SubmitVolunteer sends a volunteer application. The fields are free-form;
// the server persists whatever the form contained.
func (c *Client) SubmitVolunteer(ctx context.Context, fields map[string]interface{}) error {
	release, err := c.acquire(formVolunteer)
	if err != nil {
		return err
	}
	defer release()

	return c.post(ctx, "/api/volunteers", fields, nil)
}

// DonationForm is the donation form's named fields.
type DonationForm struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message,omitempty"`
}

// Donate records a donation and returns its id, for linking a payment
// order to it afterwards. A non-positive amount fails locally with
// ErrInvalidAmount and no request is made.
func (c *Client) Donate(ctx context.Context, d DonationForm) (int, error) {
	if d.Amount <= 0 {
		return 0, ErrInvalidAmount
	}

	release, err := c.acquire(formDonation)
	if err != nil {
		return 0, err
	}
	defer release()

	var resp struct {
		DonationID int `json:"donationId"`
	}
	if err := c.post(ctx, "/api/donations", d, &resp); err != nil {
		return 0, err
	}
	return resp.DonationID, nil
}

// Order is what the checkout widget needs: the gateway order id and the
// public key.
type Order struct {
	OrderID string `json:"orderId"`
	Key     string `json:"key"`
}

// CreateOrder asks the server to mint a payment order. donationID may be
// zero for a direct order; when set, the server derives the amount from
// the stored donation and ignores the one given here.
func (c *Client) CreateOrder(ctx context.Context, amount float64, donationID int) (Order, error) {
	if donationID == 0 && amount <= 0 {
		return Order{}, ErrInvalidAmount
	}

	release, err := c.acquire(formOrder)
	if err != nil {
		return Order{}, err
	}
	defer release()

	body := map[string]interface{}{"amount": amount}
	if donationID > 0 {
		body["donationId"] = donationID
	}

	var order Order
	if err := c.post(ctx, "/api/create-order", body, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// VerifyPayment submits the checkout result for signature verification.
func (c *Client) VerifyPayment(ctx context.Context, paymentID, orderID, signature string) error {
	release, err := c.acquire(formVerify)
	if err != nil {
		return err
	}
	defer release()

	return c.post(ctx, "/api/verify-payment", map[string]string{
		"paymentId": paymentID,
		"orderId":   orderID,
		"signature": signature,
	}, nil)
}

// Health reports the server's view of its dependencies.
type Health struct {
	Status  string `json:"status"`
	Store   bool   `json:"store"`
	Gateway bool   `json:"gateway"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return Health{}, fmt.Errorf("client: build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Health{}, fmt.Errorf("client: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error == "" {
			e.Error = "request failed"
		}
		return Health{}, &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return Health{}, fmt.Errorf("client: decode response: %w", err)
	}
	return h, nil
}
