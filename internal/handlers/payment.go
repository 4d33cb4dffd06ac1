package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chavi-website/internal/gateway"
	"chavi-website/internal/models"
	"chavi-website/internal/store"
)

type PaymentHandler struct {
	Store   Store
	Gateway gateway.OrderCreator
}

func NewPaymentHandler(st Store, gw gateway.OrderCreator) *PaymentHandler {
	return &PaymentHandler{Store: st, Gateway: gw}
}

type CreateOrderRequest struct {
	Amount     float64 `json:"amount"`
	DonationID int     `json:"donationId"`
}

// CreateOrder asks the gateway to mint an order the hosted checkout widget
// can collect against. If the request names a previously recorded donation,
// the order amount is re-derived from the stored record; a client-declared
// amount is only used when there is no record to consult.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	var amountPaise int64
	if req.DonationID > 0 {
		donation, err := h.Store.GetDonation(c.Request.Context(), req.DonationID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
			return
		}
		if err != nil {
			log.Println("Failed to load donation for order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error."})
			return
		}
		amountPaise = donation.AmountPaise
	} else {
		if !validAmount(req.Amount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		amountPaise = rupeesToPaise(req.Amount)
	}

	if amountPaise <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	orderID, err := h.Gateway.CreateOrder(c.Request.Context(), amountPaise)
	if err != nil {
		log.Println("Razorpay create-order error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Link the order back to the donation so its payment outcome is
	// queryable later. The order already exists at the gateway, so a failed
	// link must not block the checkout; it only loses the association.
	if req.DonationID > 0 {
		if err := h.Store.AttachOrder(c.Request.Context(), req.DonationID, orderID); err != nil {
			log.Println("Failed to attach order to donation:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId": orderID,
		"key":     h.Gateway.KeyID(),
	})
}

type VerifyPaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// VerifyPayment checks that the checkout result presented by the client
// really came from the gateway: the signature must be the gateway's keyed
// signature over (order id, payment id). The linked donation, if any, is
// moved to its terminal payment status either way.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment details"})
		return
	}

	verified := h.Gateway.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature)

	status := models.PaymentStatusVerified
	if !verified {
		status = models.PaymentStatusVerificationFailed
	}
	if err := h.Store.SetPaymentOutcome(c.Request.Context(), req.OrderID, req.PaymentID, status); err != nil {
		// The verdict stands; only the bookkeeping failed.
		log.Println("Failed to record payment outcome:", err)
	}

	if !verified {
		log.Println("Payment signature mismatch for order:", req.OrderID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
