package handlers

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chavi-website/internal/models"
)

type DonationHandler struct {
	Store Store
}

func NewDonationHandler(store Store) *DonationHandler {
	return &DonationHandler{Store: store}
}

type CreateDonationRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message"`
}

// maxAmountRupees caps a single donation at one crore. Anything above is
// form abuse, and unbounded values would overflow the paise conversion.
const maxAmountRupees = 1e7

// validAmount reports whether a form amount can be safely converted and
// charged.
func validAmount(rupees float64) bool {
	return rupees > 0 && rupees <= maxAmountRupees
}

// rupeesToPaise converts a form amount in rupees to the gateway's minor
// unit. Fractional paise round to the nearest whole paisa. Callers bound
// the input with validAmount first.
func rupeesToPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

// CreateDonation records a donation form submission. This is only the
// record; payment happens afterwards through the order endpoints and is
// linked back here by donation id.
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, amount required"})
		return
	}
	if !validAmount(req.Amount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	donation := models.Donation{
		Name:        req.Name,
		Email:       req.Email,
		AmountPaise: rupeesToPaise(req.Amount),
		Message:     req.Message,
	}

	saved, err := h.Store.InsertDonation(c.Request.Context(), donation)
	if err != nil {
		log.Println("Failed to save donation:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save donation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"donationId": saved.ID,
	})
}

// Recent lists the newest donations with their payment status, so an
// operator can see whether a recorded donation ever reached payment.
func (h *DonationHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	donations, err := h.Store.RecentDonations(c.Request.Context(), limit)
	if err != nil {
		log.Println("Failed to list donations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}
