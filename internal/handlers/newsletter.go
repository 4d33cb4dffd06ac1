package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	Store Store
}

func NewNewsletterHandler(store Store) *NewsletterHandler {
	return &NewsletterHandler{Store: store}
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe records one newsletter signup. Submitting the same email twice
// records it twice; signups are plain append-only records.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	sub, err := h.Store.InsertSubscription(c.Request.Context(), req.Email)
	if err != nil {
		log.Println("Failed to save newsletter signup:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save newsletter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Newsletter subscribed",
		"id":      sub.ID,
	})
}
