package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	Store Store
}

func NewVolunteerHandler(store Store) *VolunteerHandler {
	return &VolunteerHandler{Store: store}
}

// Apply saves a volunteer application. The form is free-form: any JSON
// object is accepted and persisted verbatim, so new form fields never need
// a server change.
func (h *VolunteerHandler) Apply(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		log.Println("Failed to marshal volunteer payload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save volunteer"})
		return
	}

	id, err := h.Store.InsertVolunteer(c.Request.Context(), payload)
	if err != nil {
		log.Println("Failed to save volunteer:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save volunteer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Volunteer saved successfully",
		"id":      id,
	})
}
