package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chavi-website/internal/gateway"
)

type HealthHandler struct {
	Store   Store
	Gateway gateway.OrderCreator
}

func NewHealthHandler(st Store, gw gateway.OrderCreator) *HealthHandler {
	return &HealthHandler{Store: st, Gateway: gw}
}

// Health reports liveness of the two long-lived dependencies: the store is
// pinged, the gateway is considered up when a client is configured.
func (h *HealthHandler) Health(c *gin.Context) {
	storeUp := h.Store.Ping(c.Request.Context()) == nil
	gatewayUp := h.Gateway != nil && h.Gateway.KeyID() != ""

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"store":   storeUp,
		"gateway": gatewayUp,
	})
}
