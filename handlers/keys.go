package handlers

import (
	"net/http"

	"tripcraft/keys"

	"github.com/gin-gonic/gin"
)

type SaveKeyRequest struct {
	KeyType string `json:"key_type" binding:"required"`
	Value   string `json:"value"`
}

func (h *Handlers) SaveKeyHandler(c *gin.Context) {
	var req SaveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !keys.Valid(req.KeyType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown key type: " + req.KeyType})
		return
	}

	if err := h.Resolver.Save(keys.KeyType(req.KeyType), req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key saved successfully"})
}

// KeyStatusHandler reports which credentials resolve, without exposing values.
func (h *Handlers) KeyStatusHandler(c *gin.Context) {
	status := make(map[string]bool, len(keys.AllKeyTypes))
	for _, k := range keys.AllKeyTypes {
		status[string(k)] = h.Resolver.Present(k)
	}
	c.JSON(http.StatusOK, status)
}
