package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message     string `json:"message" binding:"required"`
	Destination string `json:"destination"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handlers) ChatHandler(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reply, err := h.Chat.Ask(c.Request.Context(), req.Message, req.Destination)
	if err != nil {
		log.Printf("⚠️  Chat request failed: %v", err)
		status, msg := aiErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
