package handlers

import (
	"errors"
	"log"
	"net/http"

	"tripcraft/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) PhotosHandler(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location parameter"})
		return
	}

	photos, err := h.Photos.Search(c.Request.Context(), location)
	if err != nil {
		if errors.Is(err, services.ErrCredentialMissing) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unsplash access key is not configured"})
			return
		}
		log.Printf("⚠️  Photo search failed for %q: %v", location, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch photos. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos})
}
