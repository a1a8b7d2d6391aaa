package handlers

import (
	"errors"
	"log"
	"net/http"

	"tripcraft/keys"
	"tripcraft/services"

	"github.com/gin-gonic/gin"
)

type GeocodeResponse struct {
	Found       bool                  `json:"found"`
	Coordinates *services.Coordinates `json:"coordinates,omitempty"`
}

func (h *Handlers) GeocodeHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing q parameter"})
		return
	}

	coords, err := h.Geocoder.Geocode(c.Request.Context(), query)
	if err != nil {
		// Zero matches is an ordinary outcome, distinct from upstream failure.
		if errors.Is(err, services.ErrLocationNotFound) {
			c.JSON(http.StatusOK, GeocodeResponse{Found: false})
			return
		}
		log.Printf("⚠️  Geocoding failed for %q: %v", query, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load map coordinates"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{Found: true, Coordinates: coords})
}

func (h *Handlers) MapHandler(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location parameter"})
		return
	}

	if !h.Resolver.Present(keys.KeyMapbox) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Map API key is not configured"})
		return
	}

	token := h.Resolver.Resolve(keys.KeyMapbox)
	c.JSON(http.StatusOK, gin.H{"url": services.BuildStaticMapURL(location, token)})
}
