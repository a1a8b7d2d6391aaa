package handlers

import (
	"fmt"
	"log"
	"net/http"

	"tripcraft/services"

	"github.com/gin-gonic/gin"
)

type HotelsResponse struct {
	Hotels   []services.HotelRecommendation `json:"hotels"`
	Warnings []string                       `json:"warnings,omitempty"`
}

type FoodsResponse struct {
	Foods    []services.FoodRecommendation `json:"foods"`
	Warnings []string                      `json:"warnings,omitempty"`
}

// Recommendation fetches never fail: fallback data replaces anything the
// live lookup cannot provide, and warnings ride along for the UI to toast.
func (h *Handlers) HotelsHandler(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location parameter"})
		return
	}

	var warnings []string
	serp := services.NewSerpClient(h.Resolver, func(title, message string) {
		log.Printf("⚠️  %s: %s", title, message)
		warnings = append(warnings, fmt.Sprintf("%s: %s", title, message))
	})

	hotels := serp.FetchHotels(c.Request.Context(), location)
	c.JSON(http.StatusOK, HotelsResponse{Hotels: hotels, Warnings: warnings})
}

func (h *Handlers) FoodsHandler(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing location parameter"})
		return
	}

	var warnings []string
	serp := services.NewSerpClient(h.Resolver, func(title, message string) {
		log.Printf("⚠️  %s: %s", title, message)
		warnings = append(warnings, fmt.Sprintf("%s: %s", title, message))
	})

	foods := serp.FetchFoods(c.Request.Context(), location)
	c.JSON(http.StatusOK, FoodsResponse{Foods: foods, Warnings: warnings})
}
