package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tripcraft/database"
	"tripcraft/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanResponse struct {
	PlanID string                  `json:"plan_id"`
	Plan   *services.ItineraryPlan `json:"plan"`
	PDFURL string                  `json:"pdf_url"`
}

func (h *Handlers) PlanHandler(c *gin.Context) {
	var req services.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Travelers <= 0 {
		req.Travelers = 1
	}

	travelDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid travel date format. Use YYYY-MM-DD"})
		return
	}
	today := time.Now().Truncate(24 * time.Hour)
	if travelDate.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Travel date must not be in the past"})
		return
	}

	prompt := services.BuildItineraryPrompt(req)

	rawText, err := h.Gemini.Complete(c.Request.Context(), prompt, "", nil)
	if err != nil {
		log.Printf("⚠️  Itinerary generation failed: %v", err)
		status, msg := aiErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	plan, err := services.ParseItinerary(rawText)
	if err != nil {
		log.Printf("⚠️  Itinerary parse failed: %v", err)
		status, msg := aiErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	planID := uuid.New().String()
	reqJSON, _ := json.Marshal(req)
	planJSON, _ := json.Marshal(plan)

	if err := database.SavePlan(&database.Plan{
		ID:          planID,
		Origin:      req.Origin,
		Destination: req.Destination,
		TravelDate:  req.Date,
		RequestJSON: string(reqJSON),
		PlanJSON:    string(planJSON),
	}); err != nil {
		log.Printf("❌ Failed to save plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	log.Printf("✅ Itinerary generated for %s (%d days)", plan.Destination, plan.Duration)

	c.JSON(http.StatusOK, PlanResponse{
		PlanID: planID,
		Plan:   plan,
		PDFURL: "/api/download/" + planID,
	})
}
