package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"tripcraft/database"
	"tripcraft/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) DownloadHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	plan, err := database.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	// Render on first download, then serve the cached bytes.
	if len(plan.PDFData) == 0 {
		var itinerary services.ItineraryPlan
		if err := json.Unmarshal([]byte(plan.PlanJSON), &itinerary); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored plan"})
			return
		}

		pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
			Origin:     plan.Origin,
			TravelDate: plan.TravelDate,
			Plan:       &itinerary,
		})
		if err != nil {
			log.Printf("❌ PDF generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		if err := database.UpdatePlanPDF(id, pdfBytes); err != nil {
			log.Printf("⚠️  Failed to cache PDF for plan %s: %v", id, err)
		}
		plan.PDFData = pdfBytes
		log.Printf("✅ PDF generated for plan %s (%d bytes)", id, len(pdfBytes))
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=tripcraft-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", plan.PDFData)
}

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "TripCraft API",
		"database": dbStatus,
	})
}
