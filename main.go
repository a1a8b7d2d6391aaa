package main

import (
	"log"
	"os"
	"strings"
	"time"

	"tripcraft/database"
	"tripcraft/handlers"
	"tripcraft/keys"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Initialize database
	database.InitDB()

	// One resolver, injected into every client that needs a credential
	resolver := keys.NewResolver(database.KeyStore{})
	if resolver.Present(keys.KeyGemini) {
		log.Println("✅ Gemini API key resolved")
	} else {
		log.Println("⚠️  Gemini API key not configured — itinerary and chat will fail until one is saved")
	}
	if !resolver.Present(keys.KeySerp) {
		log.Println("⚠️  SerpAPI key not configured — recommendations will use sample data")
	}

	h := handlers.New(resolver)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Trusted proxies (hosted platforms sit behind a proxy)
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/plan", h.PlanHandler)
		api.POST("/chat", h.ChatHandler)
		api.GET("/recommendations/hotels", h.HotelsHandler)
		api.GET("/recommendations/foods", h.FoodsHandler)
		api.GET("/geocode", h.GeocodeHandler)
		api.GET("/map", h.MapHandler)
		api.GET("/photos", h.PhotosHandler)
		api.GET("/keys", h.KeyStatusHandler)
		api.POST("/keys", h.SaveKeyHandler)
		api.GET("/download/:id", h.DownloadHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 TripCraft backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
