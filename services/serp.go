package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripcraft/keys"
)

// Notifier delivers a non-blocking warning to the user (toast equivalent).
type Notifier func(title, message string)

const (
	defaultSerpBaseURL = "https://serpapi.com/search.json"

	// Approximate USD→INR conversion applied to provider prices.
	usdToINR = 83

	// Price assumed when a hotels_results entry carries no price (USD).
	defaultHotelPriceUSD = 5000

	// Fixed per-night price for local_results entries (INR).
	localResultPriceINR = 8500

	defaultHotelRating = 4.5
)

// SerpClient fetches hotel and food recommendations. It never fails from
// the caller's point of view: every failure path emits one warning through
// the notifier and substitutes the synthetic dataset for the location.
type SerpClient struct {
	resolver   *keys.Resolver
	baseURL    string
	httpClient *http.Client
	notify     Notifier
	priceFn    func() int // food price generator, injectable for tests
}

func NewSerpClient(resolver *keys.Resolver, notify Notifier) *SerpClient {
	if notify == nil {
		notify = func(title, message string) {}
	}
	return &SerpClient{
		resolver: resolver,
		baseURL:  defaultSerpBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		notify:  notify,
		priceFn: func() int { return rand.Intn(800-150+1) + 150 },
	}
}

// ─── Response shapes ─────────────────────────────────────────────────────────

// SerpAPI varies its result field by engine and query; parsing branches on
// whichever field is populated.
type serpSearchResponse struct {
	HotelsResults []serpHotelResult `json:"hotels_results"`
	LocalResults  []serpLocalResult `json:"local_results"`
	ImagesResults []serpImageResult `json:"images_results"`
}

type serpHotelResult struct {
	Name        string  `json:"name"`
	Price       string  `json:"price"` // e.g. "$120"
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Address     string  `json:"address"`
}

type serpLocalResult struct {
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	Thumbnail string  `json:"thumbnail"`
	Address   string  `json:"address"`
}

type serpImageResult struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
}

// ─── Hotels ──────────────────────────────────────────────────────────────────

// FetchHotels returns hotel recommendations for a location, live when
// possible, synthetic otherwise.
func (c *SerpClient) FetchHotels(ctx context.Context, location string) []HotelRecommendation {
	apiKey := c.resolver.Resolve(keys.KeySerp)
	if apiKey == "" {
		c.notify("API Key Missing", "Please set up your SerpAPI key in Settings to use hotel recommendations.")
		return SyntheticHotels(location)
	}

	data, err := c.search(ctx, apiKey, "google", "hotels in "+location)
	if err != nil {
		c.warnSearchFailure(err, "hotel")
		return SyntheticHotels(location)
	}

	hotels := parseHotelResults(data, location)
	if len(hotels) == 0 {
		return SyntheticHotels(location)
	}
	return hotels
}

func parseHotelResults(data *serpSearchResponse, location string) []HotelRecommendation {
	hotels := make([]HotelRecommendation, 0, 5)

	if len(data.HotelsResults) > 0 {
		for _, h := range data.HotelsResults {
			if len(hotels) >= 5 {
				break
			}
			priceUSD := parseHotelPrice(h.Price)
			hotels = append(hotels, HotelRecommendation{
				Name:          defaultStr(h.Name, "Luxury Hotel"),
				Rating:        defaultRating(h.Rating),
				PricePerNight: priceUSD * usdToINR,
				Description:   defaultStr(h.Description, hotelDescription(location)),
				ImageURL:      defaultStr(h.Thumbnail, "https://placehold.co/600x400?text=Hotel"),
				Address:       h.Address,
			})
		}
		return hotels
	}

	for _, r := range data.LocalResults {
		if len(hotels) >= 5 {
			break
		}
		hotels = append(hotels, HotelRecommendation{
			Name:          defaultStr(r.Title, "Luxury Hotel"),
			Rating:        defaultRating(r.Rating),
			PricePerNight: localResultPriceINR,
			Description:   hotelDescription(location),
			ImageURL:      defaultStr(r.Thumbnail, "https://placehold.co/600x400?text=Hotel"),
			Address:       r.Address,
		})
	}
	return hotels
}

// ─── Foods ───────────────────────────────────────────────────────────────────

// Food names and descriptions are synthesized from these cyclic lists rather
// than from the image search's own content; only the images are live.
var foodNameTemplates = []string{
	"%s Special Curry",
	"Traditional %s Thali",
	"%s Style Biryani",
	"Famous %s Street Food",
	"%s Sweet Delicacy",
	"Local %s Breakfast",
}

var foodDescriptions = []string{
	"A flavorful local specialty made with regional spices and fresh ingredients.",
	"Traditional dish loved by locals and tourists alike.",
	"A must-try culinary delight when visiting %s.",
	"Popular street food with a perfect balance of flavors.",
	"This authentic dish represents the true essence of %s cuisine.",
	"A perfect blend of local spices and traditional cooking methods.",
}

// FetchFoods returns food recommendations for a location, synthesizing
// names and prices around live imagery when available.
func (c *SerpClient) FetchFoods(ctx context.Context, location string) []FoodRecommendation {
	apiKey := c.resolver.Resolve(keys.KeySerp)
	if apiKey == "" {
		c.notify("API Key Missing", "Please set up your SerpAPI key in Settings to use food recommendations.")
		return SyntheticFoods(location)
	}

	data, err := c.search(ctx, apiKey, "google_images", "popular food in "+location)
	if err != nil {
		c.warnSearchFailure(err, "food")
		return SyntheticFoods(location)
	}

	foods := c.buildFoodResults(data.ImagesResults, location)
	if len(foods) == 0 {
		return SyntheticFoods(location)
	}
	return foods
}

func (c *SerpClient) buildFoodResults(images []serpImageResult, location string) []FoodRecommendation {
	foods := make([]FoodRecommendation, 0, 6)
	for i, img := range images {
		if i >= 6 {
			break
		}

		name := fmt.Sprintf(foodNameTemplates[i%len(foodNameTemplates)], location)
		desc := foodDescriptions[i%len(foodDescriptions)]
		if strings.Contains(desc, "%s") {
			desc = fmt.Sprintf(desc, location)
		}

		imageURL := img.Original
		if imageURL == "" {
			imageURL = img.Thumbnail
		}
		if imageURL == "" {
			imageURL = fmt.Sprintf("https://placehold.co/600x400?text=Food+%d", i+1)
		}

		foods = append(foods, FoodRecommendation{
			Name:        name,
			Description: desc,
			Price:       c.priceFn(),
			ImageURL:    imageURL,
			Restaurant:  fmt.Sprintf("%s Authentic Restaurant %d", location, i+1),
		})
	}
	return foods
}

// ─── Synthetic fallback sets ─────────────────────────────────────────────────

// SyntheticHotels is the fixed 4-entry fallback set templated on the
// location name.
func SyntheticHotels(location string) []HotelRecommendation {
	return []HotelRecommendation{
		{
			Name:          "Grand Luxury Hotel",
			Rating:        4.8,
			PricePerNight: 12000,
			Description:   fmt.Sprintf("Experience luxury accommodation in %s with spectacular views and premium service.", location),
			ImageURL:      "https://placehold.co/600x400?text=Luxury+Hotel",
		},
		{
			Name:          "Comfort Inn",
			Rating:        4.2,
			PricePerNight: 6500,
			Description:   fmt.Sprintf("Comfortable and affordable lodging in the heart of %s.", location),
			ImageURL:      "https://placehold.co/600x400?text=Comfort+Inn",
		},
		{
			Name:          "Heritage Resort",
			Rating:        4.6,
			PricePerNight: 9000,
			Description:   fmt.Sprintf("Experience the cultural heritage of %s at this beautiful resort.", location),
			ImageURL:      "https://placehold.co/600x400?text=Heritage+Resort",
		},
		{
			Name:          "Riverside Boutique Stay",
			Rating:        4.4,
			PricePerNight: 7800,
			Description:   fmt.Sprintf("A charming boutique stay close to the best sights of %s.", location),
			ImageURL:      "https://placehold.co/600x400?text=Boutique+Stay",
		},
	}
}

// SyntheticFoods is the fixed 6-entry fallback set templated on the
// location name.
func SyntheticFoods(location string) []FoodRecommendation {
	return []FoodRecommendation{
		{
			Name:        fmt.Sprintf("%s Spicy Curry", location),
			Description: fmt.Sprintf("A traditional spicy curry that captures the essence of %s flavors.", location),
			Price:       350,
			ImageURL:    "https://placehold.co/600x400?text=Spicy+Curry",
			Restaurant:  "Spice Garden Restaurant",
		},
		{
			Name:        fmt.Sprintf("%s Special Thali", location),
			Description: fmt.Sprintf("A complete meal featuring all the local specialties of %s.", location),
			Price:       450,
			ImageURL:    "https://placehold.co/600x400?text=Special+Thali",
			Restaurant:  "Heritage Dining",
		},
		{
			Name:        fmt.Sprintf("%s Sweet Delight", location),
			Description: fmt.Sprintf("A famous dessert that completes any authentic %s meal.", location),
			Price:       175,
			ImageURL:    "https://placehold.co/600x400?text=Sweet+Delight",
			Restaurant:  "Sweet Traditions",
		},
		{
			Name:        fmt.Sprintf("%s Street Chaat", location),
			Description: fmt.Sprintf("Tangy street-side snack found on every corner of %s.", location),
			Price:       120,
			ImageURL:    "https://placehold.co/600x400?text=Street+Chaat",
			Restaurant:  "Corner Chaat House",
		},
		{
			Name:        fmt.Sprintf("%s Royal Biryani", location),
			Description: fmt.Sprintf("Fragrant layered rice dish slow-cooked the %s way.", location),
			Price:       420,
			ImageURL:    "https://placehold.co/600x400?text=Royal+Biryani",
			Restaurant:  "Royal Biryani House",
		},
		{
			Name:        fmt.Sprintf("%s Breakfast Platter", location),
			Description: fmt.Sprintf("The classic morning spread locals in %s swear by.", location),
			Price:       250,
			ImageURL:    "https://placehold.co/600x400?text=Breakfast+Platter",
			Restaurant:  "Daybreak Cafe",
		},
	}
}

// ─── Request + helpers ───────────────────────────────────────────────────────

func (c *SerpClient) search(ctx context.Context, apiKey, engine, query string) (*serpSearchResponse, error) {
	reqURL := fmt.Sprintf("%s?engine=%s&q=%s&api_key=%s",
		c.baseURL, engine, url.QueryEscape(query), url.QueryEscape(apiKey))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Service: "SerpAPI", Status: resp.StatusCode}
	}

	var data serpSearchResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	return &data, nil
}

func (c *SerpClient) warnSearchFailure(err error, kind string) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		c.notify("API Error", fmt.Sprintf("Error connecting to SerpAPI (%d). Please check your API key.", upstream.Status))
		return
	}
	c.notify("Error", fmt.Sprintf("Could not fetch %s recommendations", kind))
}

// parseHotelPrice strips currency symbols from a provider price string.
func parseHotelPrice(s string) float64 {
	if s == "" {
		return defaultHotelPriceUSD
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price <= 0 {
		return defaultHotelPriceUSD
	}
	return price
}

func hotelDescription(location string) string {
	return fmt.Sprintf("Experience the beauty of %s at this wonderful hotel featuring modern amenities and excellent service.", location)
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func defaultRating(r float64) float64 {
	if r <= 0 {
		return defaultHotelRating
	}
	return r
}
