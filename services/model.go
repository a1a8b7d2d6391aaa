package services

// ─── Trip request ─────────────────────────────────────────────────────────────

// TripRequest is the user's trip form, consumed once by the prompt builder.
type TripRequest struct {
	Origin                string  `json:"origin" binding:"required"`
	Destination           string  `json:"destination" binding:"required"`
	Date                  string  `json:"date" binding:"required"` // YYYY-MM-DD
	Budget                float64 `json:"budget" binding:"required,gt=0"`
	Travelers             int     `json:"travelers"`
	Interests             string  `json:"interests"`
	IncludeTransportation bool    `json:"include_transportation"`
}

// ─── Itinerary plan (AI output) ──────────────────────────────────────────────

// ItineraryPlan mirrors the JSON schema the model is instructed to fill in.
// Field names match the schema exactly; no validation is applied on parse.
type ItineraryPlan struct {
	Destination     string           `json:"destination"`
	Summary         string           `json:"summary"`
	Budget          BudgetBreakdown  `json:"budget"`
	Duration        int              `json:"duration"`
	Itinerary       []DayPlan        `json:"itinerary"`
	FoodSuggestions []FoodSuggestion `json:"foodSuggestions,omitempty"`
	Tips            []string         `json:"tips"`
	Transportation  *Transportation  `json:"transportation,omitempty"`
}

type BudgetBreakdown struct {
	Total          float64 `json:"total"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time        string  `json:"time"`
	Activity    string  `json:"activity"`
	Description string  `json:"description"`
	Location    string  `json:"location,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
}

type FoodSuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

type Transportation struct {
	Flights             []Flight `json:"flights"`
	LocalTransportation []string `json:"localTransportation"`
}

type Flight struct {
	Airline      string      `json:"airline"`
	FlightNumber string      `json:"flightNumber"`
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	Price        float64     `json:"price"`
	Duration     string      `json:"duration"`
}

type FlightPoint struct {
	Airport string `json:"airport"`
	Time    string `json:"time"`
}

// ─── Recommendations ─────────────────────────────────────────────────────────

type HotelRecommendation struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"pricePerNight"` // INR
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	Address       string  `json:"address,omitempty"`
}

type FoodRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // INR
	ImageURL    string `json:"imageUrl"`
	Restaurant  string `json:"restaurant,omitempty"`
}
