package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripcraft/keys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSerp(t *testing.T, apiKey string, handler http.HandlerFunc) (*SerpClient, *[]string) {
	t.Helper()

	var warnings []string
	notify := func(title, message string) {
		warnings = append(warnings, title+": "+message)
	}

	saved := map[string]string{}
	if apiKey != "" {
		saved[string(keys.KeySerp)] = apiKey
	}
	c := NewSerpClient(testResolver(t, saved), notify)
	c.priceFn = func() int { return 500 }

	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		c.baseURL = srv.URL
	}
	return c, &warnings
}

// ─── Hotels ──────────────────────────────────────────────────────────────────

func TestFetchHotelsMissingCredential(t *testing.T) {
	c, warnings := newTestSerp(t, "", nil)

	hotels := c.FetchHotels(context.Background(), "Jaipur")

	assert.Equal(t, SyntheticHotels("Jaipur"), hotels)
	require.Len(t, hotels, 4)
	for _, h := range hotels {
		assert.Contains(t, h.Description, "Jaipur")
	}
	assert.Len(t, *warnings, 1)
}

func TestFetchHotelsUpstream429(t *testing.T) {
	c, warnings := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	hotels := c.FetchHotels(context.Background(), "Tokyo")

	assert.Equal(t, SyntheticHotels("Tokyo"), hotels)
	require.Len(t, hotels, 4)
	for _, h := range hotels {
		assert.Contains(t, h.Description, "Tokyo")
	}
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "429")
}

func TestFetchHotelsStructuredResults(t *testing.T) {
	c, warnings := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google", r.URL.Query().Get("engine"))
		assert.Equal(t, "hotels in Udaipur", r.URL.Query().Get("q"))
		io.WriteString(w, `{"hotels_results":[
			{"name":"Lake Palace","price":"$120","rating":4.9,"description":"On the lake","thumbnail":"http://img/1","address":"Pichola"},
			{"name":"City View","price":"","rating":0},
			{"name":"A","price":"$1"},{"name":"B","price":"$1"},{"name":"C","price":"$1"},{"name":"D","price":"$1"}
		]}`)
	})

	hotels := c.FetchHotels(context.Background(), "Udaipur")

	require.Len(t, hotels, 5, "takes first 5 entries")
	assert.Empty(t, *warnings)

	assert.Equal(t, "Lake Palace", hotels[0].Name)
	assert.Equal(t, float64(120*usdToINR), hotels[0].PricePerNight)
	assert.Equal(t, 4.9, hotels[0].Rating)
	assert.Equal(t, "On the lake", hotels[0].Description)
	assert.Equal(t, "Pichola", hotels[0].Address)

	// Missing fields get defaulted or templated
	assert.Equal(t, float64(defaultHotelPriceUSD*usdToINR), hotels[1].PricePerNight)
	assert.Equal(t, defaultHotelRating, hotels[1].Rating)
	assert.Contains(t, hotels[1].Description, "Udaipur")
	assert.Contains(t, hotels[1].ImageURL, "placehold")
}

func TestFetchHotelsLocalResultsFallback(t *testing.T) {
	c, _ := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"local_results":[
			{"title":"Hilltop Lodge","rating":4.1,"address":"Old Town"},
			{"title":"Bay Inn"}
		]}`)
	})

	hotels := c.FetchHotels(context.Background(), "Kochi")

	require.Len(t, hotels, 2)
	assert.Equal(t, "Hilltop Lodge", hotels[0].Name)
	assert.Equal(t, float64(localResultPriceINR), hotels[0].PricePerNight)
	assert.Equal(t, 4.1, hotels[0].Rating)
	assert.Equal(t, defaultHotelRating, hotels[1].Rating)
	assert.Contains(t, hotels[1].Description, "Kochi")
}

func TestFetchHotelsEmptyResults(t *testing.T) {
	c, warnings := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	hotels := c.FetchHotels(context.Background(), "Leh")

	assert.Equal(t, SyntheticHotels("Leh"), hotels)
	// Empty results fall back silently; only failures warn.
	assert.Empty(t, *warnings)
}

// ─── Foods ───────────────────────────────────────────────────────────────────

func TestFetchFoodsMissingCredential(t *testing.T) {
	c, warnings := newTestSerp(t, "", nil)

	foods := c.FetchFoods(context.Background(), "Chennai")

	assert.Equal(t, SyntheticFoods("Chennai"), foods)
	require.Len(t, foods, 6)
	for _, f := range foods {
		assert.Contains(t, f.Name, "Chennai")
	}
	assert.Len(t, *warnings, 1)
}

func TestFetchFoodsImagesResults(t *testing.T) {
	c, warnings := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_images", r.URL.Query().Get("engine"))
		assert.Equal(t, "popular food in Amritsar", r.URL.Query().Get("q"))
		io.WriteString(w, `{"images_results":[
			{"original":"http://img/orig1","thumbnail":"http://img/t1"},
			{"thumbnail":"http://img/t2"},
			{},
			{"original":"http://img/orig4"},
			{"original":"http://img/orig5"},
			{"original":"http://img/orig6"},
			{"original":"http://img/orig7"}
		]}`)
	})

	foods := c.FetchFoods(context.Background(), "Amritsar")

	require.Len(t, foods, 6, "caps at 6 entries")
	assert.Empty(t, *warnings)

	// Names and descriptions come from cyclic templates, not the API
	assert.Equal(t, "Amritsar Special Curry", foods[0].Name)
	assert.Equal(t, "Traditional Amritsar Thali", foods[1].Name)
	assert.Equal(t, "Amritsar Style Biryani", foods[2].Name)

	// Image preference: original, then thumbnail, then fixed placeholder
	assert.Equal(t, "http://img/orig1", foods[0].ImageURL)
	assert.Equal(t, "http://img/t2", foods[1].ImageURL)
	assert.Contains(t, foods[2].ImageURL, "placehold")

	for _, f := range foods {
		assert.Equal(t, 500, f.Price, "injected price generator is used")
		assert.Contains(t, f.Restaurant, "Amritsar Authentic Restaurant")
	}
}

func TestFetchFoodsEmptyResults(t *testing.T) {
	c, _ := newTestSerp(t, "key", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"images_results":[]}`)
	})

	foods := c.FetchFoods(context.Background(), "Pune")
	assert.Equal(t, SyntheticFoods("Pune"), foods)
	assert.Len(t, foods, 6)
}

func TestDefaultPriceFnRange(t *testing.T) {
	c := NewSerpClient(testResolver(t, nil), nil)
	for i := 0; i < 200; i++ {
		p := c.priceFn()
		assert.GreaterOrEqual(t, p, 150)
		assert.LessOrEqual(t, p, 800)
	}
}

func TestParseHotelPrice(t *testing.T) {
	assert.Equal(t, 120.0, parseHotelPrice("$120"))
	assert.Equal(t, 99.5, parseHotelPrice("₹99.5"))
	assert.Equal(t, float64(defaultHotelPriceUSD), parseHotelPrice(""))
	assert.Equal(t, float64(defaultHotelPriceUSD), parseHotelPrice("call for price"))
}
