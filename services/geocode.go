package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultNominatimBaseURL = "https://nominatim.openstreetmap.org/search"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves free-text locations via OpenStreetMap Nominatim.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		baseURL: defaultNominatimBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Nominatim reports lat/lon as numeric strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a location to coordinates, first match wins. A zero-match
// response is ErrLocationNotFound, which is a distinct outcome rather than
// an upstream failure.
func (g *Geocoder) Geocode(ctx context.Context, location string) (*Coordinates, error) {
	reqURL := fmt.Sprintf("%s?format=json&q=%s", g.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "tripcraft/1.0")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Service: "Nominatim", Status: resp.StatusCode}
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse geocoding response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrLocationNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return &Coordinates{Lat: lat, Lon: lon}, nil
}

// BuildStaticMapURL templates a static map image URL for a location. Pure
// string formatting, no network call; behavior is undefined when the map
// credential is absent, so callers must check presence first.
func BuildStaticMapURL(location, token string) string {
	return fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/mapbox/streets-v12/static/auto/600x400?q=%s&marker=pin-l%%2Bd4a843&access_token=%s",
		url.QueryEscape(location), url.QueryEscape(token))
}
