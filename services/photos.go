package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tripcraft/keys"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com/search/photos"

type Photo struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	ThumbURL       string `json:"thumb_url"`
	AltDescription string `json:"alt_description"`
	Photographer   string `json:"photographer"`
	PhotoLink      string `json:"photo_link"`
}

// PhotoClient searches destination photos on Unsplash. The demo access key
// resolves when nothing else is configured (limited to 50 requests/hour).
type PhotoClient struct {
	resolver   *keys.Resolver
	baseURL    string
	httpClient *http.Client
}

func NewPhotoClient(resolver *keys.Resolver) *PhotoClient {
	return &PhotoClient{
		resolver: resolver,
		baseURL:  defaultUnsplashBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type unsplashResponse struct {
	Results []struct {
		ID   string `json:"id"`
		URLs struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
		AltDescription string `json:"alt_description"`
		User           struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"results"`
}

// Search returns up to 8 photos for a location.
func (c *PhotoClient) Search(ctx context.Context, location string) ([]Photo, error) {
	accessKey := c.resolver.Resolve(keys.KeyUnsplash)
	if accessKey == "" {
		return nil, ErrCredentialMissing
	}

	reqURL := fmt.Sprintf("%s?query=%s&per_page=8&client_id=%s",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(accessKey))

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
		return nil, &UpstreamError{Service: "Unsplash", Status: resp.StatusCode}
	}

	var data unsplashResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse photo response: %w", err)
	}

	photos := make([]Photo, 0, len(data.Results))
	for _, r := range data.Results {
		photos = append(photos, Photo{
			ID:             r.ID,
			URL:            r.URLs.Regular,
			ThumbURL:       r.URLs.Small,
			AltDescription: r.AltDescription,
			Photographer:   r.User.Name,
			PhotoLink:      r.Links.HTML,
		})
	}
	return photos, nil
}
