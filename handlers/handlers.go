package handlers

import (
	"errors"
	"net/http"

	"tripcraft/keys"
	"tripcraft/services"
)

// Handlers carries the constructed clients. One instance is built in main
// and its methods are registered as routes.
type Handlers struct {
	Resolver *keys.Resolver
	Gemini   *services.GeminiClient
	Chat     *services.ChatClient
	Geocoder *services.Geocoder
	Photos   *services.PhotoClient
}

func New(resolver *keys.Resolver) *Handlers {
	gemini := services.NewGeminiClient(resolver)
	return &Handlers{
		Resolver: resolver,
		Gemini:   gemini,
		Chat:     services.NewChatClient(gemini),
		Geocoder: services.NewGeocoder(),
		Photos:   services.NewPhotoClient(resolver),
	}
}

// aiErrorStatus maps AI pipeline failures to a single user-facing response.
// No partial plan is ever rendered.
func aiErrorStatus(err error) (int, string) {
	var upstream *services.UpstreamError
	var invalid *services.InvalidJSONError

	switch {
	case errors.Is(err, services.ErrCredentialMissing):
		return http.StatusServiceUnavailable, "Gemini API key is not configured. Add one in Settings."
	case errors.As(err, &upstream):
		return http.StatusBadGateway, upstream.Error()
	case errors.Is(err, services.ErrMalformedResponse):
		return http.StatusBadGateway, "The AI service returned an unexpected response. Please try again."
	case errors.Is(err, services.ErrNoJSONFound), errors.As(err, &invalid):
		return http.StatusBadGateway, "Could not understand the AI response. Please try again."
	default:
		return http.StatusBadGateway, "The AI request failed. Please try again."
	}
}
