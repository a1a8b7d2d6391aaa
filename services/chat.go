package services

import (
	"context"
	"fmt"
)

// ChatClient answers free-form travel questions through the text client.
// Each call is stateless; the caller keeps whatever transcript it wants.
type ChatClient struct {
	gemini *GeminiClient
}

func NewChatClient(gemini *GeminiClient) *ChatClient {
	return &ChatClient{gemini: gemini}
}

// Ask sends one question with a destination-aware or generic system context
// and returns the raw assistant text. Failures from the text client
// propagate unchanged.
func (c *ChatClient) Ask(ctx context.Context, message, destination string) (string, error) {
	return c.gemini.Complete(ctx, message, chatContext(destination), nil)
}

func chatContext(destination string) string {
	if destination != "" {
		return fmt.Sprintf(`You are a helpful and knowledgeable travel assistant helping a tourist plan their trip to %s.
Provide detailed, accurate and helpful information about %s, including attractions,
local customs, food, transportation, and practical travel tips. Keep your answers focused on travel-related information.
When discussing prices, always use Indian Rupees (₹).`, destination, destination)
	}
	return `You are a helpful travel assistant. The user hasn't selected a specific destination yet,
so you're helping them with general travel planning questions or destination recommendations.
Focus only on travel-related assistance and advice. When discussing prices, always use Indian Rupees (₹).`
}
