package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripcraft/keys"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// GeminiClient issues single-shot text generation requests. It does not
// retry; upstream rate limits surface as UpstreamError.
type GeminiClient struct {
	resolver   *keys.Resolver
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(resolver *keys.Resolver) *GeminiClient {
	return &GeminiClient{
		resolver: resolver,
		baseURL:  defaultGeminiBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig map[string]any  `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Complete sends one generation request and returns the first candidate's
// first text part verbatim. When contextStr is non-empty it is prepended to
// the prompt with a blank line between. Caller options override the default
// generation parameters field-wise.
func (c *GeminiClient) Complete(ctx context.Context, prompt, contextStr string, opts map[string]any) (string, error) {
	apiKey := c.resolver.Resolve(keys.KeyGemini)
	if apiKey == "" {
		return "", ErrCredentialMissing
	}

	text := prompt
	if contextStr != "" {
		text = contextStr + "\n\n" + prompt
	}

	genConfig := map[string]any{
		"temperature":     0.7,
		"topK":            40,
		"topP":            0.95,
		"maxOutputTokens": 8192,
	}
	for k, v := range opts {
		genConfig[k] = v
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: text}}},
		},
		GenerationConfig: genConfig,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", c.baseURL, apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Service: "Gemini", Status: resp.StatusCode}
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", ErrMalformedResponse
	}

	if len(geminiResp.Candidates) == 0 ||
		len(geminiResp.Candidates[0].Content.Parts) == 0 ||
		geminiResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrMalformedResponse
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
