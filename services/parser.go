package services

import (
	"encoding/json"
	"strings"
)

// ParseItinerary extracts the JSON object from free-form model output and
// deserializes it. Models frequently wrap the object in prose despite being
// told not to, so the object is located with a brace-balanced scan from the
// first '{' rather than trusting the text to be pure JSON.
func ParseItinerary(raw string) (*ItineraryPlan, error) {
	jsonStr, ok := extractJSONObject(raw)
	if !ok {
		return nil, ErrNoJSONFound
	}

	var plan ItineraryPlan
	if err := json.Unmarshal([]byte(jsonStr), &plan); err != nil {
		return nil, &InvalidJSONError{Err: err}
	}
	return &plan, nil
}

// extractJSONObject returns the substring from the first '{' through its
// matching '}'. Braces inside string literals (and escaped quotes) are
// ignored. Returns false when no '{' exists or the object never closes.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
