package services

import (
	"fmt"
	"time"
)

// BuildItineraryPrompt turns a trip request into the generation prompt. The
// output is deterministic for identical input. The transportation block is
// included in the schema only when the request asks for it.
func BuildItineraryPrompt(req TripRequest) string {
	dateStr := req.Date
	if t, err := time.Parse("2006-01-02", req.Date); err == nil {
		dateStr = t.Format("January 2, 2006")
	}

	interests := req.Interests
	if interests == "" {
		interests = "General sightseeing"
	}

	prompt := fmt.Sprintf(`Please create a detailed travel plan with the following requirements:

From: %s
To: %s
Travel Date: %s
Budget: ₹%.0f
Number of Travelers: %d
Interests: %s

The response should be in JSON format with the following structure:
{
  "destination": "%s",
  "summary": "A one paragraph summary of the destination and what makes it special",
  "budget": {
    "total": number (in Indian Rupees),
    "accommodation": number (in Indian Rupees),
    "food": number (in Indian Rupees),
    "activities": number (in Indian Rupees),
    "transportation": number (in Indian Rupees)
  },
  "duration": number (recommended number of days),
  "itinerary": [
    {
      "day": number,
      "activities": [
        {
          "time": "string (e.g. '9:00 AM')",
          "activity": "string",
          "description": "string",
          "location": "string",
          "cost": number (in Indian Rupees)
        }
      ]
    }
  ],
  "foodSuggestions": [
    {
      "name": "string (dish name)",
      "description": "string (short description of the dish)",
      "price": number (average price in Indian Rupees),
      "imageUrl": "string (URL to a photo of the dish, e.g. https://source.unsplash.com/random/?food,dishname,%s)"
    }
  ],
  "tips": ["string", "string", ...]%s
}

Please make sure:
1. The itinerary is realistic and accounts for travel time between activities
2. The budget breakdown is reasonable for the destination
3. Activities match the listed interests
4. Include local cultural experiences and hidden gems
5. Include 3-5 popular local food dishes with descriptions, approximate prices, and valid image URLs
6. All prices should be in Indian Rupees (₹)
7. Only include the JSON in your response, with no other text`,
		req.Origin, req.Destination, dateStr, req.Budget, req.Travelers, interests,
		req.Destination, req.Destination, transportationSchema(req.IncludeTransportation))

	return prompt
}

func transportationSchema(include bool) string {
	if !include {
		return ""
	}
	return `,
  "transportation": {
    "flights": [
      {
        "airline": "string",
        "flightNumber": "string",
        "departure": {
          "airport": "string",
          "time": "string"
        },
        "arrival": {
          "airport": "string",
          "time": "string"
        },
        "price": number (in Indian Rupees),
        "duration": "string"
      }
    ],
    "localTransportation": ["string", "string", ...]
  }`
}
