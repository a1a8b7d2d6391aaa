package services

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMissing means no API key resolved for a required call.
	ErrCredentialMissing = errors.New("API key not configured")

	// ErrMalformedResponse means a success envelope was missing the expected
	// nested text field.
	ErrMalformedResponse = errors.New("invalid response format from AI service")

	// ErrNoJSONFound means the AI text output contained no JSON object.
	ErrNoJSONFound = errors.New("could not find JSON in AI response")

	// ErrLocationNotFound is the geocoder's distinct zero-match outcome.
	ErrLocationNotFound = errors.New("location not found")
)

// UpstreamError is a non-2xx response from an external endpoint.
type UpstreamError struct {
	Service string
	Status  int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error (%d)", e.Service, e.Status)
}

// InvalidJSONError means the extracted JSON span failed to deserialize.
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("could not parse JSON in AI response: %v", e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }
