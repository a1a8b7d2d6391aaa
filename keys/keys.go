package keys

import (
	"fmt"
	"os"
	"strings"
)

// KeyType names an external service credential.
type KeyType string

const (
	KeyGemini   KeyType = "gemini_api_key"
	KeySerp     KeyType = "serp_api_key"
	KeyMapbox   KeyType = "mapbox_api_key"
	KeyUnsplash KeyType = "unsplash_access_key"
)

// AllKeyTypes lists every credential the service knows about.
var AllKeyTypes = []KeyType{KeyGemini, KeySerp, KeyMapbox, KeyUnsplash}

// envVars maps key types to their build-time environment defaults.
var envVars = map[KeyType]string{
	KeyGemini: "GEMINI_API_KEY",
	KeySerp:   "SERP_API_KEY",
}

// demoFallbacks are public rate-limited demo credentials. These key types
// resolve even with nothing saved and nothing configured.
var demoFallbacks = map[KeyType]string{
	KeyUnsplash: "_Vw_xQGg7YKcJFEYFdsXLU9y3YP8pKDIcCZETrVnkhs",
	KeyMapbox:   "pk.eyJ1IjoidHJpcGNyYWZ0LWRlbW8iLCJhIjoiY2x3MHRqcDBrMDFkdSJ9.demo",
}

// Store persists explicitly saved credential values.
type Store interface {
	GetKey(keyType string) (string, bool, error)
	SetKey(keyType, value string) error
}

// Resolver resolves credentials in a fixed order: explicitly saved value,
// then environment default, then demo fallback. Construct one and inject it
// into every client that needs credentials.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the credential value for keyType, or "" when none resolves.
func (r *Resolver) Resolve(keyType KeyType) string {
	if r.store != nil {
		if v, ok, err := r.store.GetKey(string(keyType)); err == nil && ok && v != "" {
			return v
		}
	}
	if env, ok := envVars[keyType]; ok {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return demoFallbacks[keyType]
}

// Present reports whether keyType resolves to a value, without exposing it.
func (r *Resolver) Present(keyType KeyType) bool {
	return r.Resolve(keyType) != ""
}

// Save validates and persists a credential. Blank or whitespace-only values
// are rejected as user errors.
func (r *Resolver) Save(keyType KeyType, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("cannot save empty %s", strings.ReplaceAll(string(keyType), "_", " "))
	}
	return r.store.SetKey(string(keyType), value)
}

// Valid reports whether keyType is one the service recognizes.
func Valid(keyType string) bool {
	for _, k := range AllKeyTypes {
		if string(k) == keyType {
			return true
		}
	}
	return false
}
