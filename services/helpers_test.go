package services

import (
	"testing"

	"tripcraft/keys"
)

type memStore struct {
	values map[string]string
}

func (m *memStore) GetKey(keyType string) (string, bool, error) {
	v, ok := m.values[keyType]
	return v, ok, nil
}

func (m *memStore) SetKey(keyType, value string) error {
	m.values[keyType] = value
	return nil
}

// testResolver returns a resolver backed by the given saved values, with the
// env-default tier cleared so tests control resolution completely.
func testResolver(t *testing.T, saved map[string]string) *keys.Resolver {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SERP_API_KEY", "")
	if saved == nil {
		saved = map[string]string{}
	}
	return keys.NewResolver(&memStore{values: saved})
}
