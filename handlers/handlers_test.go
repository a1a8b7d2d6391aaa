package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripcraft/keys"
	"tripcraft/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newTestRouter(t *testing.T) (*gin.Engine, *Handlers) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SERP_API_KEY", "")

	gin.SetMode(gin.TestMode)
	h := New(keys.NewResolver(&memStore{values: map[string]string{}}))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/plan", h.PlanHandler)
	api.POST("/chat", h.ChatHandler)
	api.GET("/recommendations/hotels", h.HotelsHandler)
	api.GET("/recommendations/foods", h.FoodsHandler)
	api.GET("/map", h.MapHandler)
	api.GET("/keys", h.KeyStatusHandler)
	api.POST("/keys", h.SaveKeyHandler)
	return r, h
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ─── Plan validation ─────────────────────────────────────────────────────────

func TestPlanRejectsMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/plan", `{"destination":"Paris"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanRejectsPastDate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/plan",
		`{"origin":"Delhi","destination":"Paris","date":"2020-01-01","budget":2000,"travelers":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "past")
}

func TestPlanRejectsBadDateFormat(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/plan",
		`{"origin":"Delhi","destination":"Paris","date":"15/10/2026","budget":2000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "date format")
}

func TestPlanCredentialMissingIsServiceUnavailable(t *testing.T) {
	r, _ := newTestRouter(t)
	date := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	w := doJSON(r, "POST", "/api/plan",
		`{"origin":"Delhi","destination":"Paris","date":"`+date+`","budget":2000,"travelers":2}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Gemini API key")
}

// ─── Chat ────────────────────────────────────────────────────────────────────

func TestChatRequiresMessage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/chat", `{"destination":"Rome"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatCredentialMissing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ─── Recommendations ─────────────────────────────────────────────────────────

func TestHotelsFallBackWithoutCredential(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "GET", "/api/recommendations/hotels?location=Goa", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HotelsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.SyntheticHotels("Goa"), resp.Hotels)
	assert.Len(t, resp.Warnings, 1)
}

func TestFoodsFallBackWithoutCredential(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "GET", "/api/recommendations/foods?location=Goa", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp FoodsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Foods, 6)
	assert.Len(t, resp.Warnings, 1)
}

func TestHotelsRequireLocation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "GET", "/api/recommendations/hotels", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ─── Map + keys ──────────────────────────────────────────────────────────────

func TestMapUsesDemoToken(t *testing.T) {
	r, _ := newTestRouter(t)

	// Mapbox is demo-enabled, so the URL resolves without any saved key.
	w := doJSON(r, "GET", "/api/map?location=Agra", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "api.mapbox.com")
}

func TestSaveKeyRejectsBlank(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/keys", `{"key_type":"serp_api_key","value":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty")
}

func TestSaveKeyRejectsUnknownType(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/api/keys", `{"key_type":"other_key","value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveKeyThenStatus(t *testing.T) {
	r, h := newTestRouter(t)

	w := doJSON(r, "POST", "/api/keys", `{"key_type":"serp_api_key","value":"my-key"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, h.Resolver.Present(keys.KeySerp))

	w = doJSON(r, "GET", "/api/keys", "")
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status["serp_api_key"])
	assert.False(t, status["gemini_api_key"])
	assert.True(t, status["unsplash_access_key"], "demo key always present")
}
