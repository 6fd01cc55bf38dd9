package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "github.com/diegocode81/api-mock-adn-agenda/internal/config"
	"github.com/diegocode81/api-mock-adn-agenda/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeTray(t *testing.T, w *httptest.ResponseRecorder) models.TrayResponse {
	t.Helper()
	var resp models.TrayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestClientsListingDefaults(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/clients?userId=adn1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTray(t, w)
	assert.Equal(t, "adn1", resp.UserID)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Equal(t, 24, resp.Total)
	require.Len(t, resp.Items, 10)
	assert.Equal(t, "Zoe Álvarez", resp.Items[0].Name)
	assert.False(t, resp.UpdatedAt.IsZero())
}

func TestClientsListingFiltered(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet,
		"/api/clients?userId=adn1&clientStatus=prospect&campaignActive=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTray(t, w)
	require.NotEmpty(t, resp.Items)
	for _, item := range resp.Items {
		assert.Equal(t, "prospect", string(item.ClientStatus))
		assert.Equal(t, "with campaign", item.CampaignStatus)
	}
}

func TestClientsListingPageBeyondEnd(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/clients?userId=adn2&page=50&pageSize=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeTray(t, w)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 24, resp.Total)

	// items must serialize as [], never null
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestClientsListingRejectsUnknownUser(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/clients?userId=bogus&page=2&pageSize=5", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestClientsListingRejectsInvalidFilter(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/clients?userId=adn2&clientStatus=xyz", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "clientStatus")

	w = doRequest(t, r, http.MethodGet, "/api/clients?userId=adn2&campaignActive=maybe", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "campaignActive")
}

func TestClientsListingMethodNotAllowed(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := doRequest(t, r, method, "/api/clients?userId=adn1", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
	}
}

func TestRegistrationLookupEndpoint(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/registration?userId=tester", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reg models.Registration
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, "REG-001", reg.ID)
	assert.Equal(t, "hello-tester", reg.Field1)
	assert.Equal(t, float64(42), reg.Field2)
	assert.True(t, reg.Field3)
	assert.False(t, reg.Field4.IsZero())

	w = doRequest(t, r, http.MethodGet, "/api/registration", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenAPIDocuments(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.0", doc["openapi"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/clients")

	w = doRequest(t, r, http.MethodGet, "/api/registration/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/registration")
}

func TestOpenAPIServerURLOverride(t *testing.T) {
	r := NewRouter(intconfig.Env{PublicBaseURL: "https://mock.example.com"})

	w := doRequest(t, r, http.MethodGet, "/api/openapi.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"https://mock.example.com"`)
}

func TestOpenAPIServerURLFromForwardedProto(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/openapi.json", map[string]string{
		"X-Forwarded-Proto": "https",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"https://`)
}

func TestSwaggerUIShell(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/docs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, w.Body.String(), "SwaggerUIBundle")
	assert.Contains(t, w.Body.String(), "/api/openapi.json")
}

func TestOpenCORS(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/health", map[string]string{
		"Origin": "http://anywhere.example",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/health", map[string]string{
		"X-Request-ID": "req-123",
	})
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	w = doRequest(t, r, http.MethodGet, "/api/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	r := NewRouter(intconfig.Env{})

	w := doRequest(t, r, http.MethodGet, "/api/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/api/nope")
}
