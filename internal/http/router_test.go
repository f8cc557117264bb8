package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "busbooking/internal/config"

	"github.com/gin-gonic/gin"
)

func testEnv() intconfig.Env {
	return intconfig.Env{
		AppAddr:     ":0",
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:5173"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("404 body is not JSON: %v", err)
	}
	if resp["path"] != "/api/nope" {
		t.Fatalf("unexpected 404 payload: %v", resp)
	}
}

func TestProtectedEndpointsRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/bookings/my"},
		{http.MethodGet, "/api/bookings/all"},
		{http.MethodDelete, "/api/bookings/1"},
		{http.MethodGet, "/api/auth/validate"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("X-Request-ID header missing")
	}
}
