package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminKeyMiddleware(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "topsecret")

	handler := AdminKeyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"correct key", "topsecret", http.StatusOK},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/laptop-image", nil)
		if c.key != "" {
			req.Header.Set("X-ADMIN-KEY", c.key)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != c.want {
			t.Fatalf("%s: status %d, want %d", c.name, rr.Code, c.want)
		}
	}
}

func TestAdminKeyMiddlewareFailsClosedWithoutConfiguredKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "")

	handler := AdminKeyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/laptop-image", nil)
	req.Header.Set("X-ADMIN-KEY", "")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401 when no key is configured", rr.Code)
	}
}
