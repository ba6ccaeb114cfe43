package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestTimeoutMiddlewareSetsDeadline(t *testing.T) {
	t.Setenv("REQ_TIMEOUT_SEC", "10")

	var deadline time.Time
	var hasDeadline bool
	handler := TimeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !hasDeadline {
		t.Fatal("request context has no deadline")
	}
	if remaining := time.Until(deadline); remaining <= 5*time.Second || remaining > 10*time.Second {
		t.Fatalf("unexpected deadline %v from now", remaining)
	}
}

func TestTimeoutMiddlewareFallsBackOnBadValue(t *testing.T) {
	t.Setenv("REQ_TIMEOUT_SEC", "not-a-number")

	var ctxErr error
	var deadline time.Time
	handler := TimeoutMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxErr = r.Context().Err()
		deadline, _ = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if ctxErr != nil {
		t.Fatalf("context already expired on entry: %v", ctxErr)
	}
	if remaining := time.Until(deadline); remaining <= 30*time.Second {
		t.Fatalf("expected the default window, got %v remaining", remaining)
	}
}
