package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAuthToken("alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	username, err := ParseAuthToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if username != "alice" {
		t.Fatalf("got username %q, want alice", username)
	}
}

func TestParseAuthTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ParseAuthToken(expired); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestParseAuthTokenRejectsForeignSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAuthToken("alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ParseAuthToken(token); err == nil {
		t.Fatal("token signed under a different secret was accepted")
	}
}

func TestParseAuthTokenRejectsUnsigned(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwt.MapClaims{"username": "alice", "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ParseAuthToken(unsigned); err == nil {
		t.Fatal("alg=none token was accepted")
	}
}

func TestSetAuthCookieAttributes(t *testing.T) {
	rr := httptest.NewRecorder()
	SetAuthCookie(rr, "tok")

	res := rr.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != AuthCookieName || c.Value != "tok" {
		t.Fatalf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Fatal("cookie must be HttpOnly")
	}
	if c.Path != "/" {
		t.Fatalf("cookie path %q, want /", c.Path)
	}
	if c.MaxAge != int(AuthTokenTTL.Seconds()) {
		t.Fatalf("cookie max-age %d, want %d", c.MaxAge, int(AuthTokenTTL.Seconds()))
	}
}

func TestClearAuthCookieExpiresIt(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearAuthCookie(rr)

	res := rr.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("clearing cookie must set a negative max-age, got %d", cookies[0].MaxAge)
	}
}

func TestCurrentUsernameWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/db", nil)
	if _, err := CurrentUsername(req); err == nil {
		t.Fatal("request without cookie must not resolve a username")
	}
}

func TestCurrentUsernameFromCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAuthToken("alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/db", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	username, err := CurrentUsername(req)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if username != "alice" {
		t.Fatalf("got %q, want alice", username)
	}
}
