package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "s3cret-pw" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret-pw") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens, err := NewTokens("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := tokens.Issue("user-1", "kid@example.com")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "user-1" || claims.Email != "kid@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Errorf("token TTL = %v, want about %v", ttl, TokenTTL)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a, _ := NewTokens("secret-a")
	b, _ := NewTokens("secret-b")

	raw, err := a.Issue("user-1", "kid@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong secret: %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens, _ := NewTokens("test-secret")

	claims := Claims{
		Email: "kid@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tokens.Verify(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify expired token: %v, want ErrInvalidToken", err)
	}
}

func TestNewTokensEmptySecret(t *testing.T) {
	if _, err := NewTokens(""); err == nil {
		t.Fatal("empty secret accepted")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	tokens, _ := NewTokens("test-secret")
	raw, err := tokens.Issue("user-1", "kid@example.com")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	SetCookie(rec, raw, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	claims, err := tokens.FromRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q", claims.Subject)
	}
}

func TestFromRequestNoCookie(t *testing.T) {
	tokens, _ := NewTokens("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := tokens.FromRequest(req); !errors.Is(err, ErrNoToken) {
		t.Errorf("FromRequest without cookie: %v, want ErrNoToken", err)
	}
}

func TestClearCookieExpires(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	if cookies[0].Name != CookieName || cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Errorf("clear cookie = %+v", cookies[0])
	}
}
