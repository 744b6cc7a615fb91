package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signToken builds a real signed JWT; the signing key is irrelevant because
// ParseClaims never verifies signatures.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{
		"name":  "Alice",
		"email": "alice@x.com",
		"role":  "admin",
		"exp":   exp.Unix(),
	})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}

	if claims.Name != "Alice" || claims.Email != "alice@x.com" {
		t.Errorf("got %+v, want Alice/alice@x.com", claims)
	}
	if !claims.IsAdmin() {
		t.Error("admin role not detected")
	}
	if claims.Expired() {
		t.Error("unexpired token reported expired")
	}
	if !claims.ExpiresAt.Equal(exp) {
		t.Errorf("got expiry %v, want %v", claims.ExpiresAt, exp)
	}
}

func TestParseClaimsMissingFields(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"email": "bob@x.com"})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}

	if claims.IsAdmin() {
		t.Error("missing role treated as admin")
	}
	if claims.Expired() {
		t.Error("token without exp reported expired")
	}
	if claims.Name != "" {
		t.Errorf("got name %q, want empty", claims.Name)
	}
}

func TestParseClaimsExpired(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if !claims.Expired() {
		t.Error("expired token not reported expired")
	}
}

func TestParseClaimsGarbage(t *testing.T) {
	if _, err := ParseClaims("not-a-jwt"); err == nil {
		t.Error("want error for malformed token")
	}
}
