package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the UI displays (whoami, admin menu gating).
//
// The token is parsed without signature verification: the client never holds
// the signing key and only uses the claims as display hints. Authorization is
// enforced by the backend on every call.
type Claims struct {
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// IsAdmin reports whether the token claims the admin role.
// Use for hiding admin commands only - the server still rejects unauthorized calls.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Expired reports whether the token's exp claim has passed
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

// ParseClaims extracts the display claims from a bearer token without verifying it
func ParseClaims(token string) (*Claims, error) {
	parser := jwt.NewParser()

	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims := &Claims{}

	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
