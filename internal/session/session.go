// Package session provides the per-browser-session identity that keys
// each user's menu list, plus the flash notices shown after redirects.
package session

import (
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token
const CookieName = "menubook_session"

// Claims are the JWT claims stored in the session cookie
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager mints and verifies session identifiers. The identifier itself
// is opaque to the rest of the system; it is only ever used as a cache
// key.
type Manager struct {
	secret []byte
}

// NewManager creates a session manager signing with the given secret
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Mint returns a fresh, effectively-unique session identifier: the
// decimal encoding of a random UUID's 128-bit value.
func (m *Manager) Mint() string {
	u := uuid.New()
	return new(big.Int).SetBytes(u[:]).String()
}

// Sign wraps a session identifier in a signed token suitable for a cookie
func (m *Manager) Sign(sessionID string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a signed token and returns the session identifier
func (m *Manager) Parse(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SessionID, nil
}

// Cookie builds the browser-session cookie for a signed token. No
// Expires/MaxAge: the identifier lasts for the browser session only.
func Cookie(signed string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
