package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	AccountID string `json:"account_id" example:"6b1884cb-6a33-47bd-a679-77bbf6a2d1ac"`
	Email     string `json:"email" example:"jane.doe@example.com"`
	ScopeKey  string `json:"scope_key" example:"TF-ABC234-WXYZ"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the access tokens handed to sync clients
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiry: expiry}
}

// GenerateJWT issues a signed token for the account
func (t *TokenIssuer) GenerateJWT(accountID uuid.UUID, email, scopeKey string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		AccountID: accountID.String(),
		Email:     email,
		ScopeKey:  scopeKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "teamflow-backend",
			Subject:   accountID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ValidateJWT parses and verifies a token string
func (t *TokenIssuer) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
