package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	issuer *TokenIssuer
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(issuer *TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// RequireAuth validates JWT tokens and sets account context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.issuer.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		// Set account context
		c.Set("account_id", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("scope_key", claims.ScopeKey)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.issuer.ValidateJWT(tokenString)
		if err != nil {
			c.Next()
			return
		}

		c.Set("account_id", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("scope_key", claims.ScopeKey)
		c.Set("auth_claims", claims)

		c.Next()
	}
}
