package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"smarttoll/internal/domain"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
	emailKey    = "userEmail"
)

// Auth validates the bearer token and stores the session context for
// downstream handlers. Tokens are HS256, issued by the auth service.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}
		if id, ok := claims["user_id"].(float64); ok {
			c.Set(userIDKey, domain.ID(id))
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(emailKey, email)
		}
		c.Next()
	}
}

// SessionFrom rebuilds the session context stored by Auth.
func SessionFrom(c *gin.Context) domain.SessionContext {
	sess := domain.SessionContext{}
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(domain.ID); ok {
			sess.UserID = id
		}
	}
	sess.Role = domain.Role(c.GetString(userRoleKey))
	sess.Email = c.GetString(emailKey)
	return sess
}
