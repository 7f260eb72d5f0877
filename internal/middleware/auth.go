package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/zhiyizhu805/FinShark/internal/config"
	"github.com/zhiyizhu805/FinShark/internal/models"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// getJWTKey returns the symmetric signing key from configuration.
func getJWTKey() []byte {
	return []byte(config.Get().JWTSigningKey)
}

// JWTClaims represents the claims embedded in issued tokens. Besides the
// registered claim set, tokens carry the user's email and username so a
// verifier holding the same key can recover both without a database hit.
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	GivenName string `json:"given_name"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed bearer token for the user. Tokens are
// HMAC-SHA512 signed, valid for the configured duration (7 days by
// default), and bound to the configured issuer/audience pair.
func GenerateToken(user *models.User) (string, error) {
	cfg := config.Get()
	now := time.Now()

	claims := &JWTClaims{
		UserID:    user.ID,
		Email:     user.Email,
		GivenName: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.JWTIssuer,
			Audience:  jwt.ClaimStrings{cfg.JWTAudience},
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(getJWTKey())
}

// ParseToken validates a token string against the configured key, issuer,
// and audience, and returns its claims.
func ParseToken(tokenString string) (*JWTClaims, error) {
	cfg := config.Get()
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getJWTKey(), nil
		},
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthMiddleware verifies the bearer token and sets the resolved user ID
// and username on the context. Handlers read identity from the context
// explicitly, never from global state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.GivenName)
		c.Next()
	}
}
