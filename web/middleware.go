package web

import (
	"net/http"
	"strings"
	"time"

	"docsite/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// JWTAuthMiddleware validates Bearer tokens and populates editor context.
// Requests without a valid token continue unauthenticated - protected
// endpoints reject them at the handler level.
func JWTAuthMiddleware(c rweb.Context) error {
	authHeader := c.Request().Header("Authorization")

	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.Set("user_guid", "")
		c.Set("authenticated", false)
		return c.Next()
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := models.ValidateToken(tokenString)

	if err != nil {
		// Invalid token - continue as unauthenticated.
		// Don't log every invalid token attempt (could be attack)
		c.Set("user_guid", "")
		c.Set("authenticated", false)
		return c.Next()
	}

	c.Set("user_guid", claims.UserGUID)
	c.Set("username", claims.Username)
	c.Set("authenticated", true)

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	csp := []string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data:",
		"font-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides request timing logs
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}
