package models

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/serr"
)

// JWT configuration constants
const (
	// TokenExpirationHours defines how long tokens remain valid (7 days)
	TokenExpirationHours = 24 * 7

	// TokenIssuer identifies the application that issued the token
	TokenIssuer = "docsite"

	// JWTSecretEnvVar is the environment variable containing the signing key
	JWTSecretEnvVar = "DOCSITE_JWT_SECRET"

	// MinSecretLength is the minimum acceptable length for the JWT secret
	MinSecretLength = 32
)

// jwtSecret holds the signing key loaded during InitJWT
var jwtSecret []byte

// TokenClaims extends JWT standard claims with editor identity.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserGUID string `json:"user_guid"`
	Username string `json:"username"`
}

// InitJWT loads the JWT signing key from the environment.
// Must be called at application startup before any token operations.
// Falls back to a fixed development key when unset.
func InitJWT() error {
	secret := os.Getenv(JWTSecretEnvVar)

	if secret == "" {
		// Development fallback; production must set the env var
		secret = "development-only-secret-do-not-use-in-production"
	}

	if len(secret) < MinSecretLength {
		return serr.New("JWT secret must be at least 32 characters")
	}

	jwtSecret = []byte(secret)
	return nil
}

// GenerateToken creates a signed JWT for the authenticated editor.
func GenerateToken(user *User) (string, error) {
	if len(jwtSecret) == 0 {
		return "", serr.New("JWT not initialized - call InitJWT first")
	}

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   user.GUID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * TokenExpirationHours)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
		UserGUID: user.GUID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign token")
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// Returns the claims if valid, or an error if the token is expired,
// malformed, or has an invalid signature.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	if len(jwtSecret) == 0 {
		return nil, serr.New("JWT not initialized - call InitJWT first")
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, serr.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, serr.New("invalid token claims")
	}

	return claims, nil
}
