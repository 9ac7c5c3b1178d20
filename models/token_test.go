package models

import (
	"testing"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	t.Setenv(JWTSecretEnvVar, "test-secret-key-for-jwt-testing-32chars")
	if err := InitJWT(); err != nil {
		t.Fatalf("failed to init JWT: %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	initTestJWT(t)

	user := &User{GUID: "guid-123", Username: "editor"}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserGUID != user.GUID {
		t.Errorf("expected user guid %q, got %q", user.GUID, claims.UserGUID)
	}
	if claims.Username != user.Username {
		t.Errorf("expected username %q, got %q", user.Username, claims.Username)
	}
	if claims.Issuer != TokenIssuer {
		t.Errorf("expected issuer %q, got %q", TokenIssuer, claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	initTestJWT(t)

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token should be rejected")
	}
	if _, err := ValidateToken(""); err == nil {
		t.Error("empty token should be rejected")
	}
}

func TestInitJWTRejectsShortSecret(t *testing.T) {
	t.Setenv(JWTSecretEnvVar, "too-short")
	if err := InitJWT(); err == nil {
		t.Error("short secret should be rejected")
	}
}
