package jwt

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	secret := []byte("test-secret")

	token, _ := GenerateToken(secret, 42, "refresh", time.Minute)
	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _ := GenerateToken([]byte("one"), 42, "access", time.Minute)
	if _, err := ParseToken([]byte("two"), "access", token); err == nil {
		t.Fatalf("expected signature error")
	}
}
