package util

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", "xpensemate", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Issuer != "xpensemate" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "xpensemate")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "xpensemate", "user-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("ParseToken() with wrong secret succeeded, want error")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", "xpensemate", "user-1", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatal("ParseToken() with expired token succeeded, want error")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("test-secret", "not-a-token"); err == nil {
		t.Fatal("ParseToken() with garbage succeeded, want error")
	}
}
