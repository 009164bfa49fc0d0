package utils

import (
	"testing"
	"time"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "fade@example.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, role, err := ClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ClaimsFromToken failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
	if role != "admin" {
		t.Errorf("role = %q, want admin", role)
	}
}

func TestClaimsFromTokenDefaultsRole(t *testing.T) {
	token, err := GenerateToken(7, "walkin@example.com", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, role, err := ClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ClaimsFromToken failed: %v", err)
	}
	if role != "user" {
		t.Errorf("empty role must default to user, got %q", role)
	}
}

func TestClaimsFromExpiredToken(t *testing.T) {
	token, err := GenerateToken(7, "late@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := ClaimsFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestClaimsFromGarbageToken(t *testing.T) {
	if _, _, err := ClaimsFromToken("not.a.token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
