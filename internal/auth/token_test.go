package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	signed, expiresAt, err := tm.GenerateToken("staff-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Errorf("expiresAt = %v, want in the future", expiresAt)
	}

	claims, err := tm.ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.StaffID != "staff-42" {
		t.Errorf("StaffID = %q, want %q", claims.StaffID, "staff-42")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := NewTokenManager("secret-a", 30).GenerateToken("staff-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 30).ParseToken(signed); err == nil {
		t.Error("ParseToken accepted a token signed with a different secret")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)
	if _, err := tm.ParseToken("not.a.token"); err == nil {
		t.Error("ParseToken accepted garbage input")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
