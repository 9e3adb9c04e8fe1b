package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("profile-1", "session-1", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.ProfileID != "profile-1" {
		t.Errorf("ProfileID = %q, want %q", claims.ProfileID, "profile-1")
	}
	if claims.SessionID != "session-1" {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, "session-1")
	}
}

func TestParseExpired(t *testing.T) {
	token, err := Sign("profile-1", "session-1", -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Error("Parse accepted an expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	tests := []string{
		"",
		"not-a-token",
		"a.b.c",
	}
	for _, raw := range tests {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		}
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign("profile-1", "session-1", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	SetSecret("a-different-secret")
	defer SetSecret(defaultSecret)

	if _, err := Parse(token); err == nil {
		t.Error("Parse accepted a token signed with another secret")
	}
}
