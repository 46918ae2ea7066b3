package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.Generate(42, RoleAdmin)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("subject mismatch: got %d, want 42", claims.UserID)
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("role mismatch: got %q, want %q", claims.Role, RoleAdmin)
	}
}

func TestParseExpiredToken(t *testing.T) {
	// Negative TTL stands in for the clock advancing past expiry.
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Generate(1, RoleUser)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("Parse() accepted an expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, _, err := m.Generate(1, RoleUser)
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("Parse() accepted a token signed with a different secret")
	}
}

func TestParseMalformedToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(tok); err == nil {
			t.Fatalf("Parse(%q) accepted a malformed token", tok)
		}
	}
}
