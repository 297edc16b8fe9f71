package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected PHC argon2id prefix, got %q", hash)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("expected 6 PHC segments, got %d", len(parts))
	}
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	match, err := VerifyPassword("Sup3r$ecret", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !match {
		t.Fatal("expected password to match its own hash")
	}

	match, err = VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if match {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("Sup3r$ecret")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("expected different salts to produce different hashes")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA",
	}

	for _, encoded := range cases {
		if _, err := VerifyPassword("anything", encoded); err == nil {
			t.Errorf("expected error for malformed hash %q", encoded)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	first, err := NewSessionID()
	if err != nil {
		t.Fatalf("new session id: %v", err)
	}
	second, err := NewSessionID()
	if err != nil {
		t.Fatalf("new session id: %v", err)
	}

	if len(first) != 26 {
		t.Fatalf("expected 26-char ULID, got %d chars", len(first))
	}
	if first == second {
		t.Fatal("expected unique session ids")
	}
}
