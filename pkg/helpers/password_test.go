package helpers

import "testing"

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash equals the plain password")
	}
	if !CompareHashAndPassword(hash, "admin123") {
		t.Fatal("correct password rejected")
	}
	if CompareHashAndPassword(hash, "wrong-password") {
		t.Fatal("wrong password accepted")
	}
}
