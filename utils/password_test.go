package utils

import "testing"

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("hunter22!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter22!" {
		t.Fatal("hash equals the plaintext password")
	}

	other, err := HashPassword("hunter22!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == other {
		t.Error("two hashes of the same password should differ (salted)")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !CheckPassword(hash, "hunter22!") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "hunter23!") {
		t.Error("expected wrong password to fail")
	}
	if CheckPassword("not-a-hash", "hunter22!") {
		t.Error("expected malformed hash to fail")
	}
}
