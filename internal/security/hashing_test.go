package security

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" {
		t.Fatal("Hash returned empty string")
	}
	if hash == "password123" {
		t.Fatal("Hash must not return the plaintext")
	}
	if err := h.Compare(hash, []byte("password123")); err != nil {
		t.Errorf("Compare with correct password: %v", err)
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	err = h.Compare(hash, []byte("wrong-password"))
	if err == nil {
		t.Fatal("Compare with wrong password should return error")
	}
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("Compare error = %v, want ErrMismatchedHashAndPassword", err)
	}
}

func TestNewHasher_CostClamping(t *testing.T) {
	testCases := []struct {
		name string
		cost int
		want int
	}{
		{"zero uses default", 0, bcrypt.DefaultCost},
		{"negative uses default", -1, bcrypt.DefaultCost},
		{"below min clamps", 2, bcrypt.MinCost},
		{"above max clamps", 99, bcrypt.MaxCost},
		{"valid passes through", 12, 12},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHasher(tc.cost)
			if h.Cost != tc.want {
				t.Errorf("Cost = %d, want %d", h.Cost, tc.want)
			}
		})
	}
}

func TestHasher_InvalidStoredHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if err := h.Compare("not-a-bcrypt-hash", []byte("password123")); err == nil {
		t.Error("Compare with invalid stored hash should return error")
	}
}
