package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test_secret", 2*time.Hour)

	token, err := m.Issue(42, "owner")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned an empty token")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Username != "owner" {
		t.Errorf("Expected username 'owner', got %q", claims.Username)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID returned error: %v", err)
	}
	if id != 42 {
		t.Errorf("Expected user id 42, got %d", id)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test_secret", 2*time.Hour)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Issue(1, "owner")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Still valid just before expiry.
	m.now = func() time.Time { return issued.Add(2*time.Hour - time.Minute) }
	if _, err := m.Verify(token); err != nil {
		t.Errorf("Expected token to verify before expiry, got %v", err)
	}

	// Rejected after expiry, with the generic invalid error.
	m.now = func() time.Time { return issued.Add(2*time.Hour + time.Minute) }
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerifyFailures(t *testing.T) {
	m := NewManager("test_secret", 2*time.Hour)
	other := NewManager("another_secret", 2*time.Hour)

	good, err := m.Issue(7, "owner")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	forged, err := other.Issue(7, "owner")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	unsigned := unsignedToken(t)
	rsaSigned := rsaToken(t)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty token", token: "", want: ErrMissingToken},
		{name: "garbage token", token: "not-a-jwt", want: ErrInvalidToken},
		{name: "truncated token", token: good[:len(good)-5], want: ErrInvalidToken},
		{name: "wrong signing key", token: forged, want: ErrInvalidToken},
		{name: "alg none", token: unsigned, want: ErrInvalidToken},
		{name: "alg RS256", token: rsaSigned, want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("Verify(%q) = %v, want %v", tt.token, err, tt.want)
			}
		})
	}
}

// unsignedToken builds a token claiming alg=none with an empty signature.
func unsignedToken(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "7",
		"un":  "owner",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build alg=none token: %v", err)
	}
	return token
}

// rsaToken builds a validly RS256-signed token; only the algorithm is wrong.
func rsaToken(t *testing.T) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	claims := jwt.MapClaims{
		"sub": "7",
		"un":  "owner",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign RS256 token: %v", err)
	}
	return token
}
