package token

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

// rawToken builds a token by hand so payload shapes the signer would
// reject (object subjects) can still be exercised.
func rawToken(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".c2ln"
}

func TestUserIDFromUserIDClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"user_id": "u-123", "sub": "other"})

	got, err := UserID(tok)
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if got != "u-123" {
		t.Errorf("user id = %q, want u-123", got)
	}
}

func TestUserIDFallsBackToSub(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"sub": "u-456"})

	got, err := UserID(tok)
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if got != "u-456" {
		t.Errorf("user id = %q, want u-456", got)
	}
}

func TestUserIDFromObjectSub(t *testing.T) {
	// Some server versions embed the identity as an object.
	tok := rawToken(`{"sub":{"id":"u-789","is_admin":false}}`)

	got, err := UserID(tok)
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if got != "u-789" {
		t.Errorf("user id = %q, want u-789", got)
	}
}

func TestUserIDMalformed(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"empty", ""},
		{"not a token", "garbage"},
		{"two parts", "abc.def"},
		{"bad payload", "eyJhbGciOiJIUzI1NiJ9.!!!.c2ln"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UserID(tc.tok); err == nil {
				t.Error("expected error for malformed token")
			}
		})
	}
}

func TestUserIDMissingClaims(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"role": "guest"})

	_, err := UserID(tok)
	if !errors.Is(err, ErrNoUserID) {
		t.Errorf("err = %v, want ErrNoUserID", err)
	}
}
