package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-sign-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestParseUserIdFromJWT_Success(t *testing.T) {
	signed := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "uid-42",
		Issuer:    "shield-chat-auth",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	got, err := ParseUserIdFromJWT(signed)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got != "uid-42" {
		t.Errorf("expected subject 'uid-42', got %s", got)
	}
}

func TestParseUserIdFromJWT_DoesNotVerifySignature(t *testing.T) {
	// The backend owns verification; the client only reads the subject.
	signed := signTestToken(t, jwt.RegisteredClaims{Subject: "uid-7"})
	tampered := signed[:len(signed)-2] + "xx"

	got, err := ParseUserIdFromJWT(tampered)
	if err != nil {
		t.Fatalf("expected no error for unverified parse, got: %v", err)
	}
	if got != "uid-7" {
		t.Errorf("expected subject 'uid-7', got %s", got)
	}
}

func TestParseUserIdFromJWT_NoSubject(t *testing.T) {
	signed := signTestToken(t, jwt.RegisteredClaims{Issuer: "shield-chat-auth"})

	if _, err := ParseUserIdFromJWT(signed); err == nil {
		t.Error("expected error for token without subject, got nil")
	}
}

func TestParseUserIdFromJWT_Malformed(t *testing.T) {
	if _, err := ParseUserIdFromJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}
