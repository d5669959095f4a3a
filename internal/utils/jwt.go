// Package utils provides general-purpose helper utilities used across
// different parts of the application: JWT subject extraction and client-side
// identifier generation.
package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ParseUserIdFromJWT extracts the "sub" (subject) claim from a compact JWT
// without verifying its signature.
//
// The client never validates tokens itself — that is the auth backend's job
// on every request. The subject is read purely to learn the stable account
// identifier the token was issued for.
//
// Returns an error if the token cannot be parsed or carries no subject.
func ParseUserIdFromJWT(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return "", fmt.Errorf("error parsing JWT token: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("JWT token has no subject claim")
	}

	return claims.Subject, nil
}
