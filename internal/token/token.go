// Package token extracts identity claims from API bearer tokens.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoUserID means the token parsed but carries no usable identity claim.
var ErrNoUserID = errors.New("token has no user_id or sub claim")

// UserID returns the user id embedded in a bearer token.
// The signature is not verified; the API owns verification and the client
// only needs the identity claim. Prefers the user_id claim, falls back to
// sub, which some server versions emit as an {"id", "is_admin"} object.
func UserID(raw string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	if id, ok := claims["user_id"].(string); ok && id != "" {
		return id, nil
	}

	switch sub := claims["sub"].(type) {
	case string:
		if sub != "" {
			return sub, nil
		}
	case map[string]interface{}:
		if id, ok := sub["id"].(string); ok && id != "" {
			return id, nil
		}
	}

	return "", ErrNoUserID
}
