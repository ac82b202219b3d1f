package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims the client reads from the ledger-issued token.
// The signature is not verified locally; only expiry and identity are used.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}
