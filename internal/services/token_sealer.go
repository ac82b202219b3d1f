package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	sealedPrefix = "sealed:"
	nonceSize    = 24
)

var (
	ErrInvalidToken  = errors.New("invalid session token")
	ErrExpiredToken  = errors.New("session token is expired")
	ErrEmptyToken    = errors.New("empty session token")
	ErrUnsealable    = errors.New("sealed session token cannot be opened")
	ErrSealKeyNeeded = errors.New("session token is sealed but no seal key is configured")
)

// TokenSealer encrypts the session token with secretbox before it is
// mirrored. Without a key tokens are stored as they are.
type TokenSealer struct {
	key *[config.SealKeySize]byte
}

func NewTokenSealer(key *[config.SealKeySize]byte) *TokenSealer {
	return &TokenSealer{key: key}
}

func (ts *TokenSealer) Seal(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}
	if ts.key == nil {
		return token, nil
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	box := secretbox.Seal(nonce[:], []byte(token), &nonce, ts.key)
	return sealedPrefix + base64.RawURLEncoding.EncodeToString(box), nil
}

func (ts *TokenSealer) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", ErrEmptyToken
	}

	encoded, isSealed := strings.CutPrefix(sealed, sealedPrefix)
	if !isSealed {
		return sealed, nil
	}
	if ts.key == nil {
		return "", ErrSealKeyNeeded
	}

	box, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(box) < nonceSize {
		return "", ErrUnsealable
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	opened, ok := secretbox.Open(nil, box[nonceSize:], &nonce, ts.key)
	if !ok {
		return "", ErrUnsealable
	}
	return string(opened), nil
}

// ParseSessionClaims reads the ledger-issued token without verifying its
// signature; the client is not the token's audience.
func ParseSessionClaims(token string) (*models.SessionClaims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.SessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// CheckTokenExpiry fails when the token cannot be read or its exp claim is
// missing or not after now.
func CheckTokenExpiry(token string, now time.Time) error {
	claims, err := ParseSessionClaims(token)
	if err != nil {
		return err
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if expiresAt == nil || !now.Before(expiresAt.Time) {
		return ErrExpiredToken
	}
	return nil
}
