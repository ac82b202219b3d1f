package models

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail = errors.New("invalid email format")
)

// User is the signed-in customer as returned by the ledger at login
type User struct {
	ID          ID     `json:"userId"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func (u *User) Validate() error {
	if u.ID.IsZero() {
		return errors.New("user ID is required")
	}

	if u.Username == "" {
		return errors.New("username is required")
	}

	if u.Email != "" && !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// DisplayName prefers the full name and falls back to the username
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return u.Username
}
