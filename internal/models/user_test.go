package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
		errText string
	}{
		{
			name: "valid",
			user: User{ID: "12", Username: "jdoe", Email: gofakeit.Email()},
		},
		{
			name: "email is optional",
			user: User{ID: "12", Username: "jdoe"},
		},
		{
			name:    "missing id",
			user:    User{Username: "jdoe"},
			errText: "user ID is required",
		},
		{
			name:    "missing username",
			user:    User{ID: "12"},
			errText: "username is required",
		},
		{
			name:    "bad email",
			user:    User{ID: "12", Username: "jdoe", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.EqualError(t, err, tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	first, last := gofakeit.FirstName(), gofakeit.LastName()

	assert.Equal(t, first+" "+last, (&User{Username: "jdoe", FullName: first + " " + last}).DisplayName())
	assert.Equal(t, "jdoe", (&User{Username: "jdoe", FullName: "   "}).DisplayName())
}
