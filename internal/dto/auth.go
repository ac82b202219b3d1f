package dto

import "banking-client/internal/models"

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"fullName" validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone_number"`
}

// SessionResponse describes the signed-in user and their accounts
type SessionResponse struct {
	User     *models.User     `json:"user"`
	Accounts []models.Account `json:"accounts"`
}
