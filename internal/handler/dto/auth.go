// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Username string `json:"username" validate:"required,max=64"`
}

// LoginRequest represents the request body for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is a generic success or failure message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterFailureResponse lists why a registration was rejected.
type RegisterFailureResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}
