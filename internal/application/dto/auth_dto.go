package dto

import "time"

// RegisterRequest creates a business together with its admin (owner) account.
type RegisterRequest struct {
	BusinessName string `json:"businessName" validate:"required"`
	BusinessType string `json:"businessType" validate:"omitempty,oneof=Cafe Retail Electronics Other"`
	Country      string `json:"country"`
	Currency     string `json:"currency" validate:"omitempty,len=3"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	PhoneNumber  string `json:"phoneNumber"`
	Password     string `json:"password" validate:"required,min=8"`
}

// AddStaffRequest creates a staff account under the caller's business.
type AddStaffRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginRequest credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse public view of a user.
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BusinessResponse public view of a business.
type BusinessResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Country  string `json:"country"`
	Currency string `json:"currency"`
	Plan     string `json:"plan"`
}

// RegisterResponse returned after onboarding.
type RegisterResponse struct {
	Token    string           `json:"token"`
	User     UserResponse     `json:"user"`
	Business BusinessResponse `json:"business"`
}

// LoginResponse token plus user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
