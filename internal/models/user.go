package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the public projection of a user joined onto products.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=30,excludesall=0x20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Identifier is either the email address or the username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=100"`
	Username     *string `json:"username,omitempty" validate:"omitempty,min=3,max=30,excludesall=0x20"`
	ProfileImage *string `json:"profileImage,omitempty" validate:"omitempty,url"`
}

type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	jwt.RegisteredClaims
}
