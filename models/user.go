package models

import "time"

// User is an account that can own listings.
type User struct {
	ID          int64  `bson:"id" json:"id"`
	Email       string `bson:"email" json:"email"`
	Username    string `bson:"username" json:"username"`
	FullName    string `bson:"full_name" json:"full_name"`
	PhoneNumber string `bson:"phone_number" json:"phone_number"`

	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"password_hash" json:"-"`
	TokenHash    string `bson:"token_hash,omitempty" json:"-"`

	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// UserRegistration is the payload for creating an account.
type UserRegistration struct {
	Email       string `json:"email" binding:"required,email"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// UserCredentials is the payload for signing in. Identifier accepts the
// username or the email address.
type UserCredentials struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
