// Package account registers and authenticates marketplace users.
package account

import "time"

// Account is one registered user.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	NationalID   string    `json:"national_id"`
	Phone        string    `json:"phone"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterInput is the raw registration form.
type RegisterInput struct {
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	Phone      string `json:"phone"`
	FullName   string `json:"full_name"`
	Password   string `json:"password"`
}
