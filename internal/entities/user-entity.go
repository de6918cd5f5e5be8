package entities

import "time"

type User struct {
	ID           uint64    `json:"id"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
