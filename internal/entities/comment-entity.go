package entities

import "time"

type RequestComment struct {
	ID         uint64    `json:"id"`
	RequestID  uint64    `json:"request_id"`
	UserID     uint64    `json:"user_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
}
