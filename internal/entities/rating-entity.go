package entities

import "time"

// Допустимые значения оценки качества.
const (
	RatingGood   = "Хорошо"
	RatingNormal = "Нормально"
	RatingBad    = "Плохо"
)

type QualityRating struct {
	ID        uint64    `json:"id"`
	RequestID uint64    `json:"request_id"`
	Rating    string    `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
