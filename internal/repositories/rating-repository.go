package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/entities"
	apperrors "climate-repair/pkg/errors"
)

type RatingRepositoryInterface interface {
	FindByRequestID(ctx context.Context, requestID uint64) (*entities.QualityRating, error)
	Create(ctx context.Context, requestID uint64, rating, comment string) error
}

type ratingRepository struct {
	storage *pgxpool.Pool
}

func NewRatingRepository(storage *pgxpool.Pool) RatingRepositoryInterface {
	return &ratingRepository{storage: storage}
}

func (r *ratingRepository) FindByRequestID(ctx context.Context, requestID uint64) (*entities.QualityRating, error) {
	query, args, err := psql.
		Select("id", "request_id", "rating", "comment", "created_at").
		From("quality_ratings").
		Where(sq.Eq{"request_id": requestID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса оценки: %w", err)
	}

	var q entities.QualityRating
	err = r.storage.QueryRow(ctx, query, args...).Scan(&q.ID, &q.RequestID, &q.Rating, &q.Comment, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("сканирование оценки: %w", err)
	}
	return &q, nil
}

func (r *ratingRepository) Create(ctx context.Context, requestID uint64, rating, comment string) error {
	query, args, err := psql.
		Insert("quality_ratings").
		Columns("request_id", "rating", "comment").
		Values(requestID, rating, comment).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка вставки оценки: %w", err)
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("вставка оценки: %w", err)
	}
	return nil
}
