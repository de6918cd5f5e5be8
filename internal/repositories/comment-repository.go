package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/entities"
)

type CommentRepositoryInterface interface {
	GetByRequestID(ctx context.Context, requestID uint64) ([]entities.RequestComment, error)
	Create(ctx context.Context, requestID, userID uint64, message string) error
}

type commentRepository struct {
	storage *pgxpool.Pool
}

func NewCommentRepository(storage *pgxpool.Pool) CommentRepositoryInterface {
	return &commentRepository{storage: storage}
}

func (r *commentRepository) GetByRequestID(ctx context.Context, requestID uint64) ([]entities.RequestComment, error) {
	query, args, err := psql.
		Select("rc.id", "rc.request_id", "rc.user_id", "rc.message", "rc.created_at", "u.full_name", "u.role").
		From("request_comments rc").
		Join("users u ON rc.user_id = u.id").
		Where(sq.Eq{"rc.request_id": requestID}).
		OrderBy("rc.created_at ASC", "rc.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса комментариев: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса комментариев: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.RequestComment, 0)
	for rows.Next() {
		var c entities.RequestComment
		if err := rows.Scan(&c.ID, &c.RequestID, &c.UserID, &c.Message, &c.CreatedAt, &c.AuthorName, &c.AuthorRole); err != nil {
			return nil, fmt.Errorf("сканирование комментария: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, requestID, userID uint64, message string) error {
	query, args, err := psql.
		Insert("request_comments").
		Columns("request_id", "user_id", "message").
		Values(requestID, userID, message).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка вставки комментария: %w", err)
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("вставка комментария: %w", err)
	}
	return nil
}
