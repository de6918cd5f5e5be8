package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/authz"
	"climate-repair/internal/entities"
	apperrors "climate-repair/pkg/errors"
)

type UserRepositoryInterface interface {
	FindByLogin(ctx context.Context, login string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	GetActiveSpecialists(ctx context.Context) ([]entities.User, error)
}

type userRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

const userFields = "id, full_name, phone, login, password_hash, role, is_active, created_at"

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.FullName, &u.Phone, &u.Login, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("сканирование пользователя: %w", err)
	}
	return &u, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*entities.User, error) {
	query, args, err := psql.
		Select(userFields).
		From("users").
		Where(sq.Eq{"login": login, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса пользователя по логину: %w", err)
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query, args, err := psql.
		Select(userFields).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса пользователя по ID: %w", err)
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *userRepository) GetActiveSpecialists(ctx context.Context) ([]entities.User, error) {
	query, args, err := psql.
		Select("id", "full_name", "role").
		From("users").
		Where(sq.Eq{"role": authz.RoleSpecialist.String(), "is_active": true}).
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса специалистов: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса специалистов: %w", err)
	}
	defer rows.Close()

	specialists := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Role); err != nil {
			return nil, fmt.Errorf("сканирование специалиста: %w", err)
		}
		specialists = append(specialists, u)
	}
	return specialists, rows.Err()
}
