package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/authz"
	"climate-repair/internal/dto"
	"climate-repair/internal/entities"
	apperrors "climate-repair/pkg/errors"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter authz.DataFilter, listFilter dto.RequestListFilterDTO) ([]entities.RequestDetails, error)
	FindRequest(ctx context.Context, id uint64) (*entities.RequestDetails, error)
	CreateRequest(ctx context.Context, clientID uint64, payload dto.CreateRequestDTO) (uint64, error)
	AssignMaster(ctx context.Context, requestID, masterID uint64) error
	UpdateStatus(ctx context.Context, requestID, statusID uint64, completed bool) error
}

type requestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &requestRepository{storage: storage}
}

func detailsBuilder() sq.SelectBuilder {
	return psql.
		Select(
			"r.id", "r.request_number", "r.start_date", "r.completion_date",
			"r.problem_description", "r.repair_parts", "r.priority_level",
			"r.client_id", "r.master_id", "r.status_id", "r.type_id", "r.model_id",
			"r.created_at", "r.updated_at",
			"c.full_name AS client_name", "c.phone AS client_phone",
			"m.full_name AS master_name",
			"et.name AS type_name", "em.name AS model_name",
			"rs.name AS status_name", "rs.color AS status_color",
		).
		From("repair_requests r").
		Join("users c ON r.client_id = c.id").
		LeftJoin("users m ON r.master_id = m.id").
		Join("equipment_types et ON r.type_id = et.id").
		Join("equipment_models em ON r.model_id = em.id").
		Join("request_statuses rs ON r.status_id = rs.id")
}

func scanDetails(row pgx.Row) (*entities.RequestDetails, error) {
	var d entities.RequestDetails
	err := row.Scan(
		&d.ID, &d.RequestNumber, &d.StartDate, &d.CompletionDate,
		&d.ProblemDescription, &d.RepairParts, &d.PriorityLevel,
		&d.ClientID, &d.MasterID, &d.StatusID, &d.TypeID, &d.ModelID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.ClientName, &d.ClientPhone,
		&d.MasterName,
		&d.TypeName, &d.ModelName,
		&d.StatusName, &d.StatusColor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("сканирование заявки: %w", err)
	}
	return &d, nil
}

// GetRequests отдаёт список заявок в пределах фильтра роли,
// с необязательным поиском по номеру, описанию и клиенту.
func (r *requestRepository) GetRequests(ctx context.Context, filter authz.DataFilter, listFilter dto.RequestListFilterDTO) ([]entities.RequestDetails, error) {
	builder := detailsBuilder().OrderBy("r.created_at DESC", "r.id DESC")

	if pred := filter.RequestPredicate(); pred != nil {
		builder = builder.Where(pred)
	}
	if listFilter.StatusID != 0 {
		builder = builder.Where(sq.Eq{"r.status_id": listFilter.StatusID})
	}
	if listFilter.Search != "" {
		like := "%" + listFilter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"r.request_number": like},
			sq.ILike{"r.problem_description": like},
			sq.ILike{"c.full_name": like},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса списка заявок: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса списка заявок: %w", err)
	}
	defer rows.Close()

	list := make([]entities.RequestDetails, 0)
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *d)
	}
	return list, rows.Err()
}

func (r *requestRepository) FindRequest(ctx context.Context, id uint64) (*entities.RequestDetails, error) {
	query, args, err := detailsBuilder().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса заявки: %w", err)
	}
	return scanDetails(r.storage.QueryRow(ctx, query, args...))
}

// CreateRequest создаёт заявку со следующим номером REQ-000001, REQ-000002, ...
// Номер выбирается в той же транзакции, что и вставка.
func (r *requestRepository) CreateRequest(ctx context.Context, clientID uint64, payload dto.CreateRequestDTO) (uint64, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("открытие транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	var maxID int64
	if err := tx.QueryRow(ctx, "SELECT COALESCE(MAX(id), 0) FROM repair_requests").Scan(&maxID); err != nil {
		return 0, fmt.Errorf("выбор номера заявки: %w", err)
	}
	number := fmt.Sprintf("REQ-%06d", maxID+1)

	priority := payload.PriorityLevel
	if priority == 0 {
		priority = 1
	}

	query, args, err := psql.
		Insert("repair_requests").
		Columns("request_number", "start_date", "problem_description", "priority_level", "client_id", "status_id", "type_id", "model_id").
		Values(number, time.Now(), payload.ProblemDescription, priority, clientID, entities.StatusNew, payload.TypeID, payload.ModelID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("сборка вставки заявки: %w", err)
	}

	var id uint64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("вставка заявки: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("фиксация транзакции: %w", err)
	}
	return id, nil
}

// AssignMaster назначает специалиста и переводит заявку в работу.
func (r *requestRepository) AssignMaster(ctx context.Context, requestID, masterID uint64) error {
	query, args, err := psql.
		Update("repair_requests").
		Set("master_id", masterID).
		Set("status_id", entities.StatusInProgress).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": requestID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("сборка назначения специалиста: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("назначение специалиста: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatus меняет статус; при завершении проставляет completion_date.
func (r *requestRepository) UpdateStatus(ctx context.Context, requestID, statusID uint64, completed bool) error {
	builder := psql.
		Update("repair_requests").
		Set("status_id", statusID).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": requestID})
	if completed {
		builder = builder.Set("completion_date", time.Now())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("сборка смены статуса: %w", err)
	}
	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("смена статуса: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
