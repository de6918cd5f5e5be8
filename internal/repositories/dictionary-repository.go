package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/entities"
)

type DictionaryRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error)
	GetEquipmentModels(ctx context.Context, typeID uint64) ([]entities.EquipmentModel, error)
	GetStatuses(ctx context.Context) ([]entities.RequestStatus, error)
}

type dictionaryRepository struct {
	storage *pgxpool.Pool
}

func NewDictionaryRepository(storage *pgxpool.Pool) DictionaryRepositoryInterface {
	return &dictionaryRepository{storage: storage}
}

func (r *dictionaryRepository) GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error) {
	query, args, err := psql.
		Select("id", "name").
		From("equipment_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса типов оборудования: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса типов оборудования: %w", err)
	}
	defer rows.Close()

	types := make([]entities.EquipmentType, 0)
	for rows.Next() {
		var t entities.EquipmentType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("сканирование типа оборудования: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// GetEquipmentModels отдаёт модели; typeID == 0 означает все модели.
func (r *dictionaryRepository) GetEquipmentModels(ctx context.Context, typeID uint64) ([]entities.EquipmentModel, error) {
	builder := psql.
		Select("id", "name", "type_id", "manufacturer").
		From("equipment_models").
		OrderBy("name ASC")
	if typeID != 0 {
		builder = builder.Where(sq.Eq{"type_id": typeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса моделей: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса моделей: %w", err)
	}
	defer rows.Close()

	models := make([]entities.EquipmentModel, 0)
	for rows.Next() {
		var m entities.EquipmentModel
		if err := rows.Scan(&m.ID, &m.Name, &m.TypeID, &m.Manufacturer); err != nil {
			return nil, fmt.Errorf("сканирование модели: %w", err)
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

func (r *dictionaryRepository) GetStatuses(ctx context.Context) ([]entities.RequestStatus, error) {
	query, args, err := psql.
		Select("id", "name", "color").
		From("request_statuses").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса статусов: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса статусов: %w", err)
	}
	defer rows.Close()

	statuses := make([]entities.RequestStatus, 0)
	for rows.Next() {
		var s entities.RequestStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Color); err != nil {
			return nil, fmt.Errorf("сканирование статуса: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
