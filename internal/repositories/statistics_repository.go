package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/authz"
	"climate-repair/internal/entities"
	"climate-repair/pkg/utils"
)

type StatisticsRepositoryInterface interface {
	GetGeneralStatistics(ctx context.Context, filter authz.DataFilter) (*entities.GeneralStats, error)
	GetEquipmentStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.EquipmentStat, error)
	GetStatusStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.StatusStat, error)
	GetWorkshopStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.WorkshopStat, error)
}

type statisticsRepository struct {
	storage *pgxpool.Pool
}

func NewStatisticsRepository(storage *pgxpool.Pool) StatisticsRepositoryInterface {
	return &statisticsRepository{storage: storage}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func applyRequestFilter(b sq.SelectBuilder, filter authz.DataFilter) sq.SelectBuilder {
	if pred := filter.RequestPredicate(); pred != nil {
		return b.Where(pred)
	}
	return b
}

func (r *statisticsRepository) GetGeneralStatistics(ctx context.Context, filter authz.DataFilter) (*entities.GeneralStats, error) {
	stats := &entities.GeneralStats{}

	countWhere := func(extra sq.Sqlizer) (int64, error) {
		b := psql.Select("COUNT(*)").From("repair_requests r")
		b = applyRequestFilter(b, filter)
		if extra != nil {
			b = b.Where(extra)
		}
		query, args, err := b.ToSql()
		if err != nil {
			return 0, fmt.Errorf("сборка COUNT-запроса: %w", err)
		}
		var count int64
		if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
			return 0, fmt.Errorf("выполнение COUNT-запроса: %w", err)
		}
		return count, nil
	}

	var err error
	if stats.TotalRequests, err = countWhere(nil); err != nil {
		return nil, err
	}
	if stats.ActiveRequests, err = countWhere(sq.Eq{"r.status_id": entities.ActiveStatusIDs}); err != nil {
		return nil, err
	}
	if stats.CompletedRequests, err = countWhere(sq.Eq{"r.status_id": entities.StatusCompleted}); err != nil {
		return nil, err
	}

	// Среднее время ремонта в днях: completion_date и start_date имеют тип DATE,
	// их разность в Postgres — уже целое число дней.
	avgBuilder := psql.
		Select("COALESCE(AVG(r.completion_date - r.start_date), 0)").
		From("repair_requests r").
		Where(sq.Eq{"r.status_id": entities.StatusCompleted}).
		Where(sq.NotEq{"r.completion_date": nil})
	avgBuilder = applyRequestFilter(avgBuilder, filter)

	query, args, err := avgBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка AVG-запроса: %w", err)
	}
	var avgDays float64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&avgDays); err != nil {
		return nil, fmt.Errorf("выполнение AVG-запроса: %w", err)
	}
	stats.AvgCompletionDays = utils.Round1(avgDays)

	return stats, nil
}

// GetEquipmentStatistics считает заявки по каждому типу оборудования.
// Фильтр уходит в условие LEFT JOIN, а не в WHERE: типы без заявок
// должны остаться в выдаче с нулём.
func (r *statisticsRepository) GetEquipmentStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.EquipmentStat, error) {
	join := "repair_requests r ON et.id = r.type_id"
	var joinArgs []interface{}
	if pred := filter.RequestPredicate(); pred != nil {
		predSQL, predArgs, err := pred.ToSql()
		if err != nil {
			return nil, fmt.Errorf("сборка предиката фильтра: %w", err)
		}
		join = join + " AND " + predSQL
		joinArgs = predArgs
	}

	builder := psql.
		Select("et.name", "COUNT(r.id) AS count").
		From("equipment_types et").
		LeftJoin(join, joinArgs...).
		GroupBy("et.id", "et.name").
		OrderBy("count DESC", "et.id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса по типам оборудования: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса по типам оборудования: %w", err)
	}
	defer rows.Close()

	stats := make([]entities.EquipmentStat, 0)
	for rows.Next() {
		var s entities.EquipmentStat
		if err := rows.Scan(&s.TypeName, &s.Count); err != nil {
			return nil, fmt.Errorf("сканирование строки по типам оборудования: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *statisticsRepository) GetStatusStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.StatusStat, error) {
	join := "repair_requests r ON rs.id = r.status_id"
	var joinArgs []interface{}
	if pred := filter.RequestPredicate(); pred != nil {
		predSQL, predArgs, err := pred.ToSql()
		if err != nil {
			return nil, fmt.Errorf("сборка предиката фильтра: %w", err)
		}
		join = join + " AND " + predSQL
		joinArgs = predArgs
	}

	builder := psql.
		Select("rs.name", "rs.color", "COUNT(r.id) AS count").
		From("request_statuses rs").
		LeftJoin(join, joinArgs...).
		GroupBy("rs.id", "rs.name", "rs.color").
		OrderBy("count DESC", "rs.id ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса по статусам: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса по статусам: %w", err)
	}
	defer rows.Close()

	stats := make([]entities.StatusStat, 0)
	for rows.Next() {
		var s entities.StatusStat
		if err := rows.Scan(&s.StatusName, &s.StatusColor, &s.Count); err != nil {
			return nil, fmt.Errorf("сканирование строки по статусам: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// GetWorkshopStatistics — выработка по активным специалистам.
// Видимость раздела по ролям решает сервис; сюда попадают только
// фильтры full и specialist.
func (r *statisticsRepository) GetWorkshopStatistics(ctx context.Context, filter authz.DataFilter) ([]entities.WorkshopStat, error) {
	builder := psql.
		Select(
			"m.id",
			"m.full_name",
			"COUNT(r.id) AS assigned_count",
			fmt.Sprintf("COUNT(CASE WHEN r.status_id = %d THEN 1 END) AS completed_count", entities.StatusCompleted),
			fmt.Sprintf(
				"COALESCE(AVG(CASE WHEN r.status_id = %d AND r.completion_date IS NOT NULL THEN r.completion_date - r.start_date END), 0) AS avg_days",
				entities.StatusCompleted,
			),
		).
		From("users m").
		LeftJoin("repair_requests r ON m.id = r.master_id").
		Where(sq.Eq{"m.role": authz.RoleSpecialist.String()}).
		Where(sq.Eq{"m.is_active": true}).
		GroupBy("m.id", "m.full_name").
		OrderBy("assigned_count DESC", "m.id ASC")

	if pred := filter.WorkshopPredicate(); pred != nil {
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса по мастерским: %w", err)
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("выполнение запроса по мастерским: %w", err)
	}
	defer rows.Close()

	stats := make([]entities.WorkshopStat, 0)
	for rows.Next() {
		var (
			s       entities.WorkshopStat
			avgDays float64
		)
		if err := rows.Scan(&s.SpecialistID, &s.SpecialistName, &s.AssignedCount, &s.CompletedCount, &avgDays); err != nil {
			return nil, fmt.Errorf("сканирование строки по мастерским: %w", err)
		}
		if s.AssignedCount > 0 {
			s.CompletionRate = utils.Round1(float64(s.CompletedCount) * 100 / float64(s.AssignedCount))
		}
		s.AvgDays = utils.Round1(avgDays)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
