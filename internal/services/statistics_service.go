package services

import (
	"context"

	"go.uber.org/zap"

	"climate-repair/internal/authz"
	"climate-repair/internal/entities"
	"climate-repair/internal/repositories"
	apperrors "climate-repair/pkg/errors"
)

type StatisticsServiceInterface interface {
	BuildAggregateReport(ctx context.Context, userID uint64, role string) (*entities.AggregateReport, error)
}

type statisticsService struct {
	statsRepo repositories.StatisticsRepositoryInterface
	logger    *zap.Logger
}

func NewStatisticsService(statsRepo repositories.StatisticsRepositoryInterface, logger *zap.Logger) StatisticsServiceInterface {
	return &statisticsService{statsRepo: statsRepo, logger: logger}
}

// BuildAggregateReport собирает полный срез статистики для пользователя.
// Фильтр выводится из роли один раз и передаётся во все четыре запроса,
// чтобы разделы отчёта не разъехались между собой. Запросы идут
// последовательно; при любом сбое наружу не выходит ни одного
// частичного агрегата.
func (s *statisticsService) BuildAggregateReport(ctx context.Context, userID uint64, role string) (*entities.AggregateReport, error) {
	filter := authz.GetDataFilters(userID, role)

	general, err := s.statsRepo.GetGeneralStatistics(ctx, filter)
	if err != nil {
		s.logger.Error("Сбой расчёта сводной статистики", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, apperrors.NewAggregationError(err)
	}

	equipment, err := s.statsRepo.GetEquipmentStatistics(ctx, filter)
	if err != nil {
		s.logger.Error("Сбой расчёта статистики по оборудованию", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, apperrors.NewAggregationError(err)
	}

	statuses, err := s.statsRepo.GetStatusStatistics(ctx, filter)
	if err != nil {
		s.logger.Error("Сбой расчёта статистики по статусам", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, apperrors.NewAggregationError(err)
	}

	workshops := make([]entities.WorkshopStat, 0)
	if filter.WorkshopVisible() {
		workshops, err = s.statsRepo.GetWorkshopStatistics(ctx, filter)
		if err != nil {
			s.logger.Error("Сбой расчёта статистики по мастерским", zap.Uint64("user_id", userID), zap.Error(err))
			return nil, apperrors.NewAggregationError(err)
		}
	}

	return &entities.AggregateReport{
		General:        *general,
		EquipmentStats: equipment,
		StatusStats:    statuses,
		WorkshopStats:  workshops,
	}, nil
}
