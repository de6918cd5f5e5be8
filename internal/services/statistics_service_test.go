package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"climate-repair/internal/authz"
	"climate-repair/internal/entities"
	apperrors "climate-repair/pkg/errors"
)

// fakeStatsRepo записывает фильтры, с которыми его вызвали, и умеет
// падать на заданном шаге.
type fakeStatsRepo struct {
	generalFilters   []authz.DataFilter
	equipmentFilters []authz.DataFilter
	statusFilters    []authz.DataFilter
	workshopFilters  []authz.DataFilter

	failOn string
}

var errStorage = errors.New("хранилище недоступно")

func (f *fakeStatsRepo) GetGeneralStatistics(_ context.Context, filter authz.DataFilter) (*entities.GeneralStats, error) {
	f.generalFilters = append(f.generalFilters, filter)
	if f.failOn == "general" {
		return nil, errStorage
	}
	return &entities.GeneralStats{TotalRequests: 4, ActiveRequests: 2, CompletedRequests: 1, AvgCompletionDays: 6.0}, nil
}

func (f *fakeStatsRepo) GetEquipmentStatistics(_ context.Context, filter authz.DataFilter) ([]entities.EquipmentStat, error) {
	f.equipmentFilters = append(f.equipmentFilters, filter)
	if f.failOn == "equipment" {
		return nil, errStorage
	}
	return []entities.EquipmentStat{{TypeName: "Кондиционер", Count: 3}}, nil
}

func (f *fakeStatsRepo) GetStatusStatistics(_ context.Context, filter authz.DataFilter) ([]entities.StatusStat, error) {
	f.statusFilters = append(f.statusFilters, filter)
	if f.failOn == "status" {
		return nil, errStorage
	}
	return []entities.StatusStat{{StatusName: "Завершена", StatusColor: "#28a745", Count: 1}}, nil
}

func (f *fakeStatsRepo) GetWorkshopStatistics(_ context.Context, filter authz.DataFilter) ([]entities.WorkshopStat, error) {
	f.workshopFilters = append(f.workshopFilters, filter)
	if f.failOn == "workshop" {
		return nil, errStorage
	}
	return []entities.WorkshopStat{{SpecialistID: 2, SpecialistName: "Мастер", AssignedCount: 3, CompletedCount: 3, CompletionRate: 100, AvgDays: 5.5}}, nil
}

func TestBuildAggregateReport_SameFilterForAllQueries(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatisticsService(repo, zap.NewNop())

	report, err := svc.BuildAggregateReport(context.Background(), 7, "Специалист")
	require.NoError(t, err)
	require.NotNil(t, report)

	want := authz.DataFilter{Scope: authz.ScopeSpecialist, SubjectUserID: 7}
	require.Len(t, repo.generalFilters, 1)
	assert.Equal(t, want, repo.generalFilters[0])
	assert.Equal(t, repo.generalFilters, repo.equipmentFilters)
	assert.Equal(t, repo.generalFilters, repo.statusFilters)
	assert.Equal(t, repo.generalFilters, repo.workshopFilters)
}

func TestBuildAggregateReport_ClientSkipsWorkshops(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatisticsService(repo, zap.NewNop())

	report, err := svc.BuildAggregateReport(context.Background(), 7, "Заказчик")
	require.NoError(t, err)

	assert.Empty(t, repo.workshopFilters, "запрос по мастерским не должен выполняться")
	assert.NotNil(t, report.WorkshopStats)
	assert.Empty(t, report.WorkshopStats)
}

func TestBuildAggregateReport_UnknownRoleSkipsWorkshops(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatisticsService(repo, zap.NewNop())

	report, err := svc.BuildAggregateReport(context.Background(), 7, "Курьер")
	require.NoError(t, err)

	assert.Empty(t, repo.workshopFilters)
	assert.Empty(t, report.WorkshopStats)
}

func TestBuildAggregateReport_FullRoleIncludesWorkshops(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatisticsService(repo, zap.NewNop())

	report, err := svc.BuildAggregateReport(context.Background(), 1, "Менеджер")
	require.NoError(t, err)
	require.Len(t, report.WorkshopStats, 1)
	assert.Equal(t, "Мастер", report.WorkshopStats[0].SpecialistName)
}

func TestBuildAggregateReport_FailureWrapsAndStops(t *testing.T) {
	for _, step := range []string{"general", "equipment", "status", "workshop"} {
		repo := &fakeStatsRepo{failOn: step}
		svc := NewStatisticsService(repo, zap.NewNop())

		report, err := svc.BuildAggregateReport(context.Background(), 1, "Администратор")
		require.Error(t, err, "шаг %s", step)
		assert.Nil(t, report, "при сбое не должно быть частичного отчёта")

		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.ErrorIs(t, err, errStorage, "первопричина сохраняется в цепочке")
	}
}
