package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-repair/internal/entities"
)

func sampleReport() *entities.AggregateReport {
	return &entities.AggregateReport{
		General: entities.GeneralStats{
			TotalRequests:     4,
			ActiveRequests:    2,
			CompletedRequests: 1,
			AvgCompletionDays: 6.0,
		},
		EquipmentStats: []entities.EquipmentStat{
			{TypeName: "Кондиционер", Count: 3},
			{TypeName: "Увлажнитель воздуха", Count: 1},
			{TypeName: "Сушилка для рук", Count: 0},
		},
		StatusStats: []entities.StatusStat{
			{StatusName: "Новая заявка", StatusColor: "#007bff", Count: 2},
			{StatusName: "Завершена", StatusColor: "#28a745", Count: 1},
		},
		WorkshopStats: []entities.WorkshopStat{
			{SpecialistID: 2, SpecialistName: "Кудрявцева Ева Ивановна", AssignedCount: 3, CompletedCount: 3, CompletionRate: 100, AvgDays: 5.5},
		},
	}
}

func TestBuildDisplayModel(t *testing.T) {
	now := time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC)
	model := BuildDisplayModel("Отчеты и статистика", sampleReport(), now)

	assert.Equal(t, "Отчеты и статистика", model.Title)
	assert.Equal(t, int64(4), model.TotalRequests)
	assert.Equal(t, 6.0, model.AvgCompletionDays)

	require.Len(t, model.EquipmentStats, 3)
	assert.Equal(t, 75, model.EquipmentStats[0].Percent)
	assert.Equal(t, 25, model.EquipmentStats[1].Percent)
	assert.Equal(t, 0, model.EquipmentStats[2].Percent, "тип без заявок остаётся в отчёте с нулём")

	require.Len(t, model.StatusStats, 2)
	assert.Equal(t, "#007bff", model.StatusStats[0].Color)
	assert.Equal(t, 50, model.StatusStats[0].Percent)

	assert.Equal(t, "8 марта 2024 г., 14:30", model.GeneratedAt)
	assert.Equal(t, "08.03.2024", model.GeneratedDate)
}

func TestBuildDisplayModel_ZeroTotalGivesZeroPercents(t *testing.T) {
	report := &entities.AggregateReport{
		EquipmentStats: []entities.EquipmentStat{{TypeName: "Кондиционер", Count: 0}},
		StatusStats:    []entities.StatusStat{{StatusName: "Новая заявка", StatusColor: "#007bff", Count: 0}},
	}
	model := BuildDisplayModel("Отчеты и статистика", report, time.Now())

	assert.Equal(t, int64(0), model.TotalRequests)
	assert.Equal(t, 0, model.EquipmentStats[0].Percent)
	assert.Equal(t, 0, model.StatusStats[0].Percent)
}

// Страница и PDF строятся из одной display-модели и обязаны показывать
// одни и те же цифры, имена и цвета.
func TestRenderer_PageAndPDFContentParity(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	model := BuildDisplayModel("Отчеты и статистика", sampleReport(), time.Date(2024, time.March, 8, 14, 30, 0, 0, time.UTC))

	pageHTML, err := r.RenderPageHTML(model)
	require.NoError(t, err)
	pdfHTML, err := r.RenderPDFHTML(model)
	require.NoError(t, err)

	tokens := []string{
		"Отчеты и статистика",
		"Всего заявок", "В работе", "Завершено", "Среднее время (дни)",
		"Кондиционер", "Увлажнитель воздуха", "Сушилка для рук",
		"Новая заявка", "Завершена",
		"#007bff", "#28a745",
		"Кудрявцева Ева Ивановна",
		"75%", "50%", "100%",
		"8 марта 2024 г., 14:30", "08.03.2024",
	}
	for _, token := range tokens {
		assert.Contains(t, pageHTML, token, "страница: %q", token)
		assert.Contains(t, pdfHTML, token, "PDF: %q", token)
	}
}

func TestRenderer_EmptySectionsOmitted(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	report := &entities.AggregateReport{
		General: entities.GeneralStats{TotalRequests: 2, ActiveRequests: 2},
	}
	model := BuildDisplayModel("Статистика по моим заявкам", report, time.Now())

	pageHTML, err := r.RenderPageHTML(model)
	require.NoError(t, err)
	pdfHTML, err := r.RenderPDFHTML(model)
	require.NoError(t, err)

	for _, html := range []string{pageHTML, pdfHTML} {
		assert.NotContains(t, html, "Статистика по типам оборудования")
		assert.NotContains(t, html, "Статистика по статусам заявок")
		assert.NotContains(t, html, "Статистика по мастерским")
		assert.True(t, strings.Contains(html, "Всего заявок"), "сводка остаётся всегда")
	}
}
