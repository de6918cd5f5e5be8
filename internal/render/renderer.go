package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"climate-repair/internal/dto"
	"climate-repair/internal/entities"
	"climate-repair/pkg/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer превращает агрегированную статистику в HTML. Страница и
// PDF рендерятся из одной display-модели, поэтому содержимое двух
// представлений не может разъехаться.
type Renderer struct {
	page *template.Template
	pdf  *template.Template
}

func NewRenderer() (*Renderer, error) {
	page, err := template.ParseFS(templateFS, "templates/report_page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("разбор шаблона страницы: %w", err)
	}
	pdf, err := template.ParseFS(templateFS, "templates/report_pdf.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("разбор PDF-шаблона: %w", err)
	}
	return &Renderer{page: page, pdf: pdf}, nil
}

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

func formatRuDateTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d г., %02d:%02d", t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func formatRuDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildDisplayModel собирает display-модель отчёта: копирует агрегаты,
// досчитывает проценты от общего числа заявок и штампует время генерации.
// Чистая функция от входа и момента времени.
func BuildDisplayModel(title string, report *entities.AggregateReport, now time.Time) dto.ReportDisplayDTO {
	model := dto.ReportDisplayDTO{
		Title:             title,
		TotalRequests:     report.General.TotalRequests,
		ActiveRequests:    report.General.ActiveRequests,
		CompletedRequests: report.General.CompletedRequests,
		AvgCompletionDays: report.General.AvgCompletionDays,
		EquipmentStats:    make([]dto.ReportRowDTO, 0, len(report.EquipmentStats)),
		StatusStats:       make([]dto.ReportRowDTO, 0, len(report.StatusStats)),
		WorkshopStats:     make([]dto.WorkshopRowDTO, 0, len(report.WorkshopStats)),
		GeneratedAt:       formatRuDateTime(now),
		GeneratedDate:     formatRuDate(now),
	}

	total := report.General.TotalRequests
	for _, s := range report.EquipmentStats {
		model.EquipmentStats = append(model.EquipmentStats, dto.ReportRowDTO{
			Name:    s.TypeName,
			Count:   s.Count,
			Percent: utils.PercentOf(s.Count, total),
		})
	}
	for _, s := range report.StatusStats {
		model.StatusStats = append(model.StatusStats, dto.ReportRowDTO{
			Name:    s.StatusName,
			Color:   s.StatusColor,
			Count:   s.Count,
			Percent: utils.PercentOf(s.Count, total),
		})
	}
	for _, s := range report.WorkshopStats {
		model.WorkshopStats = append(model.WorkshopStats, dto.WorkshopRowDTO{
			SpecialistID:   s.SpecialistID,
			SpecialistName: s.SpecialistName,
			AssignedCount:  s.AssignedCount,
			CompletedCount: s.CompletedCount,
			CompletionRate: s.CompletionRate,
			AvgDays:        s.AvgDays,
		})
	}
	return model
}

func (r *Renderer) RenderPageHTML(model dto.ReportDisplayDTO) (string, error) {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("рендеринг страницы отчёта: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) RenderPDFHTML(model dto.ReportDisplayDTO) (string, error) {
	var buf bytes.Buffer
	if err := r.pdf.Execute(&buf, model); err != nil {
		return "", fmt.Errorf("рендеринг PDF-разметки: %w", err)
	}
	return buf.String(), nil
}
