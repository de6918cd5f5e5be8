package dto

// Display-модель отчёта: агрегаты, перенесённые как есть, плюс
// предрассчитанные проценты и штампы времени генерации. Одна и та же
// структура уходит и в HTML-страницу, и в PDF-шаблон — это и держит
// паритет содержимого двух представлений.

type ReportRowDTO struct {
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Count   int64  `json:"count"`
	Percent int    `json:"percent"`
}

type WorkshopRowDTO struct {
	SpecialistID   uint64  `json:"specialist_id"`
	SpecialistName string  `json:"specialist_name"`
	AssignedCount  int64   `json:"assigned_count"`
	CompletedCount int64   `json:"completed_count"`
	CompletionRate float64 `json:"completion_rate"`
	AvgDays        float64 `json:"avg_days"`
}

type ReportDisplayDTO struct {
	Title             string           `json:"title"`
	TotalRequests     int64            `json:"total_requests"`
	ActiveRequests    int64            `json:"active_requests"`
	CompletedRequests int64            `json:"completed_requests"`
	AvgCompletionDays float64          `json:"avg_completion_days"`
	EquipmentStats    []ReportRowDTO   `json:"equipment_stats"`
	StatusStats       []ReportRowDTO   `json:"status_stats"`
	WorkshopStats     []WorkshopRowDTO `json:"workshop_stats"`
	GeneratedAt       string           `json:"generated_at"`
	GeneratedDate     string           `json:"generated_date"`
}
