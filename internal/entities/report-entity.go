package entities

// GeneralStats — сводные показатели по заявкам под действующим фильтром.
type GeneralStats struct {
	TotalRequests     int64   `json:"total_requests"`
	ActiveRequests    int64   `json:"active_requests"`
	CompletedRequests int64   `json:"completed_requests"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
}

type EquipmentStat struct {
	TypeName string `json:"type_name"`
	Count    int64  `json:"count"`
}

type StatusStat struct {
	StatusName  string `json:"status_name"`
	StatusColor string `json:"status_color"`
	Count       int64  `json:"count"`
}

type WorkshopStat struct {
	SpecialistID   uint64  `json:"specialist_id"`
	SpecialistName string  `json:"specialist_name"`
	AssignedCount  int64   `json:"assigned_count"`
	CompletedCount int64   `json:"completed_count"`
	CompletionRate float64 `json:"completion_rate"`
	AvgDays        float64 `json:"avg_days"`
}

// AggregateReport — полный срез статистики одного запроса отчёта.
// Живёт в пределах запроса, никуда не кэшируется.
type AggregateReport struct {
	General        GeneralStats    `json:"general"`
	EquipmentStats []EquipmentStat `json:"equipment_stats"`
	StatusStats    []StatusStat    `json:"status_stats"`
	WorkshopStats  []WorkshopStat  `json:"workshop_stats"`
}
