package authz

import (
	sq "github.com/Masterminds/squirrel"
)

// ReportCategory — разделы отчётности.
type ReportCategory string

const (
	CategoryGeneral   ReportCategory = "general"
	CategoryEquipment ReportCategory = "equipment"
	CategoryStatus    ReportCategory = "status"
	CategoryWorkshop  ReportCategory = "workshop"
	CategoryProduct   ReportCategory = "product"
	CategorySystem    ReportCategory = "system"
	CategoryPersonal  ReportCategory = "personal"
)

// rolePermissions — матрица доступа роль -> разделы отчётов.
// Неизвестная роль не получает ничего.
var rolePermissions = map[Role][]ReportCategory{
	RoleAdministrator:  {CategoryGeneral, CategoryEquipment, CategoryStatus, CategoryWorkshop, CategoryProduct, CategorySystem},
	RoleManager:        {CategoryGeneral, CategoryEquipment, CategoryStatus, CategoryWorkshop, CategoryProduct},
	RoleQualityManager: {CategoryGeneral, CategoryEquipment, CategoryStatus, CategoryWorkshop, CategoryProduct},
	RoleOperator:       {CategoryGeneral, CategoryEquipment, CategoryStatus},
	RoleSpecialist:     {CategoryPersonal},
	RoleClient:         {CategoryPersonal},
}

// CheckReportAccess отвечает, доступен ли роли раздел отчётов.
// Без побочных эффектов; роль триммится перед поиском.
func CheckReportAccess(rawRole string, category ReportCategory) bool {
	for _, allowed := range rolePermissions[ParseRole(rawRole)] {
		if allowed == category {
			return true
		}
	}
	return false
}

// FilterScope — область видимости данных отчёта.
type FilterScope string

const (
	ScopeClient     FilterScope = "client"
	ScopeSpecialist FilterScope = "specialist"
	ScopeFull       FilterScope = "full"
	ScopeNone       FilterScope = "none"
)

// DataFilter — неизменяемый дескриптор фильтрации строк.
// Создаётся один раз на запрос и передаётся во все четыре
// статистических запроса как есть, чтобы срезы были согласованы.
type DataFilter struct {
	Scope         FilterScope
	SubjectUserID uint64
}

// GetDataFilters выводит фильтр данных из роли пользователя.
// Функция тотальна: любая строка роли, включая мусорную, даёт
// определённый фильтр. Неизвестная роль закрывается наглухо
// (предикат "1 = 0"), а не пропускается.
func GetDataFilters(userID uint64, rawRole string) DataFilter {
	switch ParseRole(rawRole) {
	case RoleClient:
		return DataFilter{Scope: ScopeClient, SubjectUserID: userID}
	case RoleSpecialist:
		return DataFilter{Scope: ScopeSpecialist, SubjectUserID: userID}
	case RoleManager, RoleQualityManager, RoleAdministrator, RoleOperator:
		return DataFilter{Scope: ScopeFull}
	default:
		return DataFilter{Scope: ScopeNone}
	}
}

// RequestPredicate — условие на таблицу заявок (алиас r).
// nil означает отсутствие ограничений.
func (f DataFilter) RequestPredicate() sq.Sqlizer {
	switch f.Scope {
	case ScopeClient:
		return sq.Eq{"r.client_id": f.SubjectUserID}
	case ScopeSpecialist:
		return sq.Eq{"r.master_id": f.SubjectUserID}
	case ScopeFull:
		return nil
	default:
		return sq.Expr("1 = 0")
	}
}

// WorkshopVisible — видна ли роли статистика по мастерским вообще.
// Заказчики и неизвестные роли её не получают.
func (f DataFilter) WorkshopVisible() bool {
	return f.Scope == ScopeFull || f.Scope == ScopeSpecialist
}

// WorkshopPredicate — условие на таблицу специалистов (алиас m).
// Отдельная функция, а не переписывание RequestPredicate: условия на
// заявки и на специалистов живут в разных запросах с разными алиасами.
func (f DataFilter) WorkshopPredicate() sq.Sqlizer {
	if f.Scope == ScopeSpecialist {
		return sq.Eq{"m.id": f.SubjectUserID}
	}
	return nil
}
