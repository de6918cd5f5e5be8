package authz

import "strings"

// Role — закрытый набор ролей системы. Строка роли приходит из внешних
// источников (токен, БД) и может содержать случайные пробелы по краям,
// поэтому любое сравнение идёт только через ParseRole.
type Role string

const (
	RoleAdministrator  Role = "Администратор"
	RoleManager        Role = "Менеджер"
	RoleQualityManager Role = "Менеджер по качеству"
	RoleOperator       Role = "Оператор"
	RoleSpecialist     Role = "Специалист"
	RoleClient         Role = "Заказчик"
)

func ParseRole(raw string) Role {
	return Role(strings.TrimSpace(raw))
}

func (r Role) Known() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleQualityManager, RoleOperator, RoleSpecialist, RoleClient:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
