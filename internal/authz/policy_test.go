package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportAccess_Matrix(t *testing.T) {
	cases := []struct {
		role     string
		category ReportCategory
		allowed  bool
	}{
		{"Администратор", CategoryGeneral, true},
		{"Администратор", CategorySystem, true},
		{"Менеджер", CategoryGeneral, true},
		{"Менеджер", CategorySystem, false},
		{"Менеджер по качеству", CategoryProduct, true},
		{"Менеджер по качеству", CategorySystem, false},
		{"Оператор", CategoryStatus, true},
		{"Оператор", CategoryWorkshop, false},
		{"Специалист", CategoryPersonal, true},
		{"Специалист", CategoryGeneral, false},
		{"Заказчик", CategoryPersonal, true},
		{"Заказчик", CategoryGeneral, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CheckReportAccess(tc.role, tc.category),
			"роль %q, раздел %q", tc.role, tc.category)
	}
}

func TestCheckReportAccess_UnknownRoleDeniedEverywhere(t *testing.T) {
	categories := []ReportCategory{
		CategoryGeneral, CategoryEquipment, CategoryStatus,
		CategoryWorkshop, CategoryProduct, CategorySystem, CategoryPersonal,
	}
	for _, cat := range categories {
		assert.False(t, CheckReportAccess("Стажёр", cat), "раздел %q", cat)
		assert.False(t, CheckReportAccess("", cat), "раздел %q", cat)
	}
}

func TestCheckReportAccess_TrimsRole(t *testing.T) {
	assert.True(t, CheckReportAccess("  Менеджер  ", CategoryGeneral))
	assert.True(t, CheckReportAccess("Заказчик ", CategoryPersonal))
}

func TestGetDataFilters_RoleToScope(t *testing.T) {
	cases := []struct {
		role    string
		scope   FilterScope
		subject uint64
	}{
		{"Заказчик", ScopeClient, 42},
		{"Специалист", ScopeSpecialist, 42},
		{"Администратор", ScopeFull, 0},
		{"Менеджер", ScopeFull, 0},
		{"Менеджер по качеству", ScopeFull, 0},
		{"Оператор", ScopeFull, 0},
		{"Кладовщик", ScopeNone, 0},
		{"", ScopeNone, 0},
	}

	for _, tc := range cases {
		f := GetDataFilters(42, tc.role)
		assert.Equal(t, tc.scope, f.Scope, "роль %q", tc.role)
		assert.Equal(t, tc.subject, f.SubjectUserID, "роль %q", tc.role)
	}
}

func TestRequestPredicate_Client(t *testing.T) {
	f := GetDataFilters(7, "Заказчик")
	pred := f.RequestPredicate()
	require.NotNil(t, pred)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "r.client_id = ?", sql)
	assert.Equal(t, []interface{}{uint64(7)}, args)
}

func TestRequestPredicate_Specialist(t *testing.T) {
	f := GetDataFilters(9, "Специалист")
	pred := f.RequestPredicate()
	require.NotNil(t, pred)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "r.master_id = ?", sql)
	assert.Equal(t, []interface{}{uint64(9)}, args)
}

func TestRequestPredicate_FullScopeIsUnrestricted(t *testing.T) {
	f := GetDataFilters(1, "Администратор")
	assert.Nil(t, f.RequestPredicate())
}

// Неизвестная роль получает заведомо ложный предикат, а не полный доступ.
func TestRequestPredicate_UnknownRoleFailsClosed(t *testing.T) {
	f := GetDataFilters(1, "Самозванец")
	pred := f.RequestPredicate()
	require.NotNil(t, pred)

	sql, _, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", sql)
}

func TestWorkshopVisible(t *testing.T) {
	assert.True(t, GetDataFilters(1, "Администратор").WorkshopVisible())
	assert.True(t, GetDataFilters(1, "Специалист").WorkshopVisible())
	assert.False(t, GetDataFilters(1, "Заказчик").WorkshopVisible())
	assert.False(t, GetDataFilters(1, "Неизвестный").WorkshopVisible())
}

func TestWorkshopPredicate(t *testing.T) {
	full := GetDataFilters(1, "Менеджер")
	assert.Nil(t, full.WorkshopPredicate())

	filter := GetDataFilters(5, "Специалист")
	pred := filter.WorkshopPredicate()
	require.NotNil(t, pred)

	sql, args, err := pred.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "m.id = ?", sql)
	assert.Equal(t, []interface{}{uint64(5)}, args)
}
