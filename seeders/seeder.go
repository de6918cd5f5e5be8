package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/pkg/utils"
)

// SeedCoreDictionaries наполняет справочники: статусы, типы и модели
// оборудования. Повторный запуск безопасен.
func SeedCoreDictionaries(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения базовых справочников...")

	if err := seedStatuses(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения статусов: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
	}
	log.Println("✅ Наполнение базовых справочников завершено!")
}

func seedStatuses(ctx context.Context, db *pgxpool.Pool) error {
	for _, s := range statuses {
		_, err := db.Exec(ctx, `
			INSERT INTO request_statuses (id, name, color)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, color = EXCLUDED.color`,
			s.ID, s.Name, s.Color)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, t := range equipmentTypes {
		_, err := db.Exec(ctx, `
			INSERT INTO equipment_types (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			t.ID, t.Name)
		if err != nil {
			return err
		}
	}
	for _, m := range equipmentModels {
		_, err := db.Exec(ctx, `
			INSERT INTO equipment_models (name, type_id, manufacturer)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			m.Name, m.TypeID, m.Manufacturer)
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedTestUsers создаёт демонстрационных пользователей всех ролей.
func SeedTestUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск создания тестовых пользователей...")

	for _, u := range testUsers {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			log.Fatalf("❌ Ошибка хэширования пароля для %s: %v", u.Login, err)
		}
		_, err = db.Exec(ctx, `
			INSERT INTO users (full_name, phone, login, password_hash, role, is_active)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (login) DO NOTHING`,
			u.FullName, u.Phone, u.Login, hash, u.Role)
		if err != nil {
			log.Fatalf("❌ Ошибка создания пользователя %s: %v", u.Login, err)
		}
	}
	log.Println("✅ Тестовые пользователи созданы!")
}
