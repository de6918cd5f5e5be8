package seeders

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"climate-repair/internal/entities"
	"climate-repair/pkg/utils"
)

// SeedFromCSV импортирует исторические данные из выгрузок с разделителем
// «точка с запятой»: пользователей, заявки и комментарии. Каталог должен
// содержать users.csv, requests.csv и comments.csv; отсутствующий файл
// просто пропускается.
func SeedFromCSV(db *pgxpool.Pool, dir string) {
	ctx := context.Background()
	log.Printf("▶️  Импорт данных из CSV (%s)...", dir)

	if err := importUsers(ctx, db, filepath.Join(dir, "users.csv")); err != nil {
		log.Fatalf("❌ Ошибка импорта пользователей: %v", err)
	}
	if err := importRequests(ctx, db, filepath.Join(dir, "requests.csv")); err != nil {
		log.Fatalf("❌ Ошибка импорта заявок: %v", err)
	}
	if err := importComments(ctx, db, filepath.Join(dir, "comments.csv")); err != nil {
		log.Fatalf("❌ Ошибка импорта комментариев: %v", err)
	}
	log.Println("✅ Импорт из CSV завершён!")
}

func readCSV(path string, wantFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⏭  Файл %s не найден, пропускаем", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = wantFields
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("разбор %s: %w", path, err)
	}
	if len(records) > 0 {
		records = records[1:] // первая строка - заголовок
	}
	return records, nil
}

// users.csv: id;ФИО;телефон;логин;пароль;роль
func importUsers(ctx context.Context, db *pgxpool.Pool, path string) error {
	records, err := readCSV(path, 6)
	if err != nil || records == nil {
		return err
	}
	for _, rec := range records {
		id, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("некорректный ID пользователя %q: %w", rec[0], err)
		}
		hash, err := utils.HashPassword(rec[4])
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `
			INSERT INTO users (id, full_name, phone, login, password_hash, role, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (login) DO NOTHING`,
			id, rec[1], rec[2], rec[3], hash, strings.TrimSpace(rec[5]))
		if err != nil {
			return err
		}
	}
	log.Printf("Загружено %d пользователей", len(records))
	return resetSequence(ctx, db, "users")
}

var typeByName = map[string]uint64{
	"Кондиционер":         1,
	"Увлажнитель воздуха": 2,
	"Сушилка для рук":     3,
}

var statusByName = map[string]uint64{
	"Новая заявка":       entities.StatusNew,
	"В процессе ремонта": entities.StatusInProgress,
	"Ожидание запчастей": entities.StatusAwaitingParts,
	"Готова к выдаче":    entities.StatusReadyForPick,
	"Завершена":          entities.StatusCompleted,
}

// requests.csv: id;дата начала;тип;модель;описание;статус;дата завершения;запчасти;мастер;клиент
func importRequests(ctx context.Context, db *pgxpool.Pool, path string) error {
	records, err := readCSV(path, 10)
	if err != nil || records == nil {
		return err
	}
	for _, rec := range records {
		id, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return fmt.Errorf("некорректный ID заявки %q: %w", rec[0], err)
		}

		typeID, ok := typeByName[strings.TrimSpace(rec[2])]
		if !ok {
			typeID = 1
		}
		statusID, ok := statusByName[strings.TrimSpace(rec[5])]
		if !ok {
			statusID = entities.StatusNew
		}
		modelID, err := findOrCreateModel(ctx, db, strings.TrimSpace(rec[3]), typeID)
		if err != nil {
			return err
		}

		startDate, err := time.Parse("2006-01-02", strings.TrimSpace(rec[1]))
		if err != nil {
			return fmt.Errorf("некорректная дата начала %q: %w", rec[1], err)
		}
		var completionDate interface{}
		if cd := strings.TrimSpace(rec[6]); cd != "" && cd != "null" {
			t, err := time.Parse("2006-01-02", cd)
			if err != nil {
				return fmt.Errorf("некорректная дата завершения %q: %w", rec[6], err)
			}
			completionDate = t
		}
		var repairParts interface{}
		if rp := strings.TrimSpace(rec[7]); rp != "" && rp != "null" {
			repairParts = rp
		}
		var masterID interface{}
		if m := strings.TrimSpace(rec[8]); m != "" && m != "null" {
			mid, err := strconv.ParseUint(m, 10, 64)
			if err != nil {
				return fmt.Errorf("некорректный ID мастера %q: %w", m, err)
			}
			masterID = mid
		}
		clientID, err := strconv.ParseUint(strings.TrimSpace(rec[9]), 10, 64)
		if err != nil {
			return fmt.Errorf("некорректный ID клиента %q: %w", rec[9], err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO repair_requests (
				id, request_number, start_date, problem_description, repair_parts,
				client_id, master_id, status_id, type_id, model_id, completion_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			id, fmt.Sprintf("REQ-%06d", id), startDate, rec[4], repairParts,
			clientID, masterID, statusID, typeID, modelID, completionDate)
		if err != nil {
			return err
		}
	}
	log.Printf("Загружено %d заявок", len(records))
	return resetSequence(ctx, db, "repair_requests")
}

// comments.csv: id;сообщение;автор;заявка
func importComments(ctx context.Context, db *pgxpool.Pool, path string) error {
	records, err := readCSV(path, 4)
	if err != nil || records == nil {
		return err
	}
	for _, rec := range records {
		userID, err := strconv.ParseUint(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil {
			return fmt.Errorf("некорректный ID автора %q: %w", rec[2], err)
		}
		requestID, err := strconv.ParseUint(strings.TrimSpace(rec[3]), 10, 64)
		if err != nil {
			return fmt.Errorf("некорректный ID заявки %q: %w", rec[3], err)
		}
		_, err = db.Exec(ctx, `
			INSERT INTO request_comments (message, user_id, request_id)
			VALUES ($1, $2, $3)`,
			rec[1], userID, requestID)
		if err != nil {
			return err
		}
	}
	log.Printf("Загружено %d комментариев", len(records))
	return nil
}

func findOrCreateModel(ctx context.Context, db *pgxpool.Pool, name string, typeID uint64) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, `
		INSERT INTO equipment_models (name, type_id, manufacturer)
		VALUES ($1, $2, '')
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name, typeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("модель %q: %w", name, err)
	}
	return id, nil
}

// resetSequence выравнивает последовательность ID после вставки с явными ID.
func resetSequence(ctx context.Context, db *pgxpool.Pool, table string) error {
	query := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s",
		table, table)
	_, err := db.Exec(ctx, query)
	return err
}
