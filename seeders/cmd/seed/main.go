package main

import (
	"flag"
	"log"

	"climate-repair/pkg/config"
	"climate-repair/pkg/database/postgresql"
	"climate-repair/seeders"
)

func main() {
	csvDir := flag.String("csv", "", "каталог с CSV-выгрузками для импорта")
	withUsers := flag.Bool("users", true, "создавать тестовых пользователей")
	flag.Parse()

	cfg := config.New()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatalf("❌ Ошибка применения миграций: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedCoreDictionaries(db)
	if *withUsers {
		seeders.SeedTestUsers(db)
	}
	if *csvDir != "" {
		seeders.SeedFromCSV(db, *csvDir)
	}
}
