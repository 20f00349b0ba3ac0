package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	accountRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/masteraccount"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

// seedAccount учетная запись для первоначального заполнения
type seedAccount struct {
	username   string
	password   string
	masterCode string
}

// Пароли по умолчанию предназначены только для локальной разработки
var seedAccounts = []seedAccount{
	{username: "alexander", password: "alexander123", masterCode: domain.MasterAlexander},
	{username: "mikhail", password: "mikhail123", masterCode: domain.MasterMikhail},
	{username: "dmitry", password: "dmitry123", masterCode: domain.MasterDmitry},
	{username: "admin", password: "admin123", masterCode: domain.AdminCode},
}

// Команда первоначального заполнения учетных записей мастеров
// Идемпотентна: повторный запуск обновляет хеши паролей существующих аккаунтов
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	repository := accountRepo.NewRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, seed := range seedAccounts {
		hash, err := auth.HashPassword(seed.password)
		if err != nil {
			log.Fatal("Failed to hash password for %s: %v", seed.username, err)
		}

		account := &domain.MasterAccount{
			Username:     seed.username,
			PasswordHash: hash,
			MasterCode:   seed.masterCode,
			IsActive:     true,
		}

		if err := repository.Upsert(ctx, account); err != nil {
			log.Fatal("Failed to seed account %s: %v", seed.username, err)
		}

		log.Info("Seeded account: username=%s, master=%s", seed.username, seed.masterCode)
	}

	log.Info("Seeding completed: %d accounts", len(seedAccounts))
}
