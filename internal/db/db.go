package db

import (
	"log"
	"time"

	"github.com/arielstudio/nail-scheduler/internal/config"
	"github.com/arielstudio/nail-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// A migração pode falhar quando a credencial só tem permissão de
	// leitura/append na tabela gerenciada; isso não impede o boot.
	if err := db.AutoMigrate(
		&models.StoreRecord{},
		&models.AuditLog{},
	); err != nil {
		log.Printf("migration skipped: %v", err)
	}

	return db
}
