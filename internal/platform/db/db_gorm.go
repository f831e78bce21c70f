// Package db opens the Postgres connection and runs migrations.
package db

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"academy_backend/internal/domain/entity"
	"academy_backend/internal/platform/config"
)

// Open connects to Postgres over pgx with a retry loop, optionally running
// migrations when RUN_MIGRATIONS is set. Startup failures are fatal.
func Open(cfg *config.Config) *gorm.DB {
	sqlDB, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	var db *gorm.DB
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
			TranslateError: true,
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the schema and seeds the reference rows: the
// three roles and the singleton settings row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Category{},
		&entity.Course{},
		&entity.CourseSection{},
		&entity.Enrollment{},
		&entity.Review{},
		&entity.Payment{},
		&entity.Settings{},
	); err != nil {
		return err
	}
	return seed(db)
}

func seed(db *gorm.DB) error {
	roles := []entity.Role{
		{ID: entity.RoleAdmin, Name: "Admin"},
		{ID: entity.RoleTeacher, Name: "Teacher"},
		{ID: entity.RoleStudent, Name: "Student"},
	}
	for _, role := range roles {
		if err := db.Where(entity.Role{ID: role.ID}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	// The settings table holds exactly one row.
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		defaults := entity.Settings{
			Name:            "Academy",
			DefaultLanguage: "en",
			Timezone:        "UTC",
			FeaturesEnabled: true,
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
	}
	return nil
}
