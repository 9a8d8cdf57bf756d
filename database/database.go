package database

import (
	"fmt"
	"log"
	"time"

	"quizmaster/config"
	"quizmaster/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect establishes a connection to PostgreSQL, runs migrations and seeds
// the admin account. The returned handle is passed explicitly to handlers
// and jobs at construction time.
func Connect() (*gorm.DB, error) {
	cfg := config.AppConfig

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedAdmin(db, cfg.SaltRound); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Quiz{},
		&models.Question{},
		&models.UserResponse{},
		&models.Score{},
		&models.Result{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// SeedAdmin creates the admin role and default admin user if missing.
func SeedAdmin(db *gorm.DB, saltRound int) error {
	var adminRole models.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		adminRole = models.Role{Name: "admin", Description: "Administrator"}
		if err := db.Create(&adminRole).Error; err != nil {
			return err
		}
		log.Println("Created admin role")
	}

	var admin models.User
	if err := db.Where("email = ?", "admin@quizz.com").First(&admin).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte("adminpass"), saltRound)
		if err != nil {
			return err
		}
		admin = models.User{
			Email:          "admin@quizz.com",
			Password:       string(hashed),
			FsUniquifier:   fmt.Sprintf("%d", time.Now().UnixNano()),
			FullName:       "Admin User",
			NameSearchTerm: "admin user",
			Gender:         "Other",
			Country:        "India",
			Qualification:  "N/A",
			Active:         true,
			Roles:          []models.Role{adminRole},
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("Created admin user: admin@quizz.com")
	}

	return nil
}
