package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"barberbook/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrNotConnected is returned by operations on a Store that was built
// without a backing connection.
var ErrNotConnected = errors.New("database: store not connected")

// Store wraps the database handle. It is constructed once in main and
// handed to repositories explicitly; nothing reaches for a global.
type Store struct {
	db *gorm.DB
}

// Connect opens the Postgres connection, configures the pool and migrates
// the schema.
func Connect(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database: failed to connect: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: failed to get pool handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.Message{},
		&models.Appointment{},
		&models.TrainingExample{},
		&models.AIModel{},
		&models.BarbershopConfig{},
	); err != nil {
		return nil, fmt.Errorf("database: migration failed: %w", err)
	}

	log.Println("Connected to Postgres successfully!")
	return &Store{db: db}, nil
}

// Disconnected returns a Store with no backing connection, for tooling and
// tests exercising paths without a database. Every operation on it fails
// with ErrNotConnected.
func Disconnected() *Store {
	return &Store{}
}

// Ready reports whether a backing connection exists.
func (s *Store) Ready() bool {
	return s != nil && s.db != nil
}

// DB returns the raw handle, or ErrNotConnected for a disconnected store.
func (s *Store) DB() (*gorm.DB, error) {
	if !s.Ready() {
		return nil, ErrNotConnected
	}
	return s.db, nil
}

// Gorm returns the raw handle without the readiness check; callers that
// tolerate nil (the health monitor) use this.
func (s *Store) Gorm() *gorm.DB {
	if s == nil {
		return nil
	}
	return s.db
}
