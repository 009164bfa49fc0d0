package database

import (
	"fmt"
	"log"

	"barberbook/config"
	"barberbook/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed makes sure the singleton shop configuration exists and, when the
// bootstrap admin is configured and absent, creates it with a bcrypt hash.
func (s *Store) Seed() error {
	db, err := s.DB()
	if err != nil {
		return err
	}

	var cfg models.BarbershopConfig
	if err := db.First(&cfg, 1).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("database: seed config lookup: %w", err)
		}
		def := models.DefaultBarbershopConfig()
		if err := db.Create(&def).Error; err != nil {
			return fmt.Errorf("database: seed config: %w", err)
		}
		log.Println("Seeded default barbershop configuration")
	}

	adminEmail := config.AppConfig.AdminEmail
	adminPassword := config.AppConfig.AdminPassword
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing models.User
	err = db.First(&existing, "email = ?", adminEmail).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("database: seed admin lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("database: hash admin password: %w", err)
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("database: seed admin: %w", err)
	}
	log.Printf("Seeded bootstrap admin %s", adminEmail)
	return nil
}
