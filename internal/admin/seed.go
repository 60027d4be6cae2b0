package admin

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAdmin creates the bootstrap admin account if it does not exist
func SeedDefaultAdmin(db *gorm.DB) error {
	const email = "admin@ticketing.com"

	var existing Admin
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adm := Admin{
		AdminName:    "System Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&adm).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded default admin account")
	return nil
}
