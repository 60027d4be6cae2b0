package auth

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoUser creates a demo customer account for local environments
func SeedDemoUser(db *gorm.DB) error {
	const email = "user@ticketing.com"

	var existing User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("user1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := User{
		Username:     "demo_user",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded demo user account")
	return nil
}
