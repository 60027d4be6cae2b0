package category

import (
	"log"

	"gorm.io/gorm"
)

// SeedCategories inserts the base category set on first boot
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []Category{
		{CategoryName: "Music", Icon: "🎵", Description: "Concerts and live music events"},
		{CategoryName: "Conference", Icon: "🎤", Description: "Industry conferences and summits"},
		{CategoryName: "Workshop", Icon: "🛠️", Description: "Hands-on learning sessions"},
		{CategoryName: "Festival", Icon: "🎪", Description: "Cultural and seasonal festivals"},
		{CategoryName: "Theater", Icon: "🎭", Description: "Stage plays and performances"},
		{CategoryName: "Sports", Icon: "⚽", Description: "Games, matches and tournaments"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded event categories")
	return nil
}
