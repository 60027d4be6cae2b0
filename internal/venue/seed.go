package venue

import (
	"log"

	"gorm.io/gorm"
)

// SeedVenues inserts a starter venue list on first boot
func SeedVenues(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Venue{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	venues := []Venue{
		{VenueName: "Mall of Asia Arena", Address: "Pasay City, Metro Manila", Capacity: 15000},
		{VenueName: "Araneta Coliseum", Address: "Quezon City, Metro Manila", Capacity: 16500},
		{VenueName: "PICC Forum", Address: "CCP Complex, Pasay City", Capacity: 2000},
		{VenueName: "Circuit Makati Grounds", Address: "Makati City, Metro Manila", Capacity: 10000},
		{VenueName: "Cebu IC3 Convention Center", Address: "Cebu City, Cebu", Capacity: 3500},
	}
	if err := db.Create(&venues).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded venues")
	return nil
}
