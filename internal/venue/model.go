package venue

import "time"

// Venue represents the venues table
type Venue struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VenueName string    `gorm:"size:150;not null" json:"venue_name"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}
