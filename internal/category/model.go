package category

import "time"

// Category represents the categories table
type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string    `gorm:"size:100;not null;uniqueIndex" json:"category_name"`
	Icon         string    `gorm:"size:10" json:"icon"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
