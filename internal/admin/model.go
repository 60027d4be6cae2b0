package admin

import "time"

// Admin represents the admins table (staff accounts, separate from users)
type Admin struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminName    string     `gorm:"size:100;not null" json:"admin_name"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:50;not null;default:admin" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
