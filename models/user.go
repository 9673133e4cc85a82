package models

import "time"

// User roles
const (
	RoleGuest = 0
	RoleAdmin = 1
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string    `gorm:"default:New User" json:"name"`
	Email       string    `gorm:"unique" json:"email"`
	Password    string    `json:"-"`
	PhoneNumber string    `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Role        int       `gorm:"default:0" json:"role"`
	Status      int       `gorm:"default:0" json:"status"`
}
