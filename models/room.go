package models

import "time"

// Room is one physical, bookable unit belonging to exactly one room type.
type Room struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	RoomTypeID uint         `json:"roomTypeId" gorm:"index"`
	RoomNumber string       `json:"roomNumber"`
	Active     bool         `json:"active" gorm:"default:true"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Statuses   []RoomStatus `json:"-" gorm:"foreignKey:RoomID"`
}
