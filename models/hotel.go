package models

import (
	"fmt"
	"time"
)

// Hotel status values
const (
	HotelStatusActive = 0
	HotelStatusHidden = 1
)

type Hotel struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	UserID           uint       `json:"userId"`
	Name             string     `json:"name"`
	Address          string     `json:"address"`
	Province         string     `json:"province"`
	District         string     `json:"district"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Status           int        `json:"status" gorm:"default:0"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	User             User       `json:"user" gorm:"foreignKey:UserID"`
	RoomTypes        []RoomType `json:"roomTypes" gorm:"foreignKey:HotelID"`
	Discounts        []Discount `json:"discounts" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateStatus() error {
	if h.Status < 0 || h.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", h.Status)
	}
	return nil
}
