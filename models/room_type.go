package models

import (
	"fmt"
	"time"
)

// RoomType is a priced category of rooms within a hotel. NightlyPrice is in
// minor currency units (cents).
type RoomType struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	HotelID      uint      `json:"hotelId" gorm:"index"`
	Name         string    `json:"name"`
	NightlyPrice int64     `json:"nightlyPrice"`
	NumBed       int       `json:"numBed"`
	MaxAdults    int       `json:"maxAdults"`
	MaxChildren  int       `json:"maxChildren"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms        []Room    `json:"rooms" gorm:"foreignKey:RoomTypeID"`
}

func (rt *RoomType) ValidateCapacity() error {
	if rt.MaxAdults < 1 {
		return fmt.Errorf("invalid maxAdults: %d, must be at least 1", rt.MaxAdults)
	}
	if rt.MaxChildren < 0 {
		return fmt.Errorf("invalid maxChildren: %d, must not be negative", rt.MaxChildren)
	}
	return nil
}
