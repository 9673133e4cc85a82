package models

import (
	"time"
)

// Reservation status constants. A booking is confirmed the moment its
// transaction commits; the nightly sweep settles it to completed once the
// checkout day passes.
const (
	ReservationStatusConfirmed = 1
	ReservationStatusCompleted = 2
	ReservationStatusCancelled = 3
)

type Reservation struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            *uint     `json:"userId"`
	User              *User     `json:"user" gorm:"foreignKey:UserID"`
	HotelID           uint      `json:"hotelId"`
	Hotel             Hotel     `json:"hotel" gorm:"foreignKey:HotelID"`
	Rooms             []Room    `json:"rooms" gorm:"many2many:reservation_rooms;"`
	CheckInDate       time.Time `json:"checkInDate" gorm:"type:date"`
	CheckOutDate      time.Time `json:"checkOutDate" gorm:"type:date"`
	Status            int       `json:"status"`
	GuestName         string    `json:"guestName,omitempty"`
	GuestEmail        string    `json:"guestEmail,omitempty"`
	GuestPhone        string    `json:"guestPhone,omitempty"`
	NightlyOriginal   int64     `json:"nightlyOriginal"`
	NightlyDiscounted int64     `json:"nightlyDiscounted"`
	TotalOriginal     int64     `json:"totalOriginal"`
	TotalDiscounted   int64     `json:"totalDiscounted"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// StayElapsed reports whether the checkout day has been reached, so the
// reservation holds no future nights.
func (r *Reservation) StayElapsed(day time.Time) bool {
	return !r.CheckOutDate.After(day)
}
