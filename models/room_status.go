package models

import "time"

const RoomStatusOccupied = 1

// RoomStatus marks one room occupied for the half-open range
// [FromDate, ToDate). A reservation writes one row per assigned room; the
// availability check and the booking re-validation both read these rows.
type RoomStatus struct {
	ID            uint      `gorm:"primaryKey"`
	RoomID        uint      `gorm:"index"`
	ReservationID uint      `gorm:"index"`
	FromDate      time.Time `gorm:"index"`
	ToDate        time.Time `gorm:"index"`
	Status        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
