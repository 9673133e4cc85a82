package engine

import (
	"time"

	"stayhub/models"
)

// Interval is one existing reservation's half-open [From, To) date range on
// a physical room.
type Interval struct {
	From time.Time
	To   time.Time
}

// RoomUnit is a physical room as the engine sees it: identity, its room
// type, the active flag and every reservation interval that could overlap
// the requested stay.
type RoomUnit struct {
	RoomID     uint
	RoomTypeID uint
	RoomNumber string
	Active     bool
	Busy       []Interval
}

// InventorySnapshot is the flat, immutable inventory of one hotel assembled
// once per engine call: room types, physical rooms and the hotel's active
// discount, if any. It decouples the pure algorithms from the data layer.
type InventorySnapshot struct {
	HotelID   uint
	RoomTypes []models.RoomType
	Rooms     []RoomUnit
	Discount  *models.Discount
}

// RoomTypeByID returns the snapshot's room type with the given id.
func (s *InventorySnapshot) RoomTypeByID(id uint) (models.RoomType, bool) {
	for _, rt := range s.RoomTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return models.RoomType{}, false
}

// TypeAvailable reports whether at least one room of the given type is
// available for the stay. Callers with no specific party use this existence
// check instead of the full solver.
func (s *InventorySnapshot) TypeAvailable(roomTypeID uint, stay Stay) bool {
	for _, room := range s.Rooms {
		if room.RoomTypeID == roomTypeID && RoomAvailable(room, stay) {
			return true
		}
	}
	return false
}
