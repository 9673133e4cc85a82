package engine

import (
	"context"

	"gorm.io/gorm"

	"stayhub/models"
)

// GormInventoryLoader assembles an InventorySnapshot from Postgres. Only
// reservation intervals that could overlap the stay are pulled, so the
// in-memory overlap checks stay cheap.
type GormInventoryLoader struct {
	db *gorm.DB
}

func NewInventoryLoader(db *gorm.DB) *GormInventoryLoader {
	return &GormInventoryLoader{db: db}
}

func (l *GormInventoryLoader) LoadInventorySnapshot(ctx context.Context, hotelID uint, stay Stay) (*InventorySnapshot, error) {
	tx := l.db.WithContext(ctx)

	var roomTypes []models.RoomType
	if err := tx.Where("hotel_id = ?", hotelID).Order("id").Find(&roomTypes).Error; err != nil {
		return nil, err
	}

	snap := &InventorySnapshot{HotelID: hotelID, RoomTypes: roomTypes}
	if len(roomTypes) == 0 {
		return snap, nil
	}

	typeIDs := make([]uint, len(roomTypes))
	for i, rt := range roomTypes {
		typeIDs[i] = rt.ID
	}

	var rooms []models.Room
	if err := tx.Where("room_type_id IN ?", typeIDs).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}

	roomIDs := make([]uint, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	busy := make(map[uint][]Interval)
	if len(roomIDs) > 0 {
		var statuses []models.RoomStatus
		if err := tx.Where("room_id IN ? AND status = ? AND from_date < ? AND to_date > ?",
			roomIDs, models.RoomStatusOccupied, stay.CheckOut, stay.CheckIn).
			Find(&statuses).Error; err != nil {
			return nil, err
		}
		for _, st := range statuses {
			busy[st.RoomID] = append(busy[st.RoomID], Interval{From: st.FromDate, To: st.ToDate})
		}
	}

	snap.Rooms = make([]RoomUnit, len(rooms))
	for i, room := range rooms {
		snap.Rooms[i] = RoomUnit{
			RoomID:     room.ID,
			RoomTypeID: room.RoomTypeID,
			RoomNumber: room.RoomNumber,
			Active:     room.Active,
			Busy:       busy[room.ID],
		}
	}

	var discounts []models.Discount
	if err := tx.Where("hotel_id = ? AND status = ?", hotelID, models.DiscountStatusActive).
		Order("percent DESC").Find(&discounts).Error; err != nil {
		return nil, err
	}
	// Best percent first; a discount only applies once its window covers
	// the check-in day.
	for i := range discounts {
		if discounts[i].ActiveOn(stay.CheckIn) {
			snap.Discount = &discounts[i]
			break
		}
	}

	return snap, nil
}
