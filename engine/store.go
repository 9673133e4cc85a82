package engine

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub/models"
)

// GormBookingStore owns the authoritative at-most-one-booking-per-room-per-
// night guarantee. The assignment handed to PersistAssignment was computed
// against a snapshot that may already be stale, so the store locks the
// assigned room rows and re-runs the overlap check inside the same
// transaction that writes the reservation.
type GormBookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) PersistAssignment(ctx context.Context, assignment Assignment, meta StayMetadata) (uint, error) {
	roomIDs := assignment.RoomIDs()
	var reservationID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize racing bookings on the same physical rooms.
		var locked []models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", roomIDs).Find(&locked).Error; err != nil {
			return err
		}
		if len(locked) != len(roomIDs) {
			return gorm.ErrRecordNotFound
		}

		var clashes int64
		if err := tx.Model(&models.RoomStatus{}).
			Where("room_id IN ? AND status = ? AND from_date < ? AND to_date > ?",
				roomIDs, models.RoomStatusOccupied, meta.Stay.CheckOut, meta.Stay.CheckIn).
			Count(&clashes).Error; err != nil {
			return err
		}
		if clashes > 0 {
			return ErrRoomConflict
		}

		reservation := models.Reservation{
			UserID:            meta.Guest.UserID,
			HotelID:           meta.HotelID,
			CheckInDate:       meta.Stay.CheckIn,
			CheckOutDate:      meta.Stay.CheckOut,
			Status:            models.ReservationStatusConfirmed,
			GuestName:         meta.Guest.Name,
			GuestEmail:        meta.Guest.Email,
			GuestPhone:        meta.Guest.Phone,
			NightlyOriginal:   meta.Pricing.NightlyOriginal,
			NightlyDiscounted: meta.Pricing.NightlyDiscounted,
			TotalOriginal:     meta.Pricing.TotalOriginal,
			TotalDiscounted:   meta.Pricing.TotalDiscounted,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}

		rooms := make([]models.Room, len(roomIDs))
		for i, roomID := range roomIDs {
			rooms[i] = models.Room{ID: roomID}
		}
		if err := tx.Model(&reservation).Association("Rooms").Append(&rooms); err != nil {
			return err
		}

		for _, roomID := range roomIDs {
			status := models.RoomStatus{
				RoomID:        roomID,
				ReservationID: reservation.ID,
				Status:        models.RoomStatusOccupied,
				FromDate:      meta.Stay.CheckIn,
				ToDate:        meta.Stay.CheckOut,
			}
			if err := tx.Create(&status).Error; err != nil {
				return err
			}
		}

		reservationID = reservation.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reservationID, nil
}

// CancelReservation marks a reservation cancelled and frees its room status
// rows in the same transaction, so the nights become bookable again.
func (s *GormBookingStore) CancelReservation(ctx context.Context, reservationID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			return err
		}
		reservation.Status = models.ReservationStatusCancelled
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		return tx.Where("reservation_id = ?", reservationID).
			Delete(&models.RoomStatus{}).Error
	})
}
