package engine

import (
	"context"

	"stayhub/models"
)

// InventoryLoader loads, for one hotel, every room type, room and existing
// reservation interval that could overlap the stay, plus the hotel's active
// discount.
type InventoryLoader interface {
	LoadInventorySnapshot(ctx context.Context, hotelID uint, stay Stay) (*InventorySnapshot, error)
}

// GuestInfo identifies who a booking is for: either a registered user or
// the guest contact fields.
type GuestInfo struct {
	UserID *uint
	Name   string
	Email  string
	Phone  string
}

// StayMetadata is everything the booking store needs to persist an
// assignment besides the assignment itself.
type StayMetadata struct {
	HotelID uint
	Stay    Stay
	Guest   GuestInfo
	Pricing PricingResult
}

// BookingStore writes an assignment and its reservation-room rows in one
// transaction. It must re-validate non-overlap in that same transaction and
// return ErrRoomConflict when a concurrent booking won the race.
type BookingStore interface {
	PersistAssignment(ctx context.Context, assignment Assignment, meta StayMetadata) (uint, error)
}

// Engine orchestrates snapshot loading, assignment and pricing for the
// three call sites. Each call is independent; the engine holds no state
// between invocations.
type Engine struct {
	loader InventoryLoader
	store  BookingStore
}

func New(loader InventoryLoader, store BookingStore) *Engine {
	return &Engine{loader: loader, store: store}
}

// HotelResult is one feasible hotel in search mode.
type HotelResult struct {
	HotelID    uint
	Assignment Assignment
	Pricing    PricingResult
	Nights     int
}

// RoomTypeAvailability is the detail-mode view of one room type.
type RoomTypeAvailability struct {
	RoomType          models.RoomType
	Available         bool
	NightlyOriginal   int64
	NightlyDiscounted int64
}

// HotelDetail is the detail-mode result: type-level availability only, no
// concrete assignment.
type HotelDetail struct {
	HotelID         uint
	RoomTypes       []RoomTypeAvailability
	MinNightlyOrig  int64
	MinNightlyDisc  int64
	HasAvailability bool
}

// BookingResult is a persisted booking: the reservation id together with
// the assignment and pricing it was created from.
type BookingResult struct {
	ReservationID uint
	Assignment    Assignment
	Pricing       PricingResult
	Nights        int
}

// Search attempts a full assignment for one party across many hotels.
// Hotels where the party cannot be fully placed are excluded; there is no
// closest-match fallback.
func (e *Engine) Search(ctx context.Context, hotelIDs []uint, requests []OccupancyRequest, stay Stay) ([]HotelResult, error) {
	if _, err := NewStay(stay.CheckIn, stay.CheckOut); err != nil {
		return nil, err
	}
	results := make([]HotelResult, 0, len(hotelIDs))
	for _, hotelID := range hotelIDs {
		snap, err := e.loader.LoadInventorySnapshot(ctx, hotelID, stay)
		if err != nil {
			return nil, err
		}
		assignment, err := AssignRooms(snap, requests, stay)
		if err != nil {
			if IsInfeasible(err) {
				continue
			}
			return nil, err
		}
		results = append(results, HotelResult{
			HotelID:    hotelID,
			Assignment: assignment,
			Pricing:    PriceAssignment(assignment, snap.Discount, stay.Nights()),
			Nights:     stay.Nights(),
		})
	}
	return results, nil
}

// Detail answers "what room types have any availability, and from what
// price" for one hotel. No party is given, so the full solver never runs;
// each type gets the cheaper existence check.
func (e *Engine) Detail(ctx context.Context, hotelID uint, stay Stay) (*HotelDetail, error) {
	if _, err := NewStay(stay.CheckIn, stay.CheckOut); err != nil {
		return nil, err
	}
	snap, err := e.loader.LoadInventorySnapshot(ctx, hotelID, stay)
	if err != nil {
		return nil, err
	}
	detail := &HotelDetail{
		HotelID:   hotelID,
		RoomTypes: make([]RoomTypeAvailability, 0, len(snap.RoomTypes)),
	}
	for _, rt := range snap.RoomTypes {
		available := snap.TypeAvailable(rt.ID, stay)
		detail.RoomTypes = append(detail.RoomTypes, RoomTypeAvailability{
			RoomType:          rt,
			Available:         available,
			NightlyOriginal:   rt.NightlyPrice,
			NightlyDiscounted: DiscountedPrice(rt.NightlyPrice, snap.Discount),
		})
	}
	if orig, disc, ok := MinNightlyPrice(snap, stay); ok {
		detail.MinNightlyOrig = orig
		detail.MinNightlyDisc = disc
		detail.HasAvailability = true
	}
	return detail, nil
}

// Book runs the search-mode path for one hotel and, on success, hands the
// assignment to the booking store inside one transaction. An infeasible
// party or a concurrency conflict come back as typed errors for the caller
// to translate.
func (e *Engine) Book(ctx context.Context, hotelID uint, requests []OccupancyRequest, stay Stay, guest GuestInfo) (*BookingResult, error) {
	if _, err := NewStay(stay.CheckIn, stay.CheckOut); err != nil {
		return nil, err
	}
	snap, err := e.loader.LoadInventorySnapshot(ctx, hotelID, stay)
	if err != nil {
		return nil, err
	}
	assignment, err := AssignRooms(snap, requests, stay)
	if err != nil {
		return nil, err
	}
	pricing := PriceAssignment(assignment, snap.Discount, stay.Nights())
	reservationID, err := e.store.PersistAssignment(ctx, assignment, StayMetadata{
		HotelID: hotelID,
		Stay:    stay,
		Guest:   guest,
		Pricing: pricing,
	})
	if err != nil {
		return nil, err
	}
	return &BookingResult{
		ReservationID: reservationID,
		Assignment:    assignment,
		Pricing:       pricing,
		Nights:        stay.Nights(),
	}, nil
}
