package dto

import "time"

// BookingRequest is the booking call site's input. Either UserID or the
// guest fields identify who the stay is for.
type BookingRequest struct {
	HotelID      uint        `json:"hotelId" binding:"required"`
	CheckInDate  string      `json:"checkInDate" binding:"required"`
	CheckOutDate string      `json:"checkOutDate" binding:"required"`
	Occupancies  []Occupancy `json:"occupancies" binding:"required"`
	UserID       uint        `json:"userId"`
	GuestName    string      `json:"guestName,omitempty"`
	GuestEmail   string      `json:"guestEmail,omitempty"`
	GuestPhone   string      `json:"guestPhone,omitempty"`
}

// ActorResponse is who the booking belongs to.
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingResponse is the persisted-booking projection returned to the
// client: the reservation plus the concrete room assignment and pricing.
type BookingResponse struct {
	ID           uint             `json:"id"`
	Hotel        HotelResponse    `json:"hotel"`
	Actor        ActorResponse    `json:"actor"`
	CheckInDate  string           `json:"checkInDate"`
	CheckOutDate string           `json:"checkOutDate"`
	Status       int              `json:"status"`
	Assignments  []RoomAssignment `json:"assignments"`
	Pricing      PriceBreakdown   `json:"pricing"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// BookingListItem is the compact list projection of a reservation.
type BookingListItem struct {
	ID              uint      `json:"id"`
	HotelID         uint      `json:"hotelId"`
	HotelName       string    `json:"hotelName"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	Status          int       `json:"status"`
	TotalOriginal   int64     `json:"totalOriginal"`
	TotalDiscounted int64     `json:"totalDiscounted"`
	CreatedAt       time.Time `json:"createdAt"`
}
