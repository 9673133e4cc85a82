package dto

// RoomTypeRequest creates or updates a room type.
type RoomTypeRequest struct {
	HotelID      uint   `json:"hotelId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	NightlyPrice int64  `json:"nightlyPrice" binding:"required"`
	NumBed       int    `json:"numBed"`
	MaxAdults    int    `json:"maxAdults" binding:"required"`
	MaxChildren  int    `json:"maxChildren"`
	Description  string `json:"description"`
}

// RoomRequest creates or updates a physical room.
type RoomRequest struct {
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	Active     *bool  `json:"active"`
}

// DiscountRequest creates a hotel discount.
type DiscountRequest struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Percent  int    `json:"percent" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Status   int    `json:"status"`
}
