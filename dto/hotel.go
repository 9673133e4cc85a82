package dto

// HotelResponse is the list/detail projection of a hotel.
type HotelResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Province         string `json:"province"`
	District         string `json:"district"`
	ShortDescription string `json:"shortDescription"`
	Status           int    `json:"status"`
}

// SearchHotelsRequest carries the search-mode query parameters: a date
// range, one party definition and optional filters. Occupancies encodes one
// requested room per item as "adults-children", comma separated, with the
// children part optional ("2-1,3" is two rooms).
type SearchHotelsRequest struct {
	CheckInDate  string `form:"checkInDate" binding:"required"`
	CheckOutDate string `form:"checkOutDate" binding:"required"`
	Occupancies  string `form:"occupancies" binding:"required"`
	Name         string `form:"name"`
	Province     string `form:"province"`
	PriceMin     *int64 `form:"priceMin"`
	PriceMax     *int64 `form:"priceMax"`
}

// RoomAssignment pairs one occupancy request with its assigned room.
type RoomAssignment struct {
	RequestIndex int    `json:"requestIndex"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	RoomID       uint   `json:"roomId"`
	RoomNumber   string `json:"roomNumber"`
	RoomTypeID   uint   `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
}

// PriceBreakdown is the transport shape of an engine pricing result.
type PriceBreakdown struct {
	PerRoomOriginal   []int64 `json:"perRoomOriginal"`
	PerRoomDiscounted []int64 `json:"perRoomDiscounted"`
	NightlyOriginal   int64   `json:"nightlyOriginal"`
	NightlyDiscounted int64   `json:"nightlyDiscounted"`
	TotalOriginal     int64   `json:"totalOriginal"`
	TotalDiscounted   int64   `json:"totalDiscounted"`
	Nights            int     `json:"nights"`
}

// SearchHotelResult is one feasible hotel in the search response.
type SearchHotelResult struct {
	Hotel       HotelResponse    `json:"hotel"`
	Assignments []RoomAssignment `json:"assignments"`
	Pricing     PriceBreakdown   `json:"pricing"`
	Similarity  float64          `json:"-"`
}

// RoomTypeAvailabilityResponse is the detail-mode view of one room type.
type RoomTypeAvailabilityResponse struct {
	RoomTypeID        uint   `json:"roomTypeId"`
	Name              string `json:"name"`
	NumBed            int    `json:"numBed"`
	MaxAdults         int    `json:"maxAdults"`
	MaxChildren       int    `json:"maxChildren"`
	Available         bool   `json:"available"`
	NightlyOriginal   int64  `json:"nightlyOriginal"`
	NightlyDiscounted int64  `json:"nightlyDiscounted"`
}

// HotelAvailabilityResponse is the hotel-detail call site's projection:
// type-level availability plus the cheapest available nightly price.
type HotelAvailabilityResponse struct {
	HotelID         uint                           `json:"hotelId"`
	HasAvailability bool                           `json:"hasAvailability"`
	MinNightlyOrig  int64                          `json:"minNightlyOriginal"`
	MinNightlyDisc  int64                          `json:"minNightlyDiscounted"`
	RoomTypes       []RoomTypeAvailabilityResponse `json:"roomTypes"`
}
