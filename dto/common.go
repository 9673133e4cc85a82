package dto

import "time"

// Occupancy is one requested party composition, one room each.
type Occupancy struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// SearchFilters is the remembered search state of one user, merged across
// requests so a follow-up search keeps earlier criteria.
type SearchFilters struct {
	Name     string     `json:"name,omitempty"`
	Province string     `json:"province,omitempty"`
	District string     `json:"district,omitempty"`
	PriceMin *int64     `json:"priceMin,omitempty"`
	PriceMax *int64     `json:"priceMax,omitempty"`
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}
