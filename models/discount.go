package models

import (
	"fmt"
	"time"
)

// Discount status constants
const (
	DiscountStatusInactive = 0
	DiscountStatusActive   = 1
)

// Discount belongs to one hotel. Percent is the reduction in whole percent
// (1..100); when the discount is active every price of the hotel is
// multiplied by (100 - Percent) / 100.
type Discount struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Name      string    `json:"name"`
	Percent   int       `json:"percent"`
	FromDate  string    `json:"fromDate"`
	ToDate    string    `json:"toDate"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *Discount) ValidateStatus() error {
	if d.Status < 0 || d.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", d.Status)
	}
	return nil
}

func (d *Discount) ValidatePercent() error {
	if d.Percent < 1 || d.Percent > 100 {
		return fmt.Errorf("invalid percent: %d, must be between 1 and 100", d.Percent)
	}
	return nil
}

func (d *Discount) IsActive() bool {
	return d.Status == DiscountStatusActive
}

// Discount dates travel in the same wire format the API uses.
const discountDateLayout = "02/01/2006"

// ActiveOn reports whether the discount is switched on and its date window
// covers the given day. A discount with an unparseable window never applies.
func (d *Discount) ActiveOn(day time.Time) bool {
	if !d.IsActive() {
		return false
	}
	from, err := time.Parse(discountDateLayout, d.FromDate)
	if err != nil {
		return false
	}
	to, err := time.Parse(discountDateLayout, d.ToDate)
	if err != nil {
		return false
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(from) && !day.After(to)
}
