// Package engine implements the room availability and assignment core: an
// interval-based availability check, a deterministic greedy room assignment
// solver and the pricing calculation shared by hotel search, hotel detail and
// booking.
//
// The pure functions in this package operate only on an InventorySnapshot
// already loaded into memory; they perform no I/O and are safe for concurrent
// use. An assignment returned here is a consistent-at-read-time candidate,
// not a reservation; the booking store re-validates inside its transaction.
package engine

import "time"

// Stay is a half-open date range [CheckIn, CheckOut).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStay validates that checkout is strictly after check-in.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Nights is the stay length in whole days.
func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Overlaps reports whether the stay intersects the half-open range
// [from, to). Equal boundaries do not overlap, so back-to-back stays with
// same-day turnover are allowed.
func (s Stay) Overlaps(from, to time.Time) bool {
	return from.Before(s.CheckOut) && to.After(s.CheckIn)
}
