package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStay rejects a stay whose checkout is not strictly after
	// its check-in, before any solving happens.
	ErrInvalidStay = errors.New("checkout date must be after check-in date")

	// ErrRoomConflict is returned by the booking store when the
	// transactional re-check finds a room claimed by a concurrent booking
	// between snapshot read and write. The caller must retry from a fresh
	// search; the original assignment is stale.
	ErrRoomConflict = errors.New("room was booked by a concurrent reservation")
)

// InfeasibleError reports that no available room of sufficient capacity
// exists for one occupancy request. It is a normal outcome, not a fault:
// search mode excludes the hotel, booking mode surfaces the failed request
// to the user.
type InfeasibleError struct {
	RequestIndex int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no available room fits occupancy request %d", e.RequestIndex)
}

// IsInfeasible reports whether err is an assignment infeasibility.
func IsInfeasible(err error) bool {
	var ie *InfeasibleError
	return errors.As(err, &ie)
}
