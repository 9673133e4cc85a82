package engine

import (
	"sort"

	"stayhub/models"
)

// OccupancyRequest is one party's adult/child counts needing exactly one
// physical room.
type OccupancyRequest struct {
	Adults   int
	Children int
}

func (r OccupancyRequest) PartySize() int {
	return r.Adults + r.Children
}

// Pairing matches one occupancy request to one physical room.
type Pairing struct {
	RequestIndex int
	Request      OccupancyRequest
	Room         RoomUnit
	RoomType     models.RoomType
}

// Assignment maps every occupancy request to a distinct physical room, in
// the original request order.
type Assignment []Pairing

// RoomIDs lists the assigned room ids in request order.
func (a Assignment) RoomIDs() []uint {
	ids := make([]uint, len(a))
	for i, p := range a {
		ids[i] = p.Room.RoomID
	}
	return ids
}

type candidate struct {
	room     RoomUnit
	roomType models.RoomType
}

// AssignRooms matches every occupancy request to a distinct available room
// of sufficient capacity, or fails as a whole.
//
// The allocation is greedy and deterministic: candidates are scanned
// cheapest-first (nightly price, then room type name, then room number) and
// requests are served largest-party-first (total size desc, then adults
// desc) so the most constrained parties pick before the pool thins out. The
// first request that fits no remaining candidate aborts the whole call with
// an InfeasibleError carrying that request's original index; there is no
// partial result and no backtracking, so a feasible-but-awkward instance can
// still come back infeasible. That trade-off is intentional and pinned by
// tests; do not "improve" the ordering without treating it as a behavior
// change.
func AssignRooms(snap *InventorySnapshot, requests []OccupancyRequest, stay Stay) (Assignment, error) {
	if _, err := NewStay(stay.CheckIn, stay.CheckOut); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return Assignment{}, nil
	}

	candidates := make([]candidate, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		if !RoomAvailable(room, stay) {
			continue
		}
		rt, ok := snap.RoomTypeByID(room.RoomTypeID)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{room: room, roomType: rt})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.roomType.NightlyPrice != b.roomType.NightlyPrice {
			return a.roomType.NightlyPrice < b.roomType.NightlyPrice
		}
		if a.roomType.Name != b.roomType.Name {
			return a.roomType.Name < b.roomType.Name
		}
		return a.room.RoomNumber < b.room.RoomNumber
	})

	order := make([]int, len(requests))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := requests[order[i]], requests[order[j]]
		if a.PartySize() != b.PartySize() {
			return a.PartySize() > b.PartySize()
		}
		return a.Adults > b.Adults
	})

	assignment := make(Assignment, len(requests))
	for _, reqIdx := range order {
		req := requests[reqIdx]
		found := -1
		for ci, cand := range candidates {
			if cand.roomType.MaxAdults >= req.Adults && cand.roomType.MaxChildren >= req.Children {
				found = ci
				break
			}
		}
		if found < 0 {
			return nil, &InfeasibleError{RequestIndex: reqIdx}
		}
		cand := candidates[found]
		candidates = append(candidates[:found], candidates[found+1:]...)
		assignment[reqIdx] = Pairing{
			RequestIndex: reqIdx,
			Request:      req,
			Room:         cand.room,
			RoomType:     cand.roomType,
		}
	}
	return assignment, nil
}
