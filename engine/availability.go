package engine

// RoomAvailable reports whether a room can host the stay: the room must be
// administratively active and none of its existing reservation intervals may
// overlap the stay under half-open semantics. A reservation checking out on
// the stay's check-in day is not a conflict (same-day turnover).
func RoomAvailable(room RoomUnit, stay Stay) bool {
	if !room.Active {
		return false
	}
	for _, iv := range room.Busy {
		if stay.Overlaps(iv.From, iv.To) {
			return false
		}
	}
	return true
}

// CheckAvailability evaluates RoomAvailable for every room, in input order.
func CheckAvailability(rooms []RoomUnit, stay Stay) []bool {
	out := make([]bool, len(rooms))
	for i, room := range rooms {
		out[i] = RoomAvailable(room, stay)
	}
	return out
}
