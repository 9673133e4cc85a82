package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func snapshotWith(roomTypes []models.RoomType, rooms []RoomUnit) *InventorySnapshot {
	return &InventorySnapshot{HotelID: 1, RoomTypes: roomTypes, Rooms: rooms}
}

func twoTierSnapshot() *InventorySnapshot {
	// Standard 80.00 (2 adults, 1 child), Family 120.00 (3 adults, 2 children),
	// two rooms each.
	return snapshotWith(
		[]models.RoomType{
			{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1},
			{ID: 20, Name: "Family", NightlyPrice: 12000, MaxAdults: 3, MaxChildren: 2},
		},
		[]RoomUnit{
			{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true},
			{RoomID: 2, RoomTypeID: 10, RoomNumber: "102", Active: true},
			{RoomID: 3, RoomTypeID: 20, RoomNumber: "201", Active: true},
			{RoomID: 4, RoomTypeID: 20, RoomNumber: "202", Active: true},
		},
	)
}

func TestAssignRoomsCheapestFirst(t *testing.T) {
	stay := mustStay(t, 0, 2)
	assignment, err := AssignRooms(twoTierSnapshot(), []OccupancyRequest{{Adults: 1}}, stay)
	require.NoError(t, err)
	require.Len(t, assignment, 1)
	assert.Equal(t, uint(1), assignment[0].Room.RoomID)
	assert.Equal(t, "Standard", assignment[0].RoomType.Name)
}

func TestAssignRoomsRoomNumberTieBreak(t *testing.T) {
	// Same price, same type name: the lower room number wins.
	snap := snapshotWith(
		[]models.RoomType{{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2}},
		[]RoomUnit{
			{RoomID: 5, RoomTypeID: 10, RoomNumber: "109", Active: true},
			{RoomID: 6, RoomTypeID: 10, RoomNumber: "103", Active: true},
		},
	)
	assignment, err := AssignRooms(snap, []OccupancyRequest{{Adults: 1}}, mustStay(t, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, uint(6), assignment[0].Room.RoomID)
}

func TestAssignRoomsTypeNameTieBreak(t *testing.T) {
	// Same price, different type names: lexicographically smaller name wins.
	snap := snapshotWith(
		[]models.RoomType{
			{ID: 10, Name: "Twin", NightlyPrice: 8000, MaxAdults: 2},
			{ID: 20, Name: "Double", NightlyPrice: 8000, MaxAdults: 2},
		},
		[]RoomUnit{
			{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true},
			{RoomID: 2, RoomTypeID: 20, RoomNumber: "301", Active: true},
		},
	)
	assignment, err := AssignRooms(snap, []OccupancyRequest{{Adults: 2}}, mustStay(t, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "Double", assignment[0].RoomType.Name)
}

func TestAssignRoomsLargestPartyFirst(t *testing.T) {
	// One Standard and one Family room left. Served in request order the
	// couple would take the Family room and strand the family of five;
	// largest-party-first places both.
	snap := snapshotWith(
		[]models.RoomType{
			{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1},
			{ID: 20, Name: "Family", NightlyPrice: 12000, MaxAdults: 3, MaxChildren: 2},
		},
		[]RoomUnit{
			{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true},
			{RoomID: 3, RoomTypeID: 20, RoomNumber: "201", Active: true},
		},
	)
	requests := []OccupancyRequest{
		{Adults: 2},              // index 0, party of 2
		{Adults: 3, Children: 2}, // index 1, party of 5
	}
	assignment, err := AssignRooms(snap, requests, mustStay(t, 0, 2))
	require.NoError(t, err)
	require.Len(t, assignment, 2)
	// Results come back in original request order.
	assert.Equal(t, 0, assignment[0].RequestIndex)
	assert.Equal(t, "Standard", assignment[0].RoomType.Name)
	assert.Equal(t, 1, assignment[1].RequestIndex)
	assert.Equal(t, "Family", assignment[1].RoomType.Name)
}

func TestAssignRoomsAdultsTieBreak(t *testing.T) {
	// Equal party sizes: more adults is more constrained and goes first.
	// The Family room is the cheaper candidate here; if the mixed party
	// picked before the all-adult one it would grab Family and strand it.
	snap := snapshotWith(
		[]models.RoomType{
			{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1},
			{ID: 20, Name: "Family", NightlyPrice: 7000, MaxAdults: 3, MaxChildren: 2},
		},
		[]RoomUnit{
			{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true},
			{RoomID: 2, RoomTypeID: 20, RoomNumber: "201", Active: true},
		},
	)
	requests := []OccupancyRequest{
		{Adults: 2, Children: 1}, // party of 3, fits either room
		{Adults: 3, Children: 0}, // party of 3, only fits Family
	}
	assignment, err := AssignRooms(snap, requests, mustStay(t, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "Standard", assignment[0].RoomType.Name)
	assert.Equal(t, "Family", assignment[1].RoomType.Name)
}

func TestAssignRoomsInfeasibleCapacity(t *testing.T) {
	snap := snapshotWith(
		[]models.RoomType{{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 0}},
		[]RoomUnit{{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true}},
	)
	_, err := AssignRooms(snap, []OccupancyRequest{{Adults: 2, Children: 1}}, mustStay(t, 0, 2))
	require.Error(t, err)
	var infeasible *InfeasibleError
	require.ErrorAs(t, err, &infeasible)
	assert.Equal(t, 0, infeasible.RequestIndex)
	assert.True(t, IsInfeasible(err))
}

func TestAssignRoomsInfeasibleFullyOccupied(t *testing.T) {
	// Single room reserved [day0, day2); new stay [day1, day3) overlaps.
	snap := snapshotWith(
		[]models.RoomType{{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1}},
		[]RoomUnit{{
			RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true,
			Busy: []Interval{{From: day(0), To: day(2)}},
		}},
	)
	_, err := AssignRooms(snap, []OccupancyRequest{{Adults: 2}}, mustStay(t, 1, 3))
	assert.True(t, IsInfeasible(err))
}

func TestAssignRoomsBackToBackSucceeds(t *testing.T) {
	// Existing reservation [day0, day2), new stay [day2, day4): no overlap.
	snap := snapshotWith(
		[]models.RoomType{{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1}},
		[]RoomUnit{{
			RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: true,
			Busy: []Interval{{From: day(0), To: day(2)}},
		}},
	)
	assignment, err := AssignRooms(snap, []OccupancyRequest{{Adults: 2}}, mustStay(t, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, uint(1), assignment[0].Room.RoomID)
}

func TestAssignRoomsTotalityAndDistinctRooms(t *testing.T) {
	stay := mustStay(t, 0, 3)
	requests := []OccupancyRequest{
		{Adults: 2}, {Adults: 1, Children: 1}, {Adults: 3, Children: 1}, {Adults: 2, Children: 1},
	}
	assignment, err := AssignRooms(twoTierSnapshot(), requests, stay)
	require.NoError(t, err)
	require.Len(t, assignment, len(requests))

	seen := make(map[uint]bool)
	for i, pairing := range assignment {
		assert.Equal(t, i, pairing.RequestIndex)
		assert.False(t, seen[pairing.Room.RoomID], "room %d assigned twice", pairing.Room.RoomID)
		seen[pairing.Room.RoomID] = true
		assert.LessOrEqual(t, pairing.Request.Adults, pairing.RoomType.MaxAdults)
		assert.LessOrEqual(t, pairing.Request.Children, pairing.RoomType.MaxChildren)
	}
}

func TestAssignRoomsDeterminism(t *testing.T) {
	stay := mustStay(t, 0, 2)
	requests := []OccupancyRequest{{Adults: 2}, {Adults: 1, Children: 1}, {Adults: 3}}
	first, err := AssignRooms(twoTierSnapshot(), requests, stay)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := AssignRooms(twoTierSnapshot(), requests, stay)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAssignRoomsEmptyRequestList(t *testing.T) {
	assignment, err := AssignRooms(twoTierSnapshot(), nil, mustStay(t, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, assignment)
}

func TestAssignRoomsInvalidStay(t *testing.T) {
	_, err := AssignRooms(twoTierSnapshot(), []OccupancyRequest{{Adults: 1}}, Stay{CheckIn: day(2), CheckOut: day(2)})
	assert.ErrorIs(t, err, ErrInvalidStay)
}

func TestAssignRoomsSkipsInactiveRooms(t *testing.T) {
	snap := snapshotWith(
		[]models.RoomType{{ID: 10, Name: "Standard", NightlyPrice: 8000, MaxAdults: 2, MaxChildren: 1}},
		[]RoomUnit{
			{RoomID: 1, RoomTypeID: 10, RoomNumber: "101", Active: false},
			{RoomID: 2, RoomTypeID: 10, RoomNumber: "102", Active: true},
		},
	)
	assignment, err := AssignRooms(snap, []OccupancyRequest{{Adults: 2}}, mustStay(t, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, uint(2), assignment[0].Room.RoomID)
}
