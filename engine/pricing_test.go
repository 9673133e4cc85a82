package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/models"
)

func activeDiscount(percent int) *models.Discount {
	return &models.Discount{ID: 1, HotelID: 1, Percent: percent, Status: models.DiscountStatusActive}
}

func TestDiscountedPrice(t *testing.T) {
	assert.Equal(t, int64(9000), DiscountedPrice(10000, activeDiscount(10)))
	assert.Equal(t, int64(5000), DiscountedPrice(10000, activeDiscount(50)))
	assert.Equal(t, int64(0), DiscountedPrice(10000, activeDiscount(100)))

	// Nil or inactive discounts leave the price untouched.
	assert.Equal(t, int64(10000), DiscountedPrice(10000, nil))
	inactive := &models.Discount{Percent: 10, Status: models.DiscountStatusInactive}
	assert.Equal(t, int64(10000), DiscountedPrice(10000, inactive))
}

func TestPriceAssignmentExactMatchScenario(t *testing.T) {
	// One room at 100.00/night, 2 nights, active 10% discount:
	// total 200.00 original, 180.00 discounted.
	rt := models.RoomType{ID: 10, Name: "Deluxe", NightlyPrice: 10000, MaxAdults: 2, MaxChildren: 1}
	assignment := Assignment{{
		RequestIndex: 0,
		Request:      OccupancyRequest{Adults: 2},
		Room:         RoomUnit{RoomID: 1, RoomTypeID: 10, Active: true},
		RoomType:     rt,
	}}

	pricing := PriceAssignment(assignment, activeDiscount(10), 2)
	assert.Equal(t, []int64{10000}, pricing.PerRoomOriginal)
	assert.Equal(t, []int64{9000}, pricing.PerRoomDiscounted)
	assert.Equal(t, int64(10000), pricing.NightlyOriginal)
	assert.Equal(t, int64(9000), pricing.NightlyDiscounted)
	assert.Equal(t, int64(20000), pricing.TotalOriginal)
	assert.Equal(t, int64(18000), pricing.TotalDiscounted)
}

func TestPriceAssignmentNoDiscountEquality(t *testing.T) {
	assignment := Assignment{
		{RoomType: models.RoomType{NightlyPrice: 8000}},
		{RoomType: models.RoomType{NightlyPrice: 12000}},
	}
	pricing := PriceAssignment(assignment, nil, 3)
	assert.Equal(t, pricing.TotalOriginal, pricing.TotalDiscounted)
	assert.Equal(t, int64(60000), pricing.TotalOriginal)
}

func TestPriceAssignmentMonotonicity(t *testing.T) {
	assignment := Assignment{
		{RoomType: models.RoomType{NightlyPrice: 8000}},
		{RoomType: models.RoomType{NightlyPrice: 12000}},
		{RoomType: models.RoomType{NightlyPrice: 9900}},
	}
	for _, percent := range []int{1, 5, 10, 25, 33, 50, 99, 100} {
		pricing := PriceAssignment(assignment, activeDiscount(percent), 4)
		assert.LessOrEqual(t, pricing.TotalDiscounted, pricing.TotalOriginal, "percent %d", percent)
		assert.Equal(t, pricing.NightlyOriginal*int64(100-percent)/100*4, pricing.TotalDiscounted, "percent %d", percent)
	}
}

func TestMinNightlyPrice(t *testing.T) {
	stay := mustStay(t, 0, 2)

	t.Run("cheapest available type wins", func(t *testing.T) {
		snap := twoTierSnapshot()
		snap.Discount = activeDiscount(10)
		orig, disc, ok := MinNightlyPrice(snap, stay)
		require.True(t, ok)
		assert.Equal(t, int64(8000), orig)
		assert.Equal(t, int64(7200), disc)
	})

	t.Run("occupied cheap type falls back to next", func(t *testing.T) {
		snap := twoTierSnapshot()
		for i := range snap.Rooms {
			if snap.Rooms[i].RoomTypeID == 10 {
				snap.Rooms[i].Busy = []Interval{{From: day(0), To: day(3)}}
			}
		}
		orig, _, ok := MinNightlyPrice(snap, stay)
		require.True(t, ok)
		assert.Equal(t, int64(12000), orig)
	})

	t.Run("nothing available", func(t *testing.T) {
		snap := twoTierSnapshot()
		for i := range snap.Rooms {
			snap.Rooms[i].Active = false
		}
		_, _, ok := MinNightlyPrice(snap, stay)
		assert.False(t, ok)
	})
}
