package engine

import "stayhub/models"

// PricingResult carries original and discount-adjusted prices for one
// assignment, in minor currency units. Nightly values are per night across
// all assigned rooms; totals multiply by the number of nights.
type PricingResult struct {
	PerRoomOriginal   []int64 `json:"perRoomOriginal"`
	PerRoomDiscounted []int64 `json:"perRoomDiscounted"`
	NightlyOriginal   int64   `json:"nightlyOriginal"`
	NightlyDiscounted int64   `json:"nightlyDiscounted"`
	TotalOriginal     int64   `json:"totalOriginal"`
	TotalDiscounted   int64   `json:"totalDiscounted"`
}

// DiscountedPrice applies the hotel discount to a nightly price. The factor
// is (100 - percent) / 100 when a discount is present and active, else 1.
// Integer minor-unit arithmetic, no float rounding.
func DiscountedPrice(price int64, discount *models.Discount) int64 {
	if discount == nil || !discount.IsActive() {
		return price
	}
	return price * int64(100-discount.Percent) / 100
}

// PriceAssignment computes per-room and aggregate pricing for an assignment.
// The discount, when active, applies uniformly to every assigned room.
func PriceAssignment(assignment Assignment, discount *models.Discount, nights int) PricingResult {
	result := PricingResult{
		PerRoomOriginal:   make([]int64, len(assignment)),
		PerRoomDiscounted: make([]int64, len(assignment)),
	}
	for i, pairing := range assignment {
		original := pairing.RoomType.NightlyPrice
		discounted := DiscountedPrice(original, discount)
		result.PerRoomOriginal[i] = original
		result.PerRoomDiscounted[i] = discounted
		result.NightlyOriginal += original
		result.NightlyDiscounted += discounted
	}
	result.TotalOriginal = result.NightlyOriginal * int64(nights)
	result.TotalDiscounted = result.NightlyDiscounted * int64(nights)
	return result
}

// MinNightlyPrice is the pricing variant for the no-party case: the minimum
// nightly price across room types with at least one available room,
// original and discounted. ok is false when nothing is available.
func MinNightlyPrice(snap *InventorySnapshot, stay Stay) (original, discounted int64, ok bool) {
	for _, rt := range snap.RoomTypes {
		if !snap.TypeAvailable(rt.ID, stay) {
			continue
		}
		if !ok || rt.NightlyPrice < original {
			original = rt.NightlyPrice
			ok = true
		}
	}
	if ok {
		discounted = DiscountedPrice(original, snap.Discount)
	}
	return original, discounted, ok
}
