package controllers

import (
	"stayhub/dto"
	"stayhub/engine"
)

func toAssignmentResponses(assignment engine.Assignment) []dto.RoomAssignment {
	out := make([]dto.RoomAssignment, len(assignment))
	for i, pairing := range assignment {
		out[i] = dto.RoomAssignment{
			RequestIndex: pairing.RequestIndex,
			Adults:       pairing.Request.Adults,
			Children:     pairing.Request.Children,
			RoomID:       pairing.Room.RoomID,
			RoomNumber:   pairing.Room.RoomNumber,
			RoomTypeID:   pairing.RoomType.ID,
			RoomTypeName: pairing.RoomType.Name,
		}
	}
	return out
}

func toPriceBreakdown(pricing engine.PricingResult, nights int) dto.PriceBreakdown {
	return dto.PriceBreakdown{
		PerRoomOriginal:   pricing.PerRoomOriginal,
		PerRoomDiscounted: pricing.PerRoomDiscounted,
		NightlyOriginal:   pricing.NightlyOriginal,
		NightlyDiscounted: pricing.NightlyDiscounted,
		TotalOriginal:     pricing.TotalOriginal,
		TotalDiscounted:   pricing.TotalDiscounted,
		Nights:            nights,
	}
}
