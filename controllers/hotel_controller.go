package controllers

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/engine"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/utils"
	"stayhub/validator"
)

const hotelListCacheKey = "hotels:all"

type HotelController struct {
	db  *gorm.DB
	rdb *redis.Client
	eng *engine.Engine
}

func NewHotelController(db *gorm.DB, rdb *redis.Client, eng *engine.Engine) *HotelController {
	return &HotelController{db: db, rdb: rdb, eng: eng}
}

func toHotelResponse(h models.Hotel) dto.HotelResponse {
	return dto.HotelResponse{
		ID:               h.ID,
		Name:             h.Name,
		Address:          h.Address,
		Province:         h.Province,
		District:         h.District,
		ShortDescription: h.ShortDescription,
		Status:           h.Status,
	}
}

// CreateHotel registers a hotel owned by the authenticated admin.
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if hotel.Name == "" {
		response.BadRequest(c, "Hotel name must not be empty")
		return
	}
	if err := hotel.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if userID, exists := c.Get("userID"); exists {
		hotel.UserID = userID.(uint)
	}

	if err := hc.db.Create(&hotel).Error; err != nil {
		utils.LogError("Failed to create hotel %s: %v", hotel.Name, err)
		response.ServerError(c)
		return
	}

	services.DeleteFromRedis(c.Request.Context(), hc.rdb, hotelListCacheKey)
	response.Success(c, toHotelResponse(hotel))
}

// UpdateHotel updates hotel metadata.
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	var input models.Hotel
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := hc.db.First(&hotel, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	hotel.Name = input.Name
	hotel.Address = input.Address
	hotel.Province = input.Province
	hotel.District = input.District
	hotel.ShortDescription = input.ShortDescription
	hotel.Description = input.Description
	hotel.Status = input.Status
	if err := hotel.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := hc.db.Save(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.DeleteFromRedis(c.Request.Context(), hc.rdb, hotelListCacheKey)
	response.Success(c, toHotelResponse(hotel))
}

// GetHotels lists active hotels, backed by the Redis list cache.
func (hc *HotelController) GetHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var hotels []models.Hotel
	if err := services.GetFromRedis(c.Request.Context(), hc.rdb, hotelListCacheKey, &hotels); err != nil || len(hotels) == 0 {
		if err := hc.db.Where("status = ?", models.HotelStatusActive).Order("id").Find(&hotels).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(c.Request.Context(), hc.rdb, hotelListCacheKey, hotels, 10*time.Minute); err != nil {
			utils.LogError("Failed to cache hotel list: %v", err)
		}
	}

	total := len(hotels)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.HotelResponse, 0, end-start)
	for _, hotel := range hotels[start:end] {
		results = append(results, toHotelResponse(hotel))
	}
	response.SuccessWithPagination(c, results, page, limit, total)
}

// SearchHotels is the search call site: one party, a date range, many
// candidate hotels. Hotels that cannot host the full party are excluded.
func (hc *HotelController) SearchHotels(c *gin.Context) {
	var request dto.SearchHotelsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := time.Parse(validator.DateLayout, request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return
	}
	checkOut, err := time.Parse(validator.DateLayout, request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return
	}
	stay, err := engine.NewStay(checkIn, checkOut)
	if err != nil {
		response.BadRequest(c, "Check-out date must be after check-in date")
		return
	}

	occupancies, err := validator.ParseOccupancies(request.Occupancies)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateOccupancies(occupancies); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	requests := make([]engine.OccupancyRequest, len(occupancies))
	for i, occ := range occupancies {
		requests[i] = engine.OccupancyRequest{Adults: occ.Adults, Children: occ.Children}
	}

	hc.rememberFilters(c, &request, checkIn, checkOut)

	tx := hc.db.Where("status = ?", models.HotelStatusActive)
	if request.Province != "" {
		tx = tx.Where("province = ?", request.Province)
	}
	var hotels []models.Hotel
	if err := tx.Order("id").Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	hotelByID := make(map[uint]models.Hotel, len(hotels))
	hotelIDs := make([]uint, len(hotels))
	for i, hotel := range hotels {
		hotelIDs[i] = hotel.ID
		hotelByID[hotel.ID] = hotel
	}

	hotelResults, err := hc.eng.Search(c.Request.Context(), hotelIDs, requests, stay)
	if err != nil {
		utils.LogError("Hotel search failed: %v", err)
		response.ServerError(c)
		return
	}

	results := make([]dto.SearchHotelResult, 0, len(hotelResults))
	for _, hr := range hotelResults {
		hotel := hotelByID[hr.HotelID]
		nightly := hr.Pricing.NightlyDiscounted
		if request.PriceMin != nil && nightly < *request.PriceMin {
			continue
		}
		if request.PriceMax != nil && nightly > *request.PriceMax {
			continue
		}
		results = append(results, dto.SearchHotelResult{
			Hotel:       toHotelResponse(hotel),
			Assignments: toAssignmentResponses(hr.Assignment),
			Pricing:     toPriceBreakdown(hr.Pricing, hr.Nights),
		})
	}

	if request.Name != "" {
		results = rankByName(request.Name, results)
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Pricing.TotalDiscounted < results[j].Pricing.TotalDiscounted
		})
	}

	response.Success(c, results)
}

// rankByName keeps hotels that plausibly match the query and orders them
// best match first, cheaper first within equal scores.
func rankByName(query string, results []dto.SearchHotelResult) []dto.SearchHotelResult {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Hotel.Name
	}
	matcher := services.NewNameMatcher(names)
	closest := matcher.Closest(services.NormalizeInput(query))

	kept := make([]dto.SearchHotelResult, 0, len(results))
	for _, r := range results {
		score := services.NameScore(query, r.Hotel.Name)
		// The n-gram matcher can surface a long name whose edit
		// distance to a short query falls under the floor. Keep the
		// closest candidate regardless so a terse query still finds
		// its hotel.
		if score < 0.4 && services.NormalizeInput(r.Hotel.Name) != closest {
			continue
		}
		r.Similarity = score
		kept = append(kept, r)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Similarity != kept[j].Similarity {
			return kept[i].Similarity > kept[j].Similarity
		}
		return kept[i].Pricing.TotalDiscounted < kept[j].Pricing.TotalDiscounted
	})
	return kept
}

// GetHotelAvailability is the detail call site: type-level availability and
// minimum pricing, no party, no solver.
func (hc *HotelController) GetHotelAvailability(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var hotel models.Hotel
	if err := hc.db.First(&hotel, uint(hotelID)).Error; err != nil {
		response.NotFound(c)
		return
	}

	checkIn, err := time.Parse(validator.DateLayout, c.Query("checkInDate"))
	if err != nil {
		response.BadRequest(c, "Invalid check-in date")
		return
	}
	checkOut, err := time.Parse(validator.DateLayout, c.Query("checkOutDate"))
	if err != nil {
		response.BadRequest(c, "Invalid check-out date")
		return
	}
	stay, err := engine.NewStay(checkIn, checkOut)
	if err != nil {
		response.BadRequest(c, "Check-out date must be after check-in date")
		return
	}

	detail, err := hc.eng.Detail(c.Request.Context(), uint(hotelID), stay)
	if err != nil {
		utils.LogError("Availability lookup failed for hotel %d: %v", hotelID, err)
		response.ServerError(c)
		return
	}

	result := dto.HotelAvailabilityResponse{
		HotelID:         detail.HotelID,
		HasAvailability: detail.HasAvailability,
		MinNightlyOrig:  detail.MinNightlyOrig,
		MinNightlyDisc:  detail.MinNightlyDisc,
		RoomTypes:       make([]dto.RoomTypeAvailabilityResponse, 0, len(detail.RoomTypes)),
	}
	for _, rta := range detail.RoomTypes {
		result.RoomTypes = append(result.RoomTypes, dto.RoomTypeAvailabilityResponse{
			RoomTypeID:        rta.RoomType.ID,
			Name:              rta.RoomType.Name,
			NumBed:            rta.RoomType.NumBed,
			MaxAdults:         rta.RoomType.MaxAdults,
			MaxChildren:       rta.RoomType.MaxChildren,
			Available:         rta.Available,
			NightlyOriginal:   rta.NightlyOriginal,
			NightlyDiscounted: rta.NightlyDiscounted,
		})
	}

	response.Success(c, result)
}

func (hc *HotelController) rememberFilters(c *gin.Context, request *dto.SearchHotelsRequest, checkIn, checkOut time.Time) {
	key := c.ClientIP()
	if userID, exists := c.Get("userID"); exists {
		key = fmt.Sprintf("user:%d", userID.(uint))
	}

	next := &dto.SearchFilters{
		Name:     request.Name,
		Province: request.Province,
		PriceMin: request.PriceMin,
		PriceMax: request.PriceMax,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	}
	if old, err := services.GetLastFilters(c.Request.Context(), hc.rdb, key); err == nil {
		next = services.MergeFilters(old, next)
	}
	if err := services.SaveLastFilters(c.Request.Context(), hc.rdb, key, next); err != nil {
		utils.LogError("Failed to save search filters for %s: %v", key, err)
	}
}
