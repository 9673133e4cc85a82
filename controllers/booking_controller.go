package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/engine"
	"stayhub/models"
	"stayhub/response"
	"stayhub/utils"
	"stayhub/validator"
)

type BookingController struct {
	db    *gorm.DB
	eng   *engine.Engine
	store *engine.GormBookingStore
}

func NewBookingController(db *gorm.DB, eng *engine.Engine, store *engine.GormBookingStore) *BookingController {
	return &BookingController{db: db, eng: eng, store: store}
}

// CreateBooking is the booking call site. The engine computes a candidate
// assignment against the current snapshot; the store re-validates while
// writing, so a lost race comes back as a 409 and the client retries from a
// fresh search.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
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
	if err := validator.ValidateOccupancies(request.Occupancies); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := bc.db.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	guest, actor, err := bc.resolveActor(c, &request)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	requests := make([]engine.OccupancyRequest, len(request.Occupancies))
	for i, occ := range request.Occupancies {
		requests[i] = engine.OccupancyRequest{Adults: occ.Adults, Children: occ.Children}
	}

	result, err := bc.eng.Book(c.Request.Context(), request.HotelID, requests, stay, guest)
	if err != nil {
		bc.renderBookingError(c, err)
		return
	}

	utils.LogInfo("Reservation %d created for hotel %d (%d rooms, %d nights)",
		result.ReservationID, request.HotelID, len(result.Assignment), result.Nights)

	response.Success(c, dto.BookingResponse{
		ID:           result.ReservationID,
		Hotel:        toHotelResponse(hotel),
		Actor:        actor,
		CheckInDate:  request.CheckInDate,
		CheckOutDate: request.CheckOutDate,
		Status:       models.ReservationStatusConfirmed,
		Assignments:  toAssignmentResponses(result.Assignment),
		Pricing:      toPriceBreakdown(result.Pricing, result.Nights),
		CreatedAt:    time.Now(),
	})
}

// resolveActor decides who the booking belongs to: the authenticated user,
// a registered user matched by guest phone, or a pure guest.
func (bc *BookingController) resolveActor(c *gin.Context, request *dto.BookingRequest) (engine.GuestInfo, dto.ActorResponse, error) {
	if ctxUserID, exists := c.Get("userID"); exists {
		request.UserID = ctxUserID.(uint)
	}

	if request.UserID != 0 {
		var user models.User
		if err := bc.db.First(&user, request.UserID).Error; err != nil {
			return engine.GuestInfo{}, dto.ActorResponse{}, fmt.Errorf("user not found")
		}
		userID := user.ID
		return engine.GuestInfo{UserID: &userID, Name: user.Name, Email: user.Email, Phone: user.PhoneNumber},
			dto.ActorResponse{Name: user.Name, Email: user.Email, PhoneNumber: user.PhoneNumber}, nil
	}

	if err := validator.ValidateGuestContact(request.GuestName, request.GuestEmail, request.GuestPhone); err != nil {
		return engine.GuestInfo{}, dto.ActorResponse{}, err
	}

	// A guest phone belonging to an account attaches the booking to it.
	var user models.User
	if err := bc.db.Where("phone_number = ?", request.GuestPhone).First(&user).Error; err == nil {
		userID := user.ID
		return engine.GuestInfo{UserID: &userID, Name: user.Name, Email: user.Email, Phone: user.PhoneNumber},
			dto.ActorResponse{Name: user.Name, Email: user.Email, PhoneNumber: user.PhoneNumber}, nil
	}

	return engine.GuestInfo{Name: request.GuestName, Email: request.GuestEmail, Phone: request.GuestPhone},
		dto.ActorResponse{Name: request.GuestName, Email: request.GuestEmail, PhoneNumber: request.GuestPhone}, nil
}

func (bc *BookingController) renderBookingError(c *gin.Context, err error) {
	var infeasible *engine.InfeasibleError
	switch {
	case errors.As(err, &infeasible):
		response.BadRequest(c, fmt.Sprintf("No available room fits room request %d for these dates", infeasible.RequestIndex+1))
	case errors.Is(err, engine.ErrInvalidStay):
		response.BadRequest(c, "Check-out date must be after check-in date")
	case errors.Is(err, engine.ErrRoomConflict):
		response.Conflict(c, "This room was just booked, please search again")
	default:
		utils.LogError("Booking failed: %v", err)
		response.ServerError(c)
	}
}

// GetBookings lists the authenticated user's reservations.
func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := bc.db.Model(&models.Reservation{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := bc.db.Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	items := make([]dto.BookingListItem, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, dto.BookingListItem{
			ID:              r.ID,
			HotelID:         r.HotelID,
			HotelName:       r.Hotel.Name,
			CheckInDate:     r.CheckInDate.Format(validator.DateLayout),
			CheckOutDate:    r.CheckOutDate.Format(validator.DateLayout),
			Status:          r.Status,
			TotalOriginal:   r.TotalOriginal,
			TotalDiscounted: r.TotalDiscounted,
			CreatedAt:       r.CreatedAt,
		})
	}
	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// CancelBooking cancels a reservation owned by the caller and frees its
// rooms for the stay window. Reassigning rooms on an existing booking is
// not supported; clients cancel and rebook.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid reservation id")
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}
	userRole, _ := c.Get("userRole")

	var reservation models.Reservation
	if err := bc.db.First(&reservation, uint(reservationID)).Error; err != nil {
		response.NotFound(c)
		return
	}
	if userRole != models.RoleAdmin && (reservation.UserID == nil || *reservation.UserID != userID.(uint)) {
		response.Forbidden(c)
		return
	}
	if reservation.Status == models.ReservationStatusCancelled {
		response.BadRequest(c, "Reservation already cancelled")
		return
	}

	if err := bc.store.CancelReservation(c.Request.Context(), reservation.ID); err != nil {
		utils.LogError("Failed to cancel reservation %d: %v", reservation.ID, err)
		response.ServerError(c)
		return
	}

	utils.LogInfo("Reservation %d cancelled", reservation.ID)
	response.Success(c, gin.H{"id": reservation.ID, "status": models.ReservationStatusCancelled})
}
