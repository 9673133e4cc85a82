package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/utils"
	"stayhub/validator"
)

type RoomController struct {
	db *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{db: db}
}

// CreateRoomType adds a priced room category to a hotel.
func (rc *RoomController) CreateRoomType(c *gin.Context) {
	var request dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := rc.db.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType := models.RoomType{
		HotelID:      request.HotelID,
		Name:         request.Name,
		NightlyPrice: request.NightlyPrice,
		NumBed:       request.NumBed,
		MaxAdults:    request.MaxAdults,
		MaxChildren:  request.MaxChildren,
		Description:  request.Description,
	}
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := rc.db.Create(&roomType).Error; err != nil {
		utils.LogError("Failed to create room type %s: %v", roomType.Name, err)
		response.ServerError(c)
		return
	}
	response.Success(c, roomType)
}

// UpdateRoomType updates price, capacity or naming of a room type.
func (rc *RoomController) UpdateRoomType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	var roomType models.RoomType
	if err := rc.db.First(&roomType, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.RoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomType.Name = request.Name
	roomType.NightlyPrice = request.NightlyPrice
	roomType.NumBed = request.NumBed
	roomType.MaxAdults = request.MaxAdults
	roomType.MaxChildren = request.MaxChildren
	roomType.Description = request.Description
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := rc.db.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomType)
}

// GetRoomTypes lists a hotel's room types with their rooms.
func (rc *RoomController) GetRoomTypes(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var roomTypes []models.RoomType
	if err := rc.db.Preload("Rooms").Where("hotel_id = ?", uint(hotelID)).Order("id").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomTypes)
}

// CreateRoom adds a physical room to a room type.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomType models.RoomType
	if err := rc.db.First(&roomType, request.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room := models.Room{
		RoomTypeID: request.RoomTypeID,
		RoomNumber: request.RoomNumber,
		Active:     true,
	}
	if request.Active != nil {
		room.Active = *request.Active
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := rc.db.Create(&room).Error; err != nil {
		utils.LogError("Failed to create room %s: %v", room.RoomNumber, err)
		response.ServerError(c)
		return
	}
	response.Success(c, room)
}

// UpdateRoom renames a room or toggles its active flag. Disabling a room
// removes it from every future availability computation without touching
// existing reservations.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := rc.db.First(&room, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.RoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room.RoomNumber = request.RoomNumber
	if request.Active != nil {
		room.Active = *request.Active
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := rc.db.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, room)
}
