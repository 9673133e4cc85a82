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

type DiscountController struct {
	db *gorm.DB
}

func NewDiscountController(db *gorm.DB) *DiscountController {
	return &DiscountController{db: db}
}

// CreateDiscount registers a percent discount for a hotel. While active it
// applies to every nightly price of the hotel.
func (dc *DiscountController) CreateDiscount(c *gin.Context) {
	var request dto.DiscountRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hotel models.Hotel
	if err := dc.db.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	discount := models.Discount{
		HotelID:  request.HotelID,
		Name:     request.Name,
		Percent:  request.Percent,
		FromDate: request.FromDate,
		ToDate:   request.ToDate,
		Status:   models.DiscountStatusActive,
	}
	if request.Status == models.DiscountStatusInactive {
		discount.Status = models.DiscountStatusInactive
	}
	if err := validator.ValidateDiscount(&discount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := dc.db.Create(&discount).Error; err != nil {
		utils.LogError("Failed to create discount %s: %v", discount.Name, err)
		response.ServerError(c)
		return
	}
	response.Success(c, discount)
}

// GetDiscounts lists discounts of one hotel, newest first.
func (dc *DiscountController) GetDiscounts(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid hotel id")
		return
	}

	var discounts []models.Discount
	if err := dc.db.Where("hotel_id = ?", uint(hotelID)).Order("created_at DESC").Find(&discounts).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, discounts)
}

// UpdateDiscountStatus toggles a discount on or off.
func (dc *DiscountController) UpdateDiscountStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid discount id")
		return
	}

	var body struct {
		Status int `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var discount models.Discount
	if err := dc.db.First(&discount, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	discount.Status = body.Status
	if err := discount.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := dc.db.Save(&discount).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, discount)
}
