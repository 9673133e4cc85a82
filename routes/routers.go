package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stayhub/controllers"
	"stayhub/engine"
	middlewares "stayhub/middleware"
	"stayhub/models"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	loader := engine.NewInventoryLoader(db)
	store := engine.NewBookingStore(db)
	eng := engine.New(loader, store)

	authController := controllers.NewAuthController(db)
	hotelController := controllers.NewHotelController(db, redisCli, eng)
	roomController := controllers.NewRoomController(db)
	discountController := controllers.NewDiscountController(db)
	bookingController := controllers.NewBookingController(db, eng, store)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)

	v1.GET("/hotels", hotelController.GetHotels)
	v1.POST("/hotels", middlewares.AuthMiddleware(models.RoleAdmin), hotelController.CreateHotel)
	v1.PUT("/hotels/:id", middlewares.AuthMiddleware(models.RoleAdmin), hotelController.UpdateHotel)
	v1.GET("/hotels/search", middlewares.OptionalAuth(), hotelController.SearchHotels)
	v1.GET("/hotels/:id/availability", hotelController.GetHotelAvailability)

	v1.GET("/roomTypes", roomController.GetRoomTypes)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(models.RoleAdmin), roomController.CreateRoomType)
	v1.PUT("/roomTypes/:id", middlewares.AuthMiddleware(models.RoleAdmin), roomController.UpdateRoomType)
	v1.POST("/rooms", middlewares.AuthMiddleware(models.RoleAdmin), roomController.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(models.RoleAdmin), roomController.UpdateRoom)

	v1.GET("/discounts", discountController.GetDiscounts)
	v1.POST("/discounts", middlewares.AuthMiddleware(models.RoleAdmin), discountController.CreateDiscount)
	v1.PUT("/discounts/:id/status", middlewares.AuthMiddleware(models.RoleAdmin), discountController.UpdateDiscountStatus)

	v1.POST("/bookings", middlewares.OptionalAuth(), bookingController.CreateBooking)
	v1.GET("/bookings", middlewares.AuthMiddleware(), bookingController.GetBookings)
	v1.PUT("/bookings/:id/cancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)
}
