package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/utils"
	"stayhub/validator"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register creates a guest-role account.
func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        models.RoleGuest,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.User
	if err := ac.db.Where("email = ? OR phone_number = ?", user.Email, user.PhoneNumber).First(&existing).Error; err == nil {
		response.BadRequest(c, "Email or phone number already in use")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashed)

	if err := ac.db.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", user.Email, err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": user.ID, "email": user.Email})
}

// Login authenticates by email or phone and issues an access token.
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := ac.db.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60*24*3)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		AccessToken: accessToken,
	})
}
