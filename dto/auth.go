package dto

// RegisterInput is the signup payload.
type RegisterInput struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// LoginInput accepts email or phone as identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserLoginResponse is returned on a successful login.
type UserLoginResponse struct {
	UserID      uint   `json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	AccessToken string `json:"accessToken"`
}
