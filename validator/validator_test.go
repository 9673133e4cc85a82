package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/dto"
	"stayhub/models"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Name:        "Alice",
		Email:       "alice@example.com",
		Password:    "secret1",
		PhoneNumber: "0912345678",
		Role:        models.RoleGuest,
	}
	assert.NoError(t, ValidateUser(&valid))

	tests := []struct {
		name   string
		mutate func(u *models.User)
	}{
		{"empty email", func(u *models.User) { u.Email = "" }},
		{"bad email", func(u *models.User) { u.Email = "not-an-email" }},
		{"short password", func(u *models.User) { u.Password = "abc" }},
		{"empty phone", func(u *models.User) { u.PhoneNumber = "" }},
		{"short phone", func(u *models.User) { u.PhoneNumber = "12345" }},
		{"unknown role", func(u *models.User) { u.Role = 7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			assert.Error(t, ValidateUser(&u))
		})
	}
}

func TestValidateRoomType(t *testing.T) {
	valid := models.RoomType{
		Name:         "Deluxe",
		NightlyPrice: 12000,
		MaxAdults:    2,
		MaxChildren:  1,
	}
	assert.NoError(t, ValidateRoomType(&valid))

	noName := valid
	noName.Name = ""
	assert.Error(t, ValidateRoomType(&noName))

	freeRoom := valid
	freeRoom.NightlyPrice = 0
	assert.Error(t, ValidateRoomType(&freeRoom))

	noAdults := valid
	noAdults.MaxAdults = 0
	assert.Error(t, ValidateRoomType(&noAdults))

	negativeChildren := valid
	negativeChildren.MaxChildren = -1
	assert.Error(t, ValidateRoomType(&negativeChildren))
}

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom(&models.Room{RoomTypeID: 1, RoomNumber: "101"}))
	assert.Error(t, ValidateRoom(&models.Room{RoomNumber: "101"}))
	assert.Error(t, ValidateRoom(&models.Room{RoomTypeID: 1}))
}

func TestValidateDiscount(t *testing.T) {
	valid := models.Discount{
		HotelID:  1,
		Name:     "Summer",
		Percent:  15,
		FromDate: "01/06/2026",
		ToDate:   "31/08/2026",
		Status:   models.DiscountStatusActive,
	}
	assert.NoError(t, ValidateDiscount(&valid))

	tests := []struct {
		name   string
		mutate func(d *models.Discount)
	}{
		{"missing hotel", func(d *models.Discount) { d.HotelID = 0 }},
		{"percent too low", func(d *models.Discount) { d.Percent = 0 }},
		{"percent too high", func(d *models.Discount) { d.Percent = 101 }},
		{"unknown status", func(d *models.Discount) { d.Status = 3 }},
		{"bad from date", func(d *models.Discount) { d.FromDate = "2026-06-01" }},
		{"bad to date", func(d *models.Discount) { d.ToDate = "soon" }},
		{"inverted window", func(d *models.Discount) { d.FromDate, d.ToDate = d.ToDate, d.FromDate }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			assert.Error(t, ValidateDiscount(&d))
		})
	}
}

func TestParseOccupancies(t *testing.T) {
	occupancies, err := ParseOccupancies("2-1,3-0,1")
	assert.NoError(t, err)
	assert.Equal(t, []dto.Occupancy{
		{Adults: 2, Children: 1},
		{Adults: 3, Children: 0},
		{Adults: 1, Children: 0},
	}, occupancies)

	occupancies, err = ParseOccupancies(" 2-1 , 3 ")
	assert.NoError(t, err)
	assert.Equal(t, []dto.Occupancy{{Adults: 2, Children: 1}, {Adults: 3}}, occupancies)

	_, err = ParseOccupancies("")
	assert.Error(t, err)
	_, err = ParseOccupancies("two-1")
	assert.Error(t, err)
	_, err = ParseOccupancies("2-x")
	assert.Error(t, err)
}

func TestValidateOccupancies(t *testing.T) {
	assert.NoError(t, ValidateOccupancies([]dto.Occupancy{{Adults: 2, Children: 1}, {Adults: 1}}))
	assert.Error(t, ValidateOccupancies(nil))
	assert.Error(t, ValidateOccupancies([]dto.Occupancy{{Adults: 0, Children: 2}}))
	assert.Error(t, ValidateOccupancies([]dto.Occupancy{{Adults: 1, Children: -1}}))
}

func TestValidateGuestContact(t *testing.T) {
	assert.NoError(t, ValidateGuestContact("Bob", "bob@example.com", "0987654321"))
	// Email is optional for walk-in guests, phone is not.
	assert.NoError(t, ValidateGuestContact("Bob", "", "0987654321"))
	assert.Error(t, ValidateGuestContact("", "bob@example.com", "0987654321"))
	assert.Error(t, ValidateGuestContact("Bob", "bob@", "0987654321"))
	assert.Error(t, ValidateGuestContact("Bob", "bob@example.com", ""))
	assert.Error(t, ValidateGuestContact("Bob", "bob@example.com", "123"))
}
