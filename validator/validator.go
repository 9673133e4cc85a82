package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

// DateLayout is the wire format for dates
const DateLayout = "02/01/2006"

// ValidateUser checks a user before create/update
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}
	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number must not be empty", nil)
	}
	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid phone number", nil)
	}
	if user.Role < 0 || user.Role > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}
	return nil
}

// ValidateRoomType checks capacity and price constraints
func ValidateRoomType(rt *models.RoomType) error {
	if rt.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type name must not be empty", nil)
	}
	if rt.NightlyPrice <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Nightly price must be greater than zero", nil)
	}
	if err := rt.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

// ValidateRoom checks a physical room
func ValidateRoom(room *models.Room) error {
	if room.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room type is required", nil)
	}
	if room.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number must not be empty", nil)
	}
	return nil
}

// ValidateDiscount checks percent range, status and the date window
func ValidateDiscount(discount *models.Discount) error {
	if discount.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hotel is required", nil)
	}
	if err := discount.ValidatePercent(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	if err := discount.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, err.Error(), nil)
	}
	fromDate, err := time.Parse(DateLayout, discount.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid from date", err)
	}
	toDate, err := time.Parse(DateLayout, discount.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid to date", err)
	}
	if !toDate.After(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "To date must be after from date", nil)
	}
	return nil
}

// ParseOccupancies decodes the occupancies query parameter: one requested
// room per item as "adults-children", comma separated. The children part is
// optional, so "2-1,3" asks for two rooms.
func ParseOccupancies(raw string) ([]dto.Occupancy, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "At least one room occupancy is required", nil)
	}
	parts := strings.Split(raw, ",")
	occupancies := make([]dto.Occupancy, 0, len(parts))
	for _, part := range parts {
		fields := strings.SplitN(strings.TrimSpace(part), "-", 2)
		adults, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid occupancy: "+part, err)
		}
		occ := dto.Occupancy{Adults: adults}
		if len(fields) == 2 {
			children, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid occupancy: "+part, err)
			}
			occ.Children = children
		}
		occupancies = append(occupancies, occ)
	}
	return occupancies, nil
}

// ValidateOccupancies checks the requested party compositions
func ValidateOccupancies(occupancies []dto.Occupancy) error {
	if len(occupancies) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "At least one room occupancy is required", nil)
	}
	for _, occ := range occupancies {
		if occ.Adults < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Each room needs at least one adult", nil)
		}
		if occ.Children < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Children count must not be negative", nil)
		}
	}
	return nil
}

// ValidateGuestContact checks guest fields for bookings without an account
func ValidateGuestContact(name, email, phone string) error {
	if name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name must not be empty", nil)
	}
	if email != "" && !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid guest email", nil)
	}
	if phone == "" || !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Invalid guest phone number", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
