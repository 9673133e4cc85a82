package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"stayhub/models"
	"stayhub/utils"
	"stayhub/validator"
)

// InitCronJobs registers the nightly maintenance run and starts the scheduler.
func InitCronJobs(c *cron.Cron, db *gorm.DB) error {
	// Runs at midnight every day.
	_, err := c.AddFunc("0 0 * * *", func() {
		expireDiscounts(db)
		completeElapsedStays(db)
		pruneRoomStatuses(db)
	})
	if err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("Cron jobs initialized successfully")
	return nil
}

// expireDiscounts deactivates discounts whose window has closed so that
// future price computations stop applying them.
func expireDiscounts(db *gorm.DB) {
	today := time.Now().Truncate(24 * time.Hour)

	var discounts []models.Discount
	if err := db.Where("status = ?", models.DiscountStatusActive).Find(&discounts).Error; err != nil {
		utils.LogError("Failed to load active discounts: %v", err)
		return
	}

	for _, discount := range discounts {
		toDate, err := time.Parse(validator.DateLayout, discount.ToDate)
		if err != nil {
			utils.LogError("Discount %d has unparseable toDate %q: %v", discount.ID, discount.ToDate, err)
			continue
		}
		if toDate.Before(today) {
			if err := db.Model(&models.Discount{}).Where("id = ?", discount.ID).
				Update("status", models.DiscountStatusInactive).Error; err != nil {
				utils.LogError("Failed to deactivate discount %d: %v", discount.ID, err)
				continue
			}
			utils.LogInfo("Deactivated expired discount %d (%s)", discount.ID, discount.Name)
		}
	}
}

// completeElapsedStays settles confirmed reservations whose checkout day
// has been reached.
func completeElapsedStays(db *gorm.DB) {
	today := time.Now().Truncate(24 * time.Hour)

	var reservations []models.Reservation
	if err := db.Where("status = ?", models.ReservationStatusConfirmed).Find(&reservations).Error; err != nil {
		utils.LogError("Failed to load confirmed reservations: %v", err)
		return
	}

	for _, r := range reservations {
		if !r.StayElapsed(today) {
			continue
		}
		if err := db.Model(&models.Reservation{}).Where("id = ?", r.ID).
			Update("status", models.ReservationStatusCompleted).Error; err != nil {
			utils.LogError("Failed to complete reservation %d: %v", r.ID, err)
			continue
		}
		utils.LogInfo("Completed reservation %d", r.ID)
	}
}

// pruneRoomStatuses drops occupancy rows that ended in the past. They no
// longer affect any availability check and only grow the table.
func pruneRoomStatuses(db *gorm.DB) {
	today := time.Now().Truncate(24 * time.Hour)

	result := db.Where("to_date < ?", today).Delete(&models.RoomStatus{})
	if result.Error != nil {
		utils.LogError("Failed to prune room statuses: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		utils.LogInfo("Pruned %d expired room status rows", result.RowsAffected)
	}
}
