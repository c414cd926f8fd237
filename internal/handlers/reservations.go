package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/models"
	"github.com/modorcea/rentacar-backend/internal/services"
	"github.com/modorcea/rentacar-backend/pkg/utils"
	"gorm.io/gorm"
)

const codeCreateAttempts = 5

type SearchInput struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

type BookInput struct {
	UserID    string    `json:"userID"`
	CarID     uint      `json:"carID" binding:"required"`
	CarName   string    `json:"carName" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

type VerifyInput struct {
	Code   string `json:"code" binding:"required"`
	ID     uint   `json:"id" binding:"required"`
	UserID string `json:"userID"`
}

// overlaps reports whether the half-open windows [start, end) and
// [rStart, rEnd) intersect.
func overlaps(start, end, rStart, rEnd time.Time) bool {
	return start.Before(rEnd) && rStart.Before(end)
}

// rentalDays counts whole days in [start, end), with a one-day minimum.
func rentalDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// SearchCars returns the cars with stock remaining over the requested
// window. Every overlapping Active reservation decrements the matching
// car's quantity in the response only; nothing is persisted.
func SearchCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SearchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var cars []models.Car
		if err := db.Find(&cars).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cars"})
			return
		}

		var reservations []models.Reservation
		if err := db.Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reservations"})
			return
		}

		for _, reservation := range reservations {
			if reservation.Status != models.ReservationStatusActive {
				continue
			}
			if !overlaps(input.StartDate, input.EndDate, reservation.StartDate, reservation.EndDate) {
				continue
			}
			for i := range cars {
				if cars[i].ID == reservation.CarID {
					cars[i].Quantity--
				}
			}
		}

		filteredCars := make([]models.Car, 0, len(cars))
		for _, car := range cars {
			if car.Quantity > 0 {
				filteredCars = append(filteredCars, car)
			}
		}

		c.JSON(200, gin.H{"filteredCars": filteredCars, "debug": len(reservations)})
	}
}

// BookCar creates a Pending reservation, persists a verification code
// bound to it, and mails the code to the booking user. Email failures
// are logged and never fail the booking.
func BookCar(db *gorm.DB, mailer services.Mailer, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var car models.Car
		if err := db.First(&car, input.CarID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		reservation := models.Reservation{
			UserID:    input.UserID,
			CarID:     input.CarID,
			CarName:   input.CarName,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Price:     car.Price * float64(rentalDays(input.StartDate, input.EndDate)),
			Status:    models.ReservationStatusPending,
		}

		if err := db.Create(&reservation).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create reservation"})
			return
		}

		code, err := createVerificationCode(db, reservation.ID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate reservation code"})
			return
		}

		if input.UserID != "" {
			if err := services.SendReservationCodeEmail(mailer, input.UserID, input.CarName, code); err != nil {
				log.Printf("Failed to send reservation code email: %v", err)
			}
		}

		hub.BroadcastReservationEvent("reservation_created", &reservation)

		c.JSON(201, gin.H{"message": "Reservation created successfully"})
	}
}

// createVerificationCode persists a code for the reservation, retrying
// on unique-index collisions.
func createVerificationCode(db *gorm.DB, reservationID uint) (string, error) {
	var lastErr error
	for attempt := 0; attempt < codeCreateAttempts; attempt++ {
		code := models.VerificationCode{
			ReservationID: reservationID,
			Code:          utils.GenerateReservationCode(),
			ExpiresAt:     time.Now().Add(utils.CodeExpiration),
		}
		if err := db.Create(&code).Error; err != nil {
			lastErr = err
			continue
		}
		return code.Code, nil
	}
	return "", lastErr
}

// VerifyReservation activates a Pending reservation when the supplied
// code matches an unused, unexpired code issued for that reservation.
// The code is consumed on success.
func VerifyReservation(db *gorm.DB, mailer services.Mailer, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var reservation models.Reservation
		if err := db.First(&reservation, input.ID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Reservation not found"})
			return
		}

		var code models.VerificationCode
		if err := db.Where("code = ? AND reservation_id = ? AND used = ? AND expires_at > ?",
			input.Code, input.ID, false, time.Now()).
			First(&code).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to verify"})
			return
		}

		// Consume the code before flipping status to keep it single-use
		// even if the status update fails and is retried.
		if err := db.Model(&models.VerificationCode{}).Where("id = ?", code.ID).Update("used", true).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to verify"})
			return
		}

		if err := db.Model(&models.Reservation{}).Where("id = ?", reservation.ID).
			Update("status", models.ReservationStatusActive).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update reservation"})
			return
		}
		reservation.Status = models.ReservationStatusActive

		if input.UserID != "" {
			if err := services.SendReservationConfirmedEmail(mailer, input.UserID, reservation.CarName); err != nil {
				log.Printf("Failed to send confirmation email: %v", err)
			}
		}

		hub.BroadcastReservationEvent("reservation_confirmed", &reservation)

		c.JSON(200, gin.H{"message": "Updated Successfully"})
	}
}

// GetUserReservations lists the reservations booked under a username.
func GetUserReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Username string `json:"username" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var reservations []models.Reservation
		if err := db.Where("user_id = ?", input.Username).Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch reservations"})
			return
		}

		c.JSON(200, gin.H{"reservationList": reservations, "username": input.Username})
	}
}

// CheckUserReservations returns the raw reservation list for a user.
func CheckUserReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			User string `json:"user" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var reservations []models.Reservation
		if err := db.Where("user_id = ?", input.User).Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Error fetching reservations"})
			return
		}

		c.JSON(200, reservations)
	}
}

// GetAllReservations retrieves every reservation in the system
func GetAllReservations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservations []models.Reservation
		if err := db.Find(&reservations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Error fetching reservations"})
			return
		}

		c.JSON(200, reservations)
	}
}
