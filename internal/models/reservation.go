package models

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusPending ReservationStatus = "Pending"
	ReservationStatusActive  ReservationStatus = "Active"
)

// Reservation is a booking for a car over a half-open date window
// [StartDate, EndDate). UserID holds the raw username of the booking
// user, not a foreign key. CarName is a denormalized copy kept for
// client display.
type Reservation struct {
	gorm.Model
	UserID    string            `json:"userID"`
	CarID     uint              `json:"carID" gorm:"not null"`
	CarName   string            `json:"carName"`
	StartDate time.Time         `json:"startDate" gorm:"not null"`
	EndDate   time.Time         `json:"endDate" gorm:"not null"`
	Price     float64           `json:"price"`
	Status    ReservationStatus `json:"status" gorm:"not null;default:'Pending'"`
}

// TableName specifies the table name
func (Reservation) TableName() string {
	return "reservations"
}
