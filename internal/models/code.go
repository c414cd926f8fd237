package models

import (
	"time"

	"gorm.io/gorm"
)

// VerificationCode is the emailed confirmation code for a single
// reservation. A code only confirms the reservation it was generated
// for, expires, and is consumed on first use.
type VerificationCode struct {
	gorm.Model
	ReservationID uint      `json:"reservationId" gorm:"not null"`
	Code          string    `json:"code" gorm:"uniqueIndex;not null"`
	ExpiresAt     time.Time `json:"expiresAt"`
	Used          bool      `json:"used" gorm:"default:false"`
}

// TableName specifies the table name
func (VerificationCode) TableName() string {
	return "verification_codes"
}

// IsValid checks if the code is still usable (not expired and not used)
func (v *VerificationCode) IsValid() bool {
	return !v.Used && time.Now().Before(v.ExpiresAt)
}
