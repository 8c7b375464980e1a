package models

import "time"

// Validation is a peer attestation of an incident. Rows are never updated.
type Validation struct {
	ID          uint      `gorm:"primaryKey"`
	IncidentID  uint      `gorm:"not null;index"`
	ValidatorID uint      `gorm:"not null;index"`
	Comment     *string   `gorm:"size:500"`
	ValidatedAt time.Time `gorm:"not null"`

	Validator *User `gorm:"foreignKey:ValidatorID"`
}
