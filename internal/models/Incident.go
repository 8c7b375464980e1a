package models

import "time"

// IncidentStatus is the lifecycle state of a report. Values are the wire format used by the mobile app.
type IncidentStatus string

const (
	StatusAwaitingValidation IncidentStatus = "aguardando_validacao"
	// StatusUnderReview is displayed by the client but nothing transitions into it yet.
	StatusUnderReview IncidentStatus = "em_analise"
	StatusValidated   IncidentStatus = "validada"
)

// Incident (ocorrência) is a reported urban accessibility problem.
type Incident struct {
	ID             uint           `gorm:"primaryKey"`
	ReporterID     uint           `gorm:"not null;index"`
	CategoryID     uint           `gorm:"not null;index"`
	Description    string         `gorm:"size:500;not null"`
	Address        string         `gorm:"size:200;not null"`
	Latitude       float64        `gorm:"not null;index:idx_incidents_location,priority:1"`
	Longitude      float64        `gorm:"not null;index:idx_incidents_location,priority:2"`
	ImageURL       *string        `gorm:"column:image_url;size:500"`
	CreatedAt      time.Time      `gorm:"not null;index"`
	Status         IncidentStatus `gorm:"size:50;not null"`
	Urgent         bool           `gorm:"not null"`
	PublicLocation bool           `gorm:"not null"`

	Reporter    *User        `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Category    *Category    `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Validations []Validation `gorm:"foreignKey:IncidentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
