package models

import "time"

// User is a registered citizen. The national id is the Brazilian CPF.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;not null;uniqueIndex:users_email_key" json:"email"`
	NationalID   string    `gorm:"column:cpf;size:14;not null;uniqueIndex:users_cpf_key" json:"national_id"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
}
