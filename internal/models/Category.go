package models

// Category is a fixed classification of accessibility problems, seeded at startup.
type Category struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null;uniqueIndex:categories_name_key" json:"name"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
	Icon        *string `gorm:"size:100" json:"icon,omitempty"`
}
