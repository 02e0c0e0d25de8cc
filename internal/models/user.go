package models

import "gorm.io/gorm"

// User represents a registered shopper.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required"` // bcrypt hash, never serialized
	Role       string `json:"role,omitempty" gorm:"type:varchar(50);default:'customer'"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
