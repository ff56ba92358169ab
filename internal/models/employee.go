package models

import "time"

// Employee roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee represents a registered back-office user.
type Employee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role         string    `json:"role" gorm:"type:varchar(20);default:employee"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
