package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null;size:255"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Role      string    `gorm:"not null;size:50;default:user"`
	Status    string    `gorm:"not null;size:50;default:active"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Projects []Project `gorm:"many2many:project_users"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
