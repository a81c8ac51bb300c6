package model

import (
	"time"
)

// Project represents the database model for projects
type Project struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"not null;size:50;default:active;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	Users []User `gorm:"many2many:project_users"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
