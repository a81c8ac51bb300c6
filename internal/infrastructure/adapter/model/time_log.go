package model

import (
	"time"
)

// TimeLog represents the database model for time logs
type TimeLog struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Date        time.Time `gorm:"not null;index"`
	Hours       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	UserID      uint64    `gorm:"not null;index"`
	ProjectID   uint64    `gorm:"not null;index"`
	Locked      bool      `gorm:"not null;default:false;index"`
	LockedAt    *time.Time
	LockedByID  *uint64
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	// Define relationships
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Project  Project  `gorm:"foreignKey:ProjectID;references:ID"`
	LockedBy *User    `gorm:"foreignKey:LockedByID;references:ID"`
}

// TableName specifies the table name for TimeLog
func (TimeLog) TableName() string {
	return "time_logs"
}
