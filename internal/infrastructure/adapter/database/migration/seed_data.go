package migration

import (
	"context"

	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Default accounts created on a fresh database
var defaultUsers = []model.User{
	{Name: "Administrator", Email: "admin@timetrack.local", Role: "admin", Status: "active"},
}

// SeedDefaults creates the default admin account if it does not exist
func SeedDefaults(ctx context.Context, db *gorm.DB) error {
	for _, user := range defaultUsers {
		result := db.WithContext(ctx).
			Where(model.User{Email: user.Email}).
			FirstOrCreate(&user)
		if result.Error != nil {
			return result.Error
		}
	}

	return nil
}
