package database

import (
	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
)

// AutoMigrate creates or updates the schema for every domain record.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.ServingUnit{},
		&models.Food{},
		&models.FoodServingUnit{},
		&models.Meal{},
		&models.MealFood{},
	)
}
