package models

import "time"

// Meal is one logged eating occasion for a user.
type Meal struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	DateTime  time.Time  `gorm:"not null;index" json:"date_time"`
	MealFoods []MealFood `gorm:"foreignKey:MealID" json:"meal_foods"`
}

// MealFood is one food entry inside a meal, measured in serving units.
type MealFood struct {
	ID            uint         `gorm:"primarykey" json:"id"`
	MealID        uint         `gorm:"not null;index" json:"meal_id"`
	FoodID        uint         `gorm:"not null;index" json:"food_id"`
	ServingUnitID uint         `gorm:"not null;index" json:"serving_unit_id"`
	Amount        float64      `gorm:"not null;default:0" json:"amount"`
	Food          *Food        `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	ServingUnit   *ServingUnit `gorm:"foreignKey:ServingUnitID" json:"serving_unit,omitempty"`
}
