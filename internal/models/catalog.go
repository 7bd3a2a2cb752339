package models

import "time"

// Category groups foods in the admin catalog.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Foods     []Food    `gorm:"foreignKey:CategoryID" json:"-"`
}

// ServingUnit is a reference measure ("cup", "tablespoon") shared by foods
// and meal entries.
type ServingUnit struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

type Food struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	Calories      float64           `gorm:"not null;default:0" json:"calories"`
	Protein       float64           `gorm:"not null;default:0" json:"protein"`
	Fat           float64           `gorm:"not null;default:0" json:"fat"`
	Carbohydrates float64           `gorm:"not null;default:0" json:"carbohydrates"`
	Fiber         float64           `gorm:"not null;default:0" json:"fiber"`
	Sugar         float64           `gorm:"not null;default:0" json:"sugar"`
	ImageURL      string            `gorm:"size:255" json:"image_url"`
	CategoryID    *uint             `gorm:"index" json:"category_id"`
	ServingUnits  []FoodServingUnit `gorm:"foreignKey:FoodID" json:"serving_units"`
}

// FoodServingUnit maps a food to one of its measures with a gram weight.
type FoodServingUnit struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	FoodID        uint    `gorm:"not null;index" json:"food_id"`
	ServingUnitID uint    `gorm:"not null;index" json:"serving_unit_id"`
	Grams         float64 `gorm:"not null;default:0" json:"grams"`
}
