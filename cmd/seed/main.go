package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nutridash/backend/config"
	"github.com/nutridash/backend/internal/database"
	"github.com/nutridash/backend/internal/models"
)

var categories = []string{"Fruits", "Vegetables", "Grains", "Proteins", "Dairy"}

var servingUnits = []string{"g", "ml", "cup", "tbsp", "piece"}

type seedFood struct {
	name     string
	category string
	calories float64
	protein  float64
	fat      float64
	carbs    float64
	fiber    float64
	sugar    float64
}

var foods = []seedFood{
	{"Apple", "Fruits", 52, 0.3, 0.2, 13.8, 2.4, 10.4},
	{"Banana", "Fruits", 89, 1.1, 0.3, 22.8, 2.6, 12.2},
	{"Broccoli", "Vegetables", 34, 2.8, 0.4, 6.6, 2.6, 1.7},
	{"Spinach", "Vegetables", 23, 2.9, 0.4, 3.6, 2.2, 0.4},
	{"Brown Rice", "Grains", 111, 2.6, 0.9, 23.0, 1.8, 0.4},
	{"Oats", "Grains", 389, 16.9, 6.9, 66.3, 10.6, 0.0},
	{"Chicken Breast", "Proteins", 165, 31.0, 3.6, 0.0, 0.0, 0.0},
	{"Salmon", "Proteins", 208, 20.4, 13.4, 0.0, 0.0, 0.0},
	{"Greek Yogurt", "Dairy", 59, 10.0, 0.4, 3.6, 0.0, 3.2},
	{"Cheddar Cheese", "Dairy", 403, 24.9, 33.1, 1.3, 0.0, 0.5},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed complete")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := map[string]uint{}
		for _, name := range categories {
			category := models.Category{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
				return err
			}
			categoryIDs[name] = category.ID
		}

		var gramsID uint
		for _, name := range servingUnits {
			unit := models.ServingUnit{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&unit).Error; err != nil {
				return err
			}
			if name == "g" {
				gramsID = unit.ID
			}
		}

		for _, f := range foods {
			categoryID := categoryIDs[f.category]
			food := models.Food{
				Name:          f.name,
				Calories:      f.calories,
				Protein:       f.protein,
				Fat:           f.fat,
				Carbohydrates: f.carbs,
				Fiber:         f.fiber,
				Sugar:         f.sugar,
				CategoryID:    &categoryID,
			}
			if err := tx.Where("name = ?", f.name).FirstOrCreate(&food).Error; err != nil {
				return err
			}

			unit := models.FoodServingUnit{FoodID: food.ID, ServingUnitID: gramsID, Grams: 100}
			if err := tx.Where("food_id = ? AND serving_unit_id = ?", food.ID, gramsID).
				FirstOrCreate(&unit).Error; err != nil {
				return err
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("Admin1$pass"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Admin",
			Email:        "admin@nutridash.local",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		return tx.Where("email = ?", admin.Email).FirstOrCreate(&admin).Error
	})
}
