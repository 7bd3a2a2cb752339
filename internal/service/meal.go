package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/validation"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// List returns the user's meals for the filtered calendar day, newest
// first, children included with their food and serving unit.
func (s *MealService) List(ctx context.Context, userID uint, filters types.MealFilters) ([]models.Meal, error) {
	start := time.Date(filters.Day.Year(), filters.Day.Month(), filters.Day.Day(), 0, 0, 0, 0, filters.Day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date_time BETWEEN ? AND ?", start, end).
		Order("date_time desc").
		Preload("MealFoods").
		Preload("MealFoods.Food").
		Preload("MealFoods.ServingUnit").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// Get returns a form-shaped payload for editing, or nil when the meal no
// longer exists or belongs to another user.
func (s *MealService) Get(ctx context.Context, id, userID uint) (*validation.MealPayload, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).Preload("MealFoods").
		Where("user_id = ?", userID).First(&meal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	payload := &validation.MealPayload{
		Action:   validation.ActionUpdate,
		ID:       meal.ID,
		UserID:   validation.IDToString(meal.UserID),
		DateTime: meal.DateTime,
	}
	for _, mf := range meal.MealFoods {
		payload.MealFoods = append(payload.MealFoods, validation.MealFoodPayload{
			FoodID:        validation.IDToString(mf.FoodID),
			ServingUnitID: validation.IDToString(mf.ServingUnitID),
			Amount:        validation.ToStringSafe(mf.Amount),
		})
	}
	return payload, nil
}

// Save creates or updates a meal with its food rows. Updates replace the
// child collection atomically, same protocol as foods.
func (s *MealService) Save(ctx context.Context, userID uint, p validation.MealPayload) error {
	if errs := p.Validate(); errs != nil {
		return errs
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mealID := p.ID

		if p.Action == validation.ActionCreate {
			meal := models.Meal{UserID: userID, DateTime: p.DateTime}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
			mealID = meal.ID
		} else {
			res := tx.Model(&models.Meal{}).
				Where("id = ? AND user_id = ?", p.ID, userID).
				Update("date_time", p.DateTime)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
			if err := tx.Where("meal_id = ?", p.ID).Delete(&models.MealFood{}).Error; err != nil {
				return err
			}
		}

		if len(p.MealFoods) == 0 {
			return nil
		}
		rows := make([]models.MealFood, 0, len(p.MealFoods))
		for _, mf := range p.MealFoods {
			rows = append(rows, models.MealFood{
				MealID:        mealID,
				FoodID:        validation.ToIDSafe(mf.FoodID),
				ServingUnitID: validation.ToIDSafe(mf.ServingUnitID),
				Amount:        validation.ToNumberSafe(mf.Amount),
			})
		}
		return tx.Create(&rows).Error
	})
}

// Delete removes a meal and its food rows in one transaction.
func (s *MealService) Delete(ctx context.Context, id, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Meal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("meal_id = ?", id).Delete(&models.MealFood{}).Error
	})
}
