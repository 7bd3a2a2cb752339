package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/validation"
)

// sortColumns whitelists the sort keys the food list accepts.
var sortColumns = map[string]string{
	types.SortByName:          "name",
	types.SortByCalories:      "calories",
	types.SortByProtein:       "protein",
	types.SortByCarbohydrates: "carbohydrates",
	types.SortByFat:           "fat",
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// List returns one page of foods matching the committed filter object.
// Range bounds are inclusive; empty bounds are open.
func (s *FoodService) List(ctx context.Context, filters types.FoodFilters) (types.PaginatedResult[models.Food], error) {
	var out types.PaginatedResult[models.Food]

	if errs := validation.ValidateFoodFilters(filters); errs != nil {
		return out, errs
	}

	query := s.db.WithContext(ctx).Model(&models.Food{})

	if filters.SearchTerm != "" {
		like := "%" + strings.ToLower(filters.SearchTerm) + "%"
		query = query.Where("LOWER(name) LIKE ?", like)
	}
	query = rangeWhere(query, "calories", filters.CaloriesRange)
	query = rangeWhere(query, "protein", filters.ProteinRange)

	if categoryID := validation.ToIDSafe(filters.CategoryID); categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return out, err
	}

	column, ok := sortColumns[filters.SortBy]
	if !ok {
		column = "name"
	}
	direction := "asc"
	if filters.SortOrder == types.SortDesc {
		direction = "desc"
	}

	var foods []models.Food
	err := query.
		Order(column + " " + direction).
		Offset((filters.Page - 1) * filters.PageSize).
		Limit(filters.PageSize).
		Preload("ServingUnits").
		Find(&foods).Error
	if err != nil {
		return out, err
	}

	out = types.PaginatedResult[models.Food]{
		Data:       foods,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filters.PageSize))),
	}
	return out, nil
}

// Get returns a form-shaped payload for editing, or nil when the food no
// longer exists.
func (s *FoodService) Get(ctx context.Context, id uint) (*validation.FoodPayload, error) {
	var food models.Food
	err := s.db.WithContext(ctx).Preload("ServingUnits").First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	payload := &validation.FoodPayload{
		Action:        validation.ActionUpdate,
		ID:            food.ID,
		Name:          food.Name,
		Calories:      validation.ToStringSafe(food.Calories),
		Protein:       validation.ToStringSafe(food.Protein),
		Fat:           validation.ToStringSafe(food.Fat),
		Carbohydrates: validation.ToStringSafe(food.Carbohydrates),
		Fiber:         validation.ToStringSafe(food.Fiber),
		Sugar:         validation.ToStringSafe(food.Sugar),
	}
	if food.CategoryID != nil {
		payload.CategoryID = validation.IDToString(*food.CategoryID)
	}
	for _, unit := range food.ServingUnits {
		payload.ServingUnits = append(payload.ServingUnits, validation.FoodServingUnitPayload{
			ServingUnitID: validation.IDToString(unit.ServingUnitID),
			Grams:         validation.ToStringSafe(unit.Grams),
		})
	}
	return payload, nil
}

// Save creates or updates a food together with its serving-unit rows. On
// update the child collection is replaced as a whole: delete then bulk
// insert inside one transaction, so either the old set or the full new set
// is visible, never a mix.
func (s *FoodService) Save(ctx context.Context, p validation.FoodPayload) error {
	if errs := p.Validate(); errs != nil {
		return errs
	}

	record := models.Food{
		Name:          p.Name,
		Calories:      validation.ToNumberSafe(p.Calories),
		Protein:       validation.ToNumberSafe(p.Protein),
		Fat:           validation.ToNumberSafe(p.Fat),
		Carbohydrates: validation.ToNumberSafe(p.Carbohydrates),
		Fiber:         validation.ToNumberSafe(p.Fiber),
		Sugar:         validation.ToNumberSafe(p.Sugar),
	}
	if categoryID := validation.ToIDSafe(p.CategoryID); categoryID != 0 {
		record.CategoryID = &categoryID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foodID := p.ID

		if p.Action == validation.ActionCreate {
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			foodID = record.ID
		} else {
			res := tx.Model(&models.Food{}).Where("id = ?", p.ID).
				Select("name", "calories", "protein", "fat", "carbohydrates", "fiber", "sugar", "category_id").
				Updates(map[string]any{
					"name":          record.Name,
					"calories":      record.Calories,
					"protein":       record.Protein,
					"fat":           record.Fat,
					"carbohydrates": record.Carbohydrates,
					"fiber":         record.Fiber,
					"sugar":         record.Sugar,
					"category_id":   record.CategoryID,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
			if err := tx.Where("food_id = ?", p.ID).Delete(&models.FoodServingUnit{}).Error; err != nil {
				return err
			}
		}

		if len(p.ServingUnits) == 0 {
			return nil
		}
		units := make([]models.FoodServingUnit, 0, len(p.ServingUnits))
		for _, unit := range p.ServingUnits {
			units = append(units, models.FoodServingUnit{
				FoodID:        foodID,
				ServingUnitID: validation.ToIDSafe(unit.ServingUnitID),
				Grams:         validation.ToNumberSafe(unit.Grams),
			})
		}
		return tx.Create(&units).Error
	})
}

// Delete removes a food and its serving-unit rows in one transaction.
func (s *FoodService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&models.FoodServingUnit{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Food{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetImageURL stores the uploaded image location on the food record.
func (s *FoodService) SetImageURL(ctx context.Context, id uint, url string) error {
	res := s.db.WithContext(ctx).Model(&models.Food{}).Where("id = ?", id).Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func rangeWhere(query *gorm.DB, column string, bounds [2]string) *gorm.DB {
	if bounds[0] != "" {
		query = query.Where(column+" >= ?", validation.ToNumberSafe(bounds[0]))
	}
	if bounds[1] != "" {
		query = query.Where(column+" <= ?", validation.ToNumberSafe(bounds[1]))
	}
	return query
}
