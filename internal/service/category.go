package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/validation"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns a form-shaped payload for editing, or nil when the category
// no longer exists.
func (s *CategoryService) Get(ctx context.Context, id uint) (*validation.CategoryPayload, error) {
	var category models.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &validation.CategoryPayload{
		Action: validation.ActionUpdate,
		ID:     category.ID,
		Name:   category.Name,
	}, nil
}

// Save creates or updates a category depending on the payload action.
func (s *CategoryService) Save(ctx context.Context, p validation.CategoryPayload) error {
	if errs := p.Validate(); errs != nil {
		return errs
	}

	if p.Action == validation.ActionCreate {
		return s.db.WithContext(ctx).Create(&models.Category{Name: p.Name}).Error
	}

	res := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", p.ID).Update("name", p.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category. Foods keep existing with their category
// reference cleared.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Food{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
