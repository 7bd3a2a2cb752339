package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/validation"
)

type ServingUnitService struct {
	db *gorm.DB
}

func NewServingUnitService(db *gorm.DB) *ServingUnitService {
	return &ServingUnitService{db: db}
}

func (s *ServingUnitService) List(ctx context.Context) ([]models.ServingUnit, error) {
	var units []models.ServingUnit
	if err := s.db.WithContext(ctx).Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (s *ServingUnitService) Get(ctx context.Context, id uint) (*validation.ServingUnitPayload, error) {
	var unit models.ServingUnit
	err := s.db.WithContext(ctx).First(&unit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &validation.ServingUnitPayload{
		Action: validation.ActionUpdate,
		ID:     unit.ID,
		Name:   unit.Name,
	}, nil
}

func (s *ServingUnitService) Save(ctx context.Context, p validation.ServingUnitPayload) error {
	if errs := p.Validate(); errs != nil {
		return errs
	}

	if p.Action == validation.ActionCreate {
		return s.db.WithContext(ctx).Create(&models.ServingUnit{Name: p.Name}).Error
	}

	res := s.db.WithContext(ctx).Model(&models.ServingUnit{}).Where("id = ?", p.ID).Update("name", p.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ServingUnitService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.ServingUnit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
