package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/testdb"
	"github.com/nutridash/backend/internal/validation"
)

func TestCategoryCRUD(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, validation.CategoryPayload{
		Action: validation.ActionCreate, Name: "Snacks",
	}))
	require.NoError(t, svc.Save(ctx, validation.CategoryPayload{
		Action: validation.ActionCreate, Name: "Breakfast",
	}))

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// Ordered by name.
	assert.Equal(t, "Breakfast", categories[0].Name)
	assert.Equal(t, "Snacks", categories[1].Name)

	payload, err := svc.Get(ctx, categories[1].ID)
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, validation.ActionUpdate, payload.Action)
	assert.Equal(t, "Snacks", payload.Name)

	payload.Name = "Treats"
	require.NoError(t, svc.Save(ctx, *payload))
	updated, err := svc.Get(ctx, categories[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Treats", updated.Name)

	require.NoError(t, svc.Delete(ctx, categories[1].ID))
	gone, err := svc.Get(ctx, categories[1].ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestCategoryValidation(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	err := svc.Save(ctx, validation.CategoryPayload{Action: validation.ActionCreate, Name: ""})
	var errs validation.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "name")

	err = svc.Save(ctx, validation.CategoryPayload{Action: validation.ActionUpdate, Name: "x"})
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "id")
}

func TestCategoryDeleteClearsFoodReferences(t *testing.T) {
	db := testdb.Setup(t)
	svc := NewCategoryService(db)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, validation.CategoryPayload{
		Action: validation.ActionCreate, Name: "Snacks",
	}))
	var category models.Category
	require.NoError(t, db.First(&category).Error)

	food := models.Food{Name: "Granola", CategoryID: &category.ID}
	require.NoError(t, db.Create(&food).Error)

	require.NoError(t, svc.Delete(ctx, category.ID))

	var reloaded models.Food
	require.NoError(t, db.First(&reloaded, food.ID).Error)
	assert.Nil(t, reloaded.CategoryID)
}
