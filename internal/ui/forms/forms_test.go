package forms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutridash/backend/internal/models"
	"github.com/nutridash/backend/internal/service"
	"github.com/nutridash/backend/internal/testdb"
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/confirm"
	"github.com/nutridash/backend/internal/ui/filter"
	"github.com/nutridash/backend/internal/ui/notify"
	"github.com/nutridash/backend/internal/ui/query"
	"github.com/nutridash/backend/internal/ui/store"
	"github.com/nutridash/backend/internal/ui/stores"
	"github.com/nutridash/backend/internal/validation"
)

type fixture struct {
	db       *gorm.DB
	client   *query.Client
	notifier *notify.Notifier
	notes    *[]notify.Notification

	categoryStore    *stores.CategoryStore
	servingUnitStore *stores.ServingUnitStore
	foodStore        *stores.FoodStore
	mealStore        *stores.MealStore

	category    *CategoryForm
	servingUnit *ServingUnitForm
	food        *FoodForm
	meal        *MealForm
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testdb.Setup(t)
	client := query.NewClient()
	notifier := notify.New()
	backend := store.NewMemoryBackend()

	notes := &[]notify.Notification{}
	cancel := notifier.Subscribe(func(n notify.Notification) { *notes = append(*notes, n) })
	t.Cleanup(cancel)

	f := &fixture{
		db:               db,
		client:           client,
		notifier:         notifier,
		notes:            notes,
		categoryStore:    stores.NewCategoryStore(backend),
		servingUnitStore: stores.NewServingUnitStore(backend),
		foodStore:        stores.NewFoodStore(backend),
		mealStore:        stores.NewMealStore(backend),
	}
	f.category = NewCategoryForm(f.categoryStore, client, notifier, service.NewCategoryService(db))
	f.servingUnit = NewServingUnitForm(f.servingUnitStore, client, notifier, service.NewServingUnitService(db))
	f.food = NewFoodForm(f.foodStore, f.servingUnitStore, client, notifier, service.NewFoodService(db))
	f.meal = NewMealForm(f.mealStore, client, notifier, service.NewMealService(db),
		types.TokenClaims{UserID: 1, Email: "user@example.com", Role: models.RoleUser})
	return f
}

func TestCategorySubmitClosesDialogAndResets(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.category.Create()
	assert.True(t, f.categoryStore.Get().DialogOpen)

	f.category.SetData(func(p *validation.CategoryPayload) { p.Name = "Snacks" })
	require.NoError(t, f.category.Submit(ctx))

	st := f.categoryStore.Get()
	assert.False(t, st.DialogOpen)
	assert.Nil(t, st.SelectedID)
	assert.Equal(t, "", f.category.Data().Name)

	var count int64
	require.NoError(t, f.db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitValidationFailureKeepsData(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.food.Create()
	f.food.SetData(func(p *validation.FoodPayload) {
		p.Name = "Oats"
		p.Calories = "not-a-number"
	})

	err := f.food.Submit(ctx)
	require.Error(t, err)

	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "calories")

	// The dialog stays open with the entered data intact.
	assert.True(t, f.foodStore.Get().DialogOpen)
	assert.Equal(t, "not-a-number", f.food.Data().Calories)
}

func TestEditLoadsExistingRecord(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.category.Create()
	f.category.SetData(func(p *validation.CategoryPayload) { p.Name = "Grains" })
	require.NoError(t, f.category.Submit(ctx))

	require.NoError(t, f.category.Edit(ctx, 1))
	data := f.category.Data()
	assert.Equal(t, validation.ActionUpdate, data.Action)
	assert.Equal(t, uint(1), data.ID)
	assert.Equal(t, "Grains", data.Name)
}

func TestEditMissingRecordFallsBackToCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.category.Edit(ctx, 99))
	assert.Equal(t, validation.ActionCreate, f.category.Data().Action)
}

func TestFoodSubmitSuspendedWhileNestedDialogOpen(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.food.Create()
	f.food.SetData(func(p *validation.FoodPayload) { p.Name = "Oats" })

	// Creating a serving unit inline suspends the parent submit.
	f.servingUnit.Create()
	assert.True(t, f.food.SubmitSuspended())
	assert.ErrorIs(t, f.food.Submit(ctx), ErrSubmitSuspended)

	f.servingUnit.SetData(func(p *validation.ServingUnitPayload) { p.Name = "cup" })
	require.NoError(t, f.servingUnit.Submit(ctx))

	assert.False(t, f.food.SubmitSuspended())
	require.NoError(t, f.food.Submit(ctx))
}

func TestMealFormPrefillsOwner(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.meal.Create()
	assert.Equal(t, "1", f.meal.Data().UserID)

	f.meal.SetData(func(p *validation.MealPayload) {
		p.DateTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	})
	f.meal.MealFoods.Append(validation.MealFoodPayload{FoodID: "1", ServingUnitID: "1", Amount: "2"})

	// Needs a food and serving unit to reference.
	require.NoError(t, f.db.Create(&models.Food{Name: "Oats"}).Error)
	require.NoError(t, f.db.Create(&models.ServingUnit{Name: "cup"}).Error)

	require.NoError(t, f.meal.Submit(ctx))

	var meal models.Meal
	require.NoError(t, f.db.Preload("MealFoods").First(&meal).Error)
	assert.Equal(t, uint(1), meal.UserID)
	require.Len(t, meal.MealFoods, 1)
	assert.EqualValues(t, 2, meal.MealFoods[0].Amount)
}

func TestEndToEnd(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	confirmer := confirm.New()

	// Create a category; it appears in the list query.
	f.category.Create()
	f.category.SetData(func(p *validation.CategoryPayload) { p.Name = "Snacks" })
	require.NoError(t, f.category.Submit(ctx))

	categorySvc := service.NewCategoryService(f.db)
	categories, err := categorySvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Snacks", categories[0].Name)

	// A serving unit for the food's field group.
	f.servingUnit.Create()
	f.servingUnit.SetData(func(p *validation.ServingUnitPayload) { p.Name = "g" })
	require.NoError(t, f.servingUnit.Submit(ctx))

	// Create a food in that category with one 30g serving-unit row.
	f.food.Create()
	f.food.SetData(func(p *validation.FoodPayload) {
		p.Name = "Granola Bar"
		p.Calories = "150"
		p.Protein = "2"
		p.CategoryID = "1"
	})
	f.food.ServingUnits.Append(validation.FoodServingUnitPayload{ServingUnitID: "1", Grams: "30"})
	require.NoError(t, f.food.Submit(ctx))

	var food models.Food
	require.NoError(t, f.db.Preload("ServingUnits").First(&food).Error)
	require.Len(t, food.ServingUnits, 1)
	assert.EqualValues(t, 30, food.ServingUnits[0].Grams)

	// A couple more foods for the range filter.
	for _, extra := range []struct {
		name     string
		calories string
	}{{"Apple", "52"}, {"Oats", "389"}} {
		f.food.Create()
		f.food.SetData(func(p *validation.FoodPayload) {
			p.Name = extra.name
			p.Calories = extra.calories
		})
		require.NoError(t, f.food.Submit(ctx))
	}

	// Deleting asks for confirmation; cancelling leaves everything alone.
	f.food.Delete(ctx, food.ID, confirmer)
	_, open := confirmer.Pending()
	require.True(t, open)
	confirmer.Cancel()

	var count int64
	require.NoError(t, f.db.Model(&models.Food{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	// Range filter [100,200] committed through the coordinator.
	coordinator := filter.New(f.foodStore, filter.WithDelay(time.Millisecond))
	defer coordinator.Close()
	coordinator.EditInput(func(in *types.FoodFilters) {
		in.CaloriesRange = [2]string{"100", "200"}
		in.SortBy = types.SortByCalories
		in.SortOrder = types.SortAsc
	})
	require.Empty(t, coordinator.Submit())
	assert.True(t, coordinator.Modified())

	page, err := f.food.List(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	assert.Equal(t, "Granola Bar", page.Data[0].Name)

	// Confirming the delete removes the food and its serving units.
	f.food.Delete(ctx, food.ID, confirmer)
	confirmer.Confirm()

	require.NoError(t, f.db.Model(&models.Food{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
	require.NoError(t, f.db.Model(&models.FoodServingUnit{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The delete invalidated the food list; the next read sees the new set.
	page, err = f.food.List(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)

	// The failure-free run produced only success notifications.
	for _, note := range *f.notes {
		assert.Equal(t, notify.LevelSuccess, note.Level)
	}
}
