package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nutridash/backend/internal/types"
)

func TestFoodPayloadCreate(t *testing.T) {
	p := FoodPayload{
		Action:   ActionCreate,
		Name:     "Oatmeal",
		Calories: "150",
		Protein:  "2",
		ServingUnits: []FoodServingUnitPayload{
			{ServingUnitID: "1", Grams: "30"},
		},
	}
	assert.Nil(t, p.Validate())
}

func TestFoodPayloadCreateForbidsID(t *testing.T) {
	p := FoodPayload{Action: ActionCreate, ID: 7, Name: "Oatmeal"}
	errs := p.Validate()
	assert.Contains(t, errs, "id")
}

func TestFoodPayloadUpdateRequiresID(t *testing.T) {
	p := FoodPayload{Action: ActionUpdate, Name: "Oatmeal"}
	errs := p.Validate()
	assert.Contains(t, errs, "id")
}

func TestFoodPayloadRejectsBadNumbers(t *testing.T) {
	p := FoodPayload{Action: ActionCreate, Name: "Oatmeal", Calories: "lots"}
	errs := p.Validate()
	assert.Contains(t, errs, "calories")
}

func TestFoodPayloadValidatesNestedRows(t *testing.T) {
	p := FoodPayload{
		Action: ActionCreate,
		Name:   "Oatmeal",
		ServingUnits: []FoodServingUnitPayload{
			{ServingUnitID: "", Grams: "abc"},
		},
	}
	errs := p.Validate()
	assert.NotEmpty(t, errs)
}

func TestMealPayload(t *testing.T) {
	p := MealPayload{
		Action:   ActionCreate,
		UserID:   "3",
		DateTime: time.Now(),
		MealFoods: []MealFoodPayload{
			{FoodID: "1", ServingUnitID: "2", Amount: "1.5"},
		},
	}
	assert.Nil(t, p.Validate())

	p.UserID = ""
	assert.Contains(t, p.Validate(), "userId")
}

func TestSignUpPassword(t *testing.T) {
	p := SignUpPayload{Name: "Ana", Email: "ana@example.com", Password: "weak"}
	errs := p.Validate()
	assert.Contains(t, errs, "password")

	p.Password = "Str0ng!pass"
	assert.Nil(t, p.Validate())
}

func TestValidateFoodFilters(t *testing.T) {
	f := types.DefaultFoodFilters()
	assert.Nil(t, ValidateFoodFilters(f))

	f.CaloriesRange[0] = "not-a-number"
	assert.Contains(t, ValidateFoodFilters(f), "caloriesRange.0")

	f = types.DefaultFoodFilters()
	f.PageSize = 0
	assert.Contains(t, ValidateFoodFilters(f), "pageSize")

	f = types.DefaultFoodFilters()
	f.PageSize = 101
	assert.Contains(t, ValidateFoodFilters(f), "pageSize")

	f = types.DefaultFoodFilters()
	f.Page = 0
	assert.Contains(t, ValidateFoodFilters(f), "page")

	f = types.DefaultFoodFilters()
	f.SortBy = "sugar"
	assert.Contains(t, ValidateFoodFilters(f), "sortBy")
}

func TestCoercions(t *testing.T) {
	assert.Equal(t, 150.0, ToNumberSafe("150"))
	assert.Equal(t, 0.0, ToNumberSafe(""))
	assert.Equal(t, 0.0, ToNumberSafe("junk"))
	assert.Equal(t, "150", ToStringSafe(150))
	assert.Equal(t, "1.5", ToStringSafe(1.5))
	assert.Equal(t, uint(12), ToIDSafe("12"))
	assert.Equal(t, uint(0), ToIDSafe(""))
	assert.Equal(t, "", IDToString(0))
	assert.Equal(t, "12", IDToString(12))
}
