package types

import "time"

// Sort keys accepted by the food list query.
const (
	SortByName          = "name"
	SortByCalories      = "calories"
	SortByProtein       = "protein"
	SortByCarbohydrates = "carbohydrates"
	SortByFat           = "fat"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Page size bounds for the food list. The lower bound is 1: a page that
// can hold nothing is treated as invalid input rather than an empty page.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// FoodFilters is the filter object for the food list query. Ranges are kept
// as string pairs exactly as entered in the filter form; an empty bound
// means "unbounded". A FoodFilters value held in a store has always passed
// validation; raw, possibly invalid values live only in transient form
// state.
type FoodFilters struct {
	SearchTerm    string    `json:"searchTerm"`
	CaloriesRange [2]string `json:"caloriesRange"`
	ProteinRange  [2]string `json:"proteinRange"`
	CategoryID    string    `json:"categoryId"`
	SortBy        string    `json:"sortBy"`
	SortOrder     string    `json:"sortOrder"`
	Page          int       `json:"page"`
	PageSize      int       `json:"pageSize"`
}

// DefaultFoodFilters returns the fixed default filter object. The
// filter-modified indicator compares the committed filters against this
// value.
func DefaultFoodFilters() FoodFilters {
	return FoodFilters{
		SearchTerm:    "",
		CaloriesRange: [2]string{"0", "9999"},
		ProteinRange:  [2]string{"0", "9999"},
		CategoryID:    "",
		SortBy:        SortByName,
		SortOrder:     SortDesc,
		Page:          1,
		PageSize:      12,
	}
}

// MealFilters narrows the meal list to one calendar day.
type MealFilters struct {
	Day time.Time `json:"day"`
}

// DefaultMealFilters selects today.
func DefaultMealFilters() MealFilters {
	return MealFilters{Day: time.Now()}
}
