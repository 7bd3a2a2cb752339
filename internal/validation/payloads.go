package validation

import "time"

// CategoryPayload is a form submission for a category.
type CategoryPayload struct {
	Action Action `json:"action"`
	ID     uint   `json:"id"`
	Name   string `json:"name" validate:"required,max=255"`
}

func (p CategoryPayload) Validate() FieldErrors {
	return merge(actionErrors(p.Action, p.ID), structErrors(p))
}

// ServingUnitPayload is a form submission for a serving unit.
type ServingUnitPayload struct {
	Action Action `json:"action"`
	ID     uint   `json:"id"`
	Name   string `json:"name" validate:"required,max=255"`
}

func (p ServingUnitPayload) Validate() FieldErrors {
	return merge(actionErrors(p.Action, p.ID), structErrors(p))
}

// FoodServingUnitPayload is one row of the serving-unit field group inside
// a food submission.
type FoodServingUnitPayload struct {
	ServingUnitID string `json:"foodServingUnitId" validate:"required"`
	Grams         string `json:"grams" validate:"numrange"`
}

// FoodPayload is a form submission for a food. Numeric fields travel as
// strings and are coerced at the database boundary.
type FoodPayload struct {
	Action        Action                   `json:"action"`
	ID            uint                     `json:"id"`
	Name          string                   `json:"name" validate:"required,max=255"`
	Calories      string                   `json:"calories" validate:"numrange"`
	Protein       string                   `json:"protein" validate:"numrange"`
	Fat           string                   `json:"fat" validate:"numrange"`
	Carbohydrates string                   `json:"carbohydrates" validate:"numrange"`
	Fiber         string                   `json:"fiber" validate:"numrange"`
	Sugar         string                   `json:"sugar" validate:"numrange"`
	CategoryID    string                   `json:"categoryId"`
	ServingUnits  []FoodServingUnitPayload `json:"foodServingUnits" validate:"dive"`
}

func (p FoodPayload) Validate() FieldErrors {
	return merge(actionErrors(p.Action, p.ID), structErrors(p))
}

// MealFoodPayload is one row of the meal-food field group inside a meal
// submission.
type MealFoodPayload struct {
	FoodID        string `json:"foodId" validate:"required"`
	ServingUnitID string `json:"servingUnitId" validate:"required"`
	Amount        string `json:"amount" validate:"numrange"`
}

// MealPayload is a form submission for a meal.
type MealPayload struct {
	Action    Action            `json:"action"`
	ID        uint              `json:"id"`
	UserID    string            `json:"userId" validate:"required"`
	DateTime  time.Time         `json:"dateTime" validate:"required"`
	MealFoods []MealFoodPayload `json:"mealFoods" validate:"dive"`
}

func (p MealPayload) Validate() FieldErrors {
	return merge(actionErrors(p.Action, p.ID), structErrors(p))
}

// SignUpPayload is a new account submission.
type SignUpPayload struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,emailpattern"`
	Password string `json:"password" validate:"required"`
}

func (p SignUpPayload) Validate() FieldErrors {
	errs := structErrors(p)
	if _, taken := errs["password"]; !taken {
		if msg := PasswordMessage(p.Password); msg != "" {
			errs = merge(errs, FieldErrors{"password": msg})
		}
	}
	return errs
}

// SignInPayload is a login submission.
type SignInPayload struct {
	Email    string `json:"email" validate:"required,emailpattern"`
	Password string `json:"password" validate:"required"`
}

func (p SignInPayload) Validate() FieldErrors {
	return structErrors(p)
}
