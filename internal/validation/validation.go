// Package validation defines the payload schemas for every entity and the
// string coercions between form values and stored numbers. Each payload
// carries a discriminated create/update action: update requires an
// identifier, create forbids one. Validation failures surface as per-field
// messages, never as a hard error.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nutridash/backend/internal/types"
)

// Action discriminates a create payload from an update payload.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// Validatable is any payload that can report per-field problems.
type Validatable interface {
	Validate() FieldErrors
}

// FieldErrors maps a field name to a human-readable message. A nil or
// empty map means the payload is valid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// numrange: form-friendly numeric string between 0 and 9999.
	_ = v.RegisterValidation("numrange", func(fl validator.FieldLevel) bool {
		return zeroTo9999.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("emailpattern", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// structErrors runs the tag-based rules and flattens the result into
// field-level messages.
func structErrors(s any) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fieldName(fe)] = message(fe)
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Strip the leading struct name: "FoodPayload.Name" -> "name".
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns[:1]) + ns[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("minimum %s", fe.Param())
	case "max":
		return fmt.Sprintf("maximum %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "numrange":
		return "must be a number between 0 and 9999"
	case "emailpattern":
		return "must be a valid email address"
	default:
		return "invalid value"
	}
}

// actionErrors enforces the create/update discrimination.
func actionErrors(action Action, id uint) FieldErrors {
	switch action {
	case ActionCreate:
		if id != 0 {
			return FieldErrors{"id": "must not be set when creating"}
		}
	case ActionUpdate:
		if id == 0 {
			return FieldErrors{"id": "required when updating"}
		}
	default:
		return FieldErrors{"action": "must be one of: create update"}
	}
	return nil
}

func merge(errs ...FieldErrors) FieldErrors {
	var out FieldErrors
	for _, e := range errs {
		for k, v := range e {
			if out == nil {
				out = FieldErrors{}
			}
			if _, dup := out[k]; !dup {
				out[k] = v
			}
		}
	}
	return out
}

// ValidateFoodFilters checks a transient filter form against the filter
// schema. The committed filter object in a store has always passed this.
func ValidateFoodFilters(f types.FoodFilters) FieldErrors {
	errs := FieldErrors{}
	for i, bound := range f.CaloriesRange {
		if !zeroTo9999.MatchString(bound) {
			errs[fmt.Sprintf("caloriesRange.%d", i)] = "must be a number between 0 and 9999"
		}
	}
	for i, bound := range f.ProteinRange {
		if !zeroTo9999.MatchString(bound) {
			errs[fmt.Sprintf("proteinRange.%d", i)] = "must be a number between 0 and 9999"
		}
	}
	switch f.SortBy {
	case types.SortByName, types.SortByCalories, types.SortByProtein,
		types.SortByCarbohydrates, types.SortByFat:
	default:
		errs["sortBy"] = "unknown sort key"
	}
	if f.SortOrder != types.SortAsc && f.SortOrder != types.SortDesc {
		errs["sortOrder"] = "must be asc or desc"
	}
	if f.Page < 1 {
		errs["page"] = "minimum 1"
	}
	if f.PageSize < types.MinPageSize || f.PageSize > types.MaxPageSize {
		errs["pageSize"] = fmt.Sprintf("must be between %d and %d", types.MinPageSize, types.MaxPageSize)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
