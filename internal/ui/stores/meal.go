package stores

import (
	"time"

	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/store"
)

// MealState tracks the meal dialog and the selected day.
type MealState struct {
	SelectedID *uint             `json:"selectedId"`
	DialogOpen bool              `json:"dialogOpen"`
	Filters    types.MealFilters `json:"filters"`
}

type MealStore struct {
	*store.Store[MealState]
}

func NewMealStore(backend store.Backend) *MealStore {
	return &MealStore{Store: store.New(
		MealState{Filters: types.DefaultMealFilters()},
		store.Config{
			Name:               "meals",
			Backend:            backend,
			ExcludeFromPersist: []string{"filters"},
		},
	)}
}

func (s *MealStore) OpenDialog() {
	s.Set(func(st *MealState) { st.DialogOpen = true })
}

func (s *MealStore) OpenDialogFor(id uint) {
	s.Set(func(st *MealState) {
		st.SelectedID = &id
		st.DialogOpen = true
	})
}

// CloseDialog closes the dialog and clears the selection in one commit.
func (s *MealStore) CloseDialog() {
	s.Set(func(st *MealState) {
		st.DialogOpen = false
		st.SelectedID = nil
	})
}

func (s *MealStore) SetDay(day time.Time) {
	s.Set(func(st *MealState) { st.Filters.Day = day })
}
