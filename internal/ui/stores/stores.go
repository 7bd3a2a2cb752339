// Package stores holds the per-entity UI state containers: which record is
// selected, whether its dialog is open and, for list pages, the committed
// filter object. Closing a dialog always clears the selection; the two are
// coupled in one compound transition rather than by caller convention.
package stores

import (
	"github.com/nutridash/backend/internal/ui/store"
)

// EntityState is the selection/dialog pair shared by every entity store.
// A nil SelectedID means "creating new"; a value means "editing existing".
type EntityState struct {
	SelectedID *uint `json:"selectedId"`
	DialogOpen bool  `json:"dialogOpen"`
}

// CategoryStore tracks the category dialog.
type CategoryStore struct {
	*store.Store[EntityState]
}

func NewCategoryStore(backend store.Backend) *CategoryStore {
	return &CategoryStore{Store: store.New(EntityState{}, store.Config{
		Name:    "categories",
		Backend: backend,
	})}
}

func (s *CategoryStore) OpenDialog() {
	s.Set(func(st *EntityState) { st.DialogOpen = true })
}

func (s *CategoryStore) OpenDialogFor(id uint) {
	s.Set(func(st *EntityState) {
		st.SelectedID = &id
		st.DialogOpen = true
	})
}

// CloseDialog closes the dialog and clears the selection in one commit.
func (s *CategoryStore) CloseDialog() {
	s.Set(func(st *EntityState) {
		st.DialogOpen = false
		st.SelectedID = nil
	})
}

// ServingUnitStore tracks the serving-unit dialog.
type ServingUnitStore struct {
	*store.Store[EntityState]
}

func NewServingUnitStore(backend store.Backend) *ServingUnitStore {
	return &ServingUnitStore{Store: store.New(EntityState{}, store.Config{
		Name:    "servingUnits",
		Backend: backend,
	})}
}

func (s *ServingUnitStore) OpenDialog() {
	s.Set(func(st *EntityState) { st.DialogOpen = true })
}

func (s *ServingUnitStore) OpenDialogFor(id uint) {
	s.Set(func(st *EntityState) {
		st.SelectedID = &id
		st.DialogOpen = true
	})
}

func (s *ServingUnitStore) CloseDialog() {
	s.Set(func(st *EntityState) {
		st.DialogOpen = false
		st.SelectedID = nil
	})
}
