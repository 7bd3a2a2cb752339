package stores

import (
	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/store"
)

// FoodState adds the committed filter object and the filter-panel flag to
// the selection/dialog pair. Filters are deliberately not persisted; a
// fresh session starts from the default filter.
type FoodState struct {
	SelectedID      *uint             `json:"selectedId"`
	DialogOpen      bool              `json:"dialogOpen"`
	FilterPanelOpen bool              `json:"filterPanelOpen"`
	Filters         types.FoodFilters `json:"filters"`
}

type FoodStore struct {
	*store.Store[FoodState]
}

func NewFoodStore(backend store.Backend) *FoodStore {
	return &FoodStore{Store: store.New(
		FoodState{Filters: types.DefaultFoodFilters()},
		store.Config{
			Name:               "foods",
			Backend:            backend,
			ExcludeFromPersist: []string{"filters"},
		},
	)}
}

func (s *FoodStore) OpenDialog() {
	s.Set(func(st *FoodState) { st.DialogOpen = true })
}

func (s *FoodStore) OpenDialogFor(id uint) {
	s.Set(func(st *FoodState) {
		st.SelectedID = &id
		st.DialogOpen = true
	})
}

// CloseDialog closes the dialog and clears the selection in one commit.
func (s *FoodStore) CloseDialog() {
	s.Set(func(st *FoodState) {
		st.DialogOpen = false
		st.SelectedID = nil
	})
}

func (s *FoodStore) OpenFilterPanel() {
	s.Set(func(st *FoodState) { st.FilterPanelOpen = true })
}

func (s *FoodStore) CloseFilterPanel() {
	s.Set(func(st *FoodState) { st.FilterPanelOpen = false })
}

// SetFilters replaces the whole committed filter object in one commit.
// Callers are responsible for passing a validated value.
func (s *FoodStore) SetFilters(filters types.FoodFilters) {
	s.Set(func(st *FoodState) { st.Filters = filters })
}

// SetSearchTerm updates only the search field of the committed filters and
// rewinds to the first page, leaving everything else untouched.
func (s *FoodStore) SetSearchTerm(term string) {
	s.Set(func(st *FoodState) {
		st.Filters.SearchTerm = term
		st.Filters.Page = 1
	})
}

func (s *FoodStore) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Set(func(st *FoodState) { st.Filters.Page = page })
}

func (s *FoodStore) NextPage() {
	s.Set(func(st *FoodState) { st.Filters.Page++ })
}

// PrevPage steps back one page, clamping at page 1. The upper bound is the
// data source's concern; consumers disable "next" at totalPages.
func (s *FoodStore) PrevPage() {
	s.Set(func(st *FoodState) {
		if st.Filters.Page > 1 {
			st.Filters.Page--
		}
	})
}
