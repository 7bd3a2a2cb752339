package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/store"
	"github.com/nutridash/backend/internal/ui/stores"
)

func newCoordinator(t *testing.T, delay time.Duration) (*Coordinator, *stores.FoodStore) {
	t.Helper()
	foodStore := stores.NewFoodStore(store.NewMemoryBackend())
	c := New(foodStore, WithDelay(delay))
	t.Cleanup(c.Close)
	return c, foodStore
}

func TestDebounceCollapsesKeystrokes(t *testing.T) {
	c, foodStore := newCoordinator(t, 30*time.Millisecond)

	commits := 0
	cancel := foodStore.Subscribe(func(stores.FoodState) { commits++ })
	defer cancel()

	for _, term := range []string{"o", "oa", "oat", "oats"} {
		c.SetSearchInput(term)
		time.Sleep(5 * time.Millisecond)
	}

	// Well inside the debounce window, nothing committed yet.
	assert.Equal(t, 0, commits)
	assert.Equal(t, "", foodStore.Get().Filters.SearchTerm)

	assert.Eventually(t, func() bool {
		return foodStore.Get().Filters.SearchTerm == "oats"
	}, time.Second, 5*time.Millisecond)

	time.Sleep(2 * c.delay)
	assert.Equal(t, 1, commits)
}

func TestSubmitReplacesWholeFilterAndClosesPanel(t *testing.T) {
	c, foodStore := newCoordinator(t, time.Millisecond)

	c.OpenPanel()
	c.EditInput(func(f *types.FoodFilters) {
		f.CaloriesRange = [2]string{"100", "200"}
		f.CategoryID = "3"
		f.SortBy = types.SortByCalories
		f.SortOrder = types.SortAsc
	})

	// Every subscriber sees either the old or the new filter object whole.
	var snapshots []types.FoodFilters
	cancel := foodStore.Subscribe(func(st stores.FoodState) {
		snapshots = append(snapshots, st.Filters)
	})
	defer cancel()

	errs := c.Submit()
	require.Empty(t, errs)

	st := foodStore.Get()
	assert.False(t, st.FilterPanelOpen)
	assert.Equal(t, [2]string{"100", "200"}, st.Filters.CaloriesRange)
	assert.Equal(t, "3", st.Filters.CategoryID)
	assert.Equal(t, types.SortByCalories, st.Filters.SortBy)

	require.Len(t, snapshots, 1)
	assert.Equal(t, st.Filters, snapshots[0])
}

func TestSubmitRejectsInvalidInputWithoutCommitting(t *testing.T) {
	c, foodStore := newCoordinator(t, time.Millisecond)

	before := foodStore.Get().Filters
	c.EditInput(func(f *types.FoodFilters) {
		f.CaloriesRange = [2]string{"abc", "200"}
		f.PageSize = 0
	})

	errs := c.Submit()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "caloriesRange.0")
	assert.Contains(t, errs, "pageSize")
	assert.Equal(t, before, foodStore.Get().Filters)
}

func TestResetRestoresDefaultsWithoutCommitting(t *testing.T) {
	c, foodStore := newCoordinator(t, time.Millisecond)

	c.EditInput(func(f *types.FoodFilters) { f.CategoryID = "5" })
	require.Empty(t, c.Submit())
	committed := foodStore.Get().Filters

	c.Reset()
	assert.Equal(t, types.DefaultFoodFilters(), c.Input())
	assert.Equal(t, committed, foodStore.Get().Filters)
}

func TestClosePanelResyncsInputFromCommitted(t *testing.T) {
	c, foodStore := newCoordinator(t, time.Millisecond)

	c.OpenPanel()
	c.EditInput(func(f *types.FoodFilters) { f.CategoryID = "9" })
	c.ClosePanel()

	assert.False(t, foodStore.Get().FilterPanelOpen)
	assert.Equal(t, foodStore.Get().Filters, c.Input())
	assert.Equal(t, "", c.Input().CategoryID)
}

func TestModifiedTracksDeepInequality(t *testing.T) {
	c, foodStore := newCoordinator(t, time.Millisecond)

	assert.False(t, c.Modified())

	filters := types.DefaultFoodFilters()
	filters.CategoryID = "3"
	foodStore.SetFilters(filters)
	assert.True(t, c.Modified())

	filters.CategoryID = ""
	foodStore.SetFilters(filters)
	assert.False(t, c.Modified())
}
