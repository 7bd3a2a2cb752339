// Package filter bridges raw, per-keystroke filter input and the validated
// filter object held by the food store. Panel edits accumulate in
// transient input and reach the store only on an explicit, validated
// submit; the search term alone travels through a debounce so the list is
// not re-queried on every keystroke.
package filter

import (
	"reflect"
	"sync"
	"time"

	"github.com/nutridash/backend/internal/types"
	"github.com/nutridash/backend/internal/ui/stores"
	"github.com/nutridash/backend/internal/validation"
)

// DebounceDelay is measured from the last keystroke.
const DebounceDelay = 400 * time.Millisecond

type Coordinator struct {
	mu       sync.Mutex
	store    *stores.FoodStore
	input    types.FoodFilters
	debounce *time.Timer
	delay    time.Duration
}

type Option func(*Coordinator)

// WithDelay overrides the debounce delay. Tests use short delays.
func WithDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.delay = d }
}

func New(store *stores.FoodStore, opts ...Option) *Coordinator {
	c := &Coordinator{
		store: store,
		input: store.Get().Filters,
		delay: DebounceDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input returns the current transient input.
func (c *Coordinator) Input() types.FoodFilters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// EditInput applies recipe to the transient input without committing
// anything to the store.
func (c *Coordinator) EditInput(recipe func(*types.FoodFilters)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	recipe(&c.input)
}

// SetSearchInput records a keystroke and restarts the debounce timer.
// When the timer fires, only the search term is committed; a new
// keystroke before that cancels the pending commit.
func (c *Coordinator) SetSearchInput(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.input.SearchTerm = term
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		committed := c.input.SearchTerm
		c.mu.Unlock()
		c.store.SetSearchTerm(committed)
	})
}

// Submit validates the whole transient input. On success the committed
// filter object is replaced in a single commit and the panel closes; on
// failure the field errors are returned and nothing is committed.
func (c *Coordinator) Submit() validation.FieldErrors {
	c.mu.Lock()
	input := c.input
	c.mu.Unlock()

	if errs := validation.ValidateFoodFilters(input); len(errs) > 0 {
		return errs
	}

	c.store.Set(func(st *stores.FoodState) {
		st.Filters = input
		st.FilterPanelOpen = false
	})
	return nil
}

// Reset restores the transient input to the defaults. It does not commit;
// the committed filters change only on the next successful Submit.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = types.DefaultFoodFilters()
}

func (c *Coordinator) OpenPanel() {
	c.store.OpenFilterPanel()
}

// ClosePanel discards unsaved edits: the transient input is re-synced
// from the committed filters.
func (c *Coordinator) ClosePanel() {
	c.store.CloseFilterPanel()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = c.store.Get().Filters
}

// Modified reports whether the committed filters differ from the
// defaults. List pages use it to highlight the filter button.
func (c *Coordinator) Modified() bool {
	return !reflect.DeepEqual(c.store.Get().Filters, types.DefaultFoodFilters())
}

// Close releases the pending debounce timer, if any.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}
