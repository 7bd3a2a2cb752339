// Package fieldgroup manages the repeatable row lists embedded in a
// larger submission, such as the serving-unit rows inside a food form.
// Each entry carries a render key that is stable across removals, and
// fields are addressed by (group, entry key, field) instead of by
// interpolating the row's current index into a path string.
package fieldgroup

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Entry is one row of a group. Key identifies the row for rendering and
// field addressing regardless of where it currently sits in the list.
type Entry[E any] struct {
	Key   string
	Value E
}

type Group[E any] struct {
	mu      sync.Mutex
	name    string
	entries []Entry[E]
}

func New[E any](name string) *Group[E] {
	return &Group[E]{name: name}
}

func (g *Group[E]) Name() string {
	return g.name
}

// Append adds one entry with the given defaults and returns it.
func (g *Group[E]) Append(value E) Entry[E] {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry := Entry[E]{Key: uuid.NewString(), Value: value}
	g.entries = append(g.entries, entry)
	return entry
}

// Remove deletes the entry at index i, shifting later entries up. The
// shift and the removal are one operation under the lock, so no reader
// observes an entry bound to another row's position.
func (g *Group[E]) Remove(i int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.entries) {
		return false
	}
	g.entries = append(g.entries[:i], g.entries[i+1:]...)
	return true
}

// Update applies recipe to the value at index i.
func (g *Group[E]) Update(i int, recipe func(*E)) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i < 0 || i >= len(g.entries) {
		return false
	}
	recipe(&g.entries[i].Value)
	return true
}

// Entries returns the rows in order.
func (g *Group[E]) Entries() []Entry[E] {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Entry[E], len(g.entries))
	copy(out, g.entries)
	return out
}

// Values returns the row values in order, without render keys, for
// embedding in a submission payload.
func (g *Group[E]) Values() []E {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]E, len(g.entries))
	for i, e := range g.entries {
		out[i] = e.Value
	}
	return out
}

func (g *Group[E]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// Empty reports the explicit zero-entries condition that list renderers
// show a placeholder row for.
func (g *Group[E]) Empty() bool {
	return g.Len() == 0
}

// Clear drops every entry.
func (g *Group[E]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = nil
}

// Reset replaces the rows with values, minting fresh render keys. Used
// when loading an existing record into a form.
func (g *Group[E]) Reset(values []E) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = make([]Entry[E], len(values))
	for i, v := range values {
		g.entries[i] = Entry[E]{Key: uuid.NewString(), Value: v}
	}
}

// Path names one field of one row for the parent form.
func (g *Group[E]) Path(entryKey, field string) string {
	return fmt.Sprintf("%s.%s.%s", g.name, entryKey, field)
}
