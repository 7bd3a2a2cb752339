package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmRunsCallbackAndClearsSlot(t *testing.T) {
	c := New()

	confirmed := false
	c.Request(Config{
		Title:     "Delete food",
		OnConfirm: func() { confirmed = true },
	})

	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "Delete food", pending.Title)

	c.Confirm()
	assert.True(t, confirmed)

	_, ok = c.Pending()
	assert.False(t, ok)
}

func TestCancelRunsOnCancelAndClearsSlot(t *testing.T) {
	c := New()

	confirmed, cancelled := false, false
	c.Request(Config{
		OnConfirm: func() { confirmed = true },
		OnCancel:  func() { cancelled = true },
	})

	c.Cancel()
	assert.False(t, confirmed)
	assert.True(t, cancelled)

	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestDismissBehavesLikeCancel(t *testing.T) {
	c := New()

	cancelled := false
	c.Request(Config{OnCancel: func() { cancelled = true }})

	c.Dismiss()
	assert.True(t, cancelled)
	_, ok := c.Pending()
	assert.False(t, ok)
}

func TestSecondRequestOverwritesFirst(t *testing.T) {
	c := New()

	firstConfirmed, secondConfirmed := false, false
	c.Request(Config{Title: "first", OnConfirm: func() { firstConfirmed = true }})
	c.Request(Config{Title: "second", OnConfirm: func() { secondConfirmed = true }})

	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "second", pending.Title)

	c.Confirm()
	assert.False(t, firstConfirmed)
	assert.True(t, secondConfirmed)
}

func TestResolvingWithoutCallbacksIsSafe(t *testing.T) {
	c := New()

	c.Request(Config{Title: "bare"})
	c.Confirm()

	c.Request(Config{Title: "bare again"})
	c.Cancel()

	// Resolving an empty slot is a no-op.
	c.Confirm()
	c.Cancel()
}

func TestRequestFromConfirmCallbackLandsInEmptySlot(t *testing.T) {
	c := New()

	c.Request(Config{
		OnConfirm: func() {
			c.Request(Config{Title: "follow-up"})
		},
	})
	c.Confirm()

	pending, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "follow-up", pending.Title)
}
