package fieldgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutridash/backend/internal/validation"
)

func TestAppendThenRemoveKeepsIdentityAndOrder(t *testing.T) {
	g := New[validation.FoodServingUnitPayload]("foodServingUnits")

	var keys []string
	for i := 0; i < 4; i++ {
		entry := g.Append(validation.FoodServingUnitPayload{Grams: "0"})
		keys = append(keys, entry.Key)
	}
	require.Equal(t, 4, g.Len())

	require.True(t, g.Remove(1))

	entries := g.Entries()
	require.Len(t, entries, 3)
	// Remaining rows keep their keys; positions shift up.
	assert.Equal(t, keys[0], entries[0].Key)
	assert.Equal(t, keys[2], entries[1].Key)
	assert.Equal(t, keys[3], entries[2].Key)
}

func TestRemoveOutOfRange(t *testing.T) {
	g := New[string]("tags")
	g.Append("a")

	assert.False(t, g.Remove(-1))
	assert.False(t, g.Remove(1))
	assert.Equal(t, 1, g.Len())
}

func TestPathUsesEntryKeyNotIndex(t *testing.T) {
	g := New[validation.FoodServingUnitPayload]("foodServingUnits")

	first := g.Append(validation.FoodServingUnitPayload{})
	second := g.Append(validation.FoodServingUnitPayload{})

	pathBefore := g.Path(second.Key, "grams")
	require.True(t, g.Remove(0))
	pathAfter := g.Path(second.Key, "grams")

	// The surviving row's address does not change when rows above it go.
	assert.Equal(t, pathBefore, pathAfter)
	assert.Equal(t, "foodServingUnits."+second.Key+".grams", pathAfter)
	assert.NotContains(t, pathAfter, first.Key)
}

func TestUpdateEditsValueInPlace(t *testing.T) {
	g := New[validation.FoodServingUnitPayload]("foodServingUnits")
	g.Append(validation.FoodServingUnitPayload{Grams: "0"})

	require.True(t, g.Update(0, func(v *validation.FoodServingUnitPayload) {
		v.ServingUnitID = "2"
		v.Grams = "30"
	}))

	values := g.Values()
	require.Len(t, values, 1)
	assert.Equal(t, "2", values[0].ServingUnitID)
	assert.Equal(t, "30", values[0].Grams)
}

func TestResetMintsFreshKeys(t *testing.T) {
	g := New[string]("tags")
	old := g.Append("stale")

	g.Reset([]string{"a", "b"})
	entries := g.Entries()
	require.Len(t, entries, 2)
	assert.NotEqual(t, old.Key, entries[0].Key)
	assert.Equal(t, "a", entries[0].Value)
	assert.Equal(t, "b", entries[1].Value)

	g.Clear()
	assert.True(t, g.Empty())
}
