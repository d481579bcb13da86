package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoBusinesses() []Business {
	return []Business{
		{ID: "b1", Name: "Shanti Tiffins", IsActive: true},
		{ID: "b2", Name: "Udupi Grand", IsActive: true},
		{ID: "b3", Name: "Green Basket", IsActive: false},
	}
}

func TestPatchByID_PatchesExactlyOne(t *testing.T) {
	items := demoBusinesses()

	ok := PatchByID(items, func(b Business) string { return b.ID }, "b2", func(b *Business) {
		b.Name = "Udupi Grand Deluxe"
	})

	require.True(t, ok)
	assert.Equal(t, "Shanti Tiffins", items[0].Name)
	assert.Equal(t, "Udupi Grand Deluxe", items[1].Name)
	assert.Equal(t, "Green Basket", items[2].Name)
}

func TestPatchByID_UnknownID(t *testing.T) {
	items := demoBusinesses()

	ok := PatchByID(items, func(b Business) string { return b.ID }, "nope", func(b *Business) {
		b.Name = "changed"
	})

	assert.False(t, ok)
	assert.Equal(t, demoBusinesses(), items)
}

func TestRemoveByID_PreservesSiblingOrder(t *testing.T) {
	items := demoBusinesses()

	out, ok := RemoveByID(items, func(b Business) string { return b.ID }, "b2")

	require.True(t, ok)
	require.Len(t, out, 2)
	assert.Equal(t, "b1", out[0].ID)
	assert.Equal(t, "b3", out[1].ID)
}

func TestRemoveByID_UnknownID(t *testing.T) {
	items := demoBusinesses()

	out, ok := RemoveByID(items, func(b Business) string { return b.ID }, "nope")

	assert.False(t, ok)
	assert.Equal(t, items, out)
}

func TestToggleActive_FlipsInPlace(t *testing.T) {
	items := demoBusinesses()

	require.True(t, ToggleActive(items, "b3"))
	assert.True(t, items[2].IsActive)

	require.True(t, ToggleActive(items, "b3"))
	assert.False(t, items[2].IsActive)

	// Siblings stay untouched and in order.
	assert.Equal(t, "b1", items[0].ID)
	assert.True(t, items[0].IsActive)
	assert.Equal(t, "b2", items[1].ID)
	assert.True(t, items[1].IsActive)
}
