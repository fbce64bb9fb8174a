package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDecodesStringAndNumberIDs(t *testing.T) {
	var items []Item
	err := json.Unmarshal([]byte(`[
		{"id":"a1","name":"Milk","description":"2L","list_number":1},
		{"id":42,"name":"Bread","description":"","list_number":2}
	]`), &items)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, ItemID("a1"), items[0].ID)
	assert.Equal(t, 1, items[0].ListNumber)
	assert.Equal(t, ItemID("42"), items[1].ID)
	assert.Equal(t, 2, items[1].ListNumber)
}

func TestItemRejectsObjectID(t *testing.T) {
	var it Item
	err := json.Unmarshal([]byte(`{"id":{"x":1}}`), &it)
	require.Error(t, err)
}

func TestItemLabel(t *testing.T) {
	assert.Equal(t, "Milk - 2L", Item{Name: "Milk", Description: "2L"}.Label())
	assert.Equal(t, "Bread", Item{Name: "Bread"}.Label())
}
