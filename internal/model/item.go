package model

import (
	"encoding/json"
	"fmt"
)

// ItemID identifies an item. The API has served ids both as JSON strings and
// as numbers, so both decode into the same string form.
type ItemID string

func (id *ItemID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item id %s: %w", b, err)
	}
	*id = ItemID(n.String())
	return nil
}

// Item is the domain model for a list entry. Items are never edited locally,
// only moved between lists.
type Item struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ListNumber  int    `json:"list_number"`
}

// Label is the one-line form used by every renderer.
func (it Item) Label() string {
	if it.Description == "" {
		return it.Name
	}
	return it.Name + " - " + it.Description
}
