// Package source loads the initial item set, either from the list API or
// from a local JSON document with the same shape.
package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/lists/internal/model"
)

// FetchError wraps any failure to obtain or decode the item set.
type FetchError struct {
	Op  string // "request", "status", "read" or "decode"
	Src string // endpoint or file path
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.Src, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

var errNoLists = errors.New(`response has no "lists" field`)

// decode reads a {"lists": [...]} document. A missing or null "lists" field
// is an error; an empty array is not. Every item needs its own id, since ids
// are how items are tracked between lists.
func decode(r io.Reader) ([]model.Item, error) {
	var doc struct {
		Lists *[]model.Item `json:"lists"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	if doc.Lists == nil {
		return nil, errNoLists
	}
	seen := make(map[model.ItemID]int, len(*doc.Lists))
	for i, it := range *doc.Lists {
		if it.ID == "" {
			return nil, fmt.Errorf("item %d (%q): missing id", i, it.Name)
		}
		if prev, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("items %d and %d share id %q", prev, i, it.ID)
		}
		seen[it.ID] = i
	}
	return *doc.Lists, nil
}
