// Package store holds the list view state: the fetched lists, which of them
// are selected, and the staging area a new list is assembled in.
//
// All methods are meant to be called from a single goroutine (the Bubble Tea
// update loop); the store does no locking.
package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/idilsaglam/lists/internal/model"
)

// Source provides the initial item set.
type Source interface {
	Fetch(ctx context.Context) ([]model.Item, error)
}

// Mode is the store's position in the load/browse/create state machine.
type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeBrowsing
	ModeCreating
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	case ModeBrowsing:
		return "browsing"
	case ModeCreating:
		return "creating"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Ready reports whether lists are loaded.
func (m Mode) Ready() bool { return m == ModeBrowsing || m == ModeCreating }

// List is an ordered set of items. ID is stable for the life of the list;
// the number shown to users is its position + 1.
type List struct {
	ID    uuid.UUID
	Items []model.Item
}

// Store owns all list state.
type Store struct {
	lists    []List
	selected map[uuid.UUID]bool
	staged   []model.Item
	origin   map[model.ItemID]uuid.UUID
	mode     Mode
	err      error
	dropped  int

	newID func() uuid.UUID
}

// New returns a store in loading mode.
func New() *Store {
	return &Store{
		mode:     ModeLoading,
		selected: map[uuid.UUID]bool{},
		origin:   map[model.ItemID]uuid.UUID{},
		newID:    uuid.New,
	}
}

// Initialize fetches from src once and seeds the store, or moves it to the
// error mode. The fetch error is returned as well as kept.
func (s *Store) Initialize(ctx context.Context, src Source) error {
	s.Reset()
	items, err := src.Fetch(ctx)
	if err != nil {
		s.Fail(err)
		return err
	}
	s.Load(items)
	return nil
}

// Reset discards everything and returns to loading mode, ready for another
// fetch.
func (s *Store) Reset() {
	s.lists = nil
	s.staged = nil
	clear(s.selected)
	clear(s.origin)
	s.mode = ModeLoading
	s.err = nil
	s.dropped = 0
}

// Load partitions items by list number into List 1 and List 2. Items with
// any other list number are dropped and counted.
func (s *Store) Load(items []model.Item) {
	first := List{ID: s.newID(), Items: []model.Item{}}
	second := List{ID: s.newID(), Items: []model.Item{}}
	dropped := 0
	for _, it := range items {
		switch it.ListNumber {
		case 1:
			first.Items = append(first.Items, it)
		case 2:
			second.Items = append(second.Items, it)
		default:
			dropped++
		}
	}
	s.Reset()
	s.lists = []List{first, second}
	s.dropped = dropped
	s.mode = ModeBrowsing
}

// Fail records a terminal load failure. No lists are kept.
func (s *Store) Fail(err error) {
	s.Reset()
	s.err = err
	s.mode = ModeError
}

// ToggleSelection flips the selection of the list at index. The number of
// selected lists is only checked by BeginCreate.
func (s *Store) ToggleSelection(index int) error {
	l, err := s.listAt(index)
	if err != nil {
		return err
	}
	s.selected[l.ID] = !s.selected[l.ID]
	return nil
}

// BeginCreate enters creating mode. Exactly two lists must be selected.
func (s *Store) BeginCreate() error {
	switch s.mode {
	case ModeBrowsing:
	case ModeCreating:
		return ErrAlreadyCreating
	default:
		return ErrNotReady
	}
	if n := s.SelectedCount(); n != 2 {
		return fmt.Errorf("%w (%d selected)", ErrSelectionCount, n)
	}
	s.mode = ModeCreating
	return nil
}

// MoveItem moves the item with id out of the selected list at from and
// appends it to the staging area.
func (s *Store) MoveItem(id model.ItemID, from int) error {
	if s.mode != ModeCreating {
		return ErrNotCreating
	}
	l, err := s.listAt(from)
	if err != nil {
		return err
	}
	if !s.selected[l.ID] {
		return fmt.Errorf("%w: list %d", ErrListNotSelected, from+1)
	}
	pos := indexOf(l.Items, id)
	if pos < 0 {
		return fmt.Errorf("%w: %q in list %d", ErrItemNotFound, id, from+1)
	}
	it := l.Items[pos]
	l.Items = slices.Delete(l.Items, pos, pos+1)
	s.staged = append(s.staged, it)
	s.origin[id] = l.ID
	return nil
}

// MoveItemBack returns a staged item to the list it was moved from.
func (s *Store) MoveItemBack(id model.ItemID) error {
	if s.mode != ModeCreating {
		return ErrNotCreating
	}
	pos := indexOf(s.staged, id)
	if pos < 0 {
		return fmt.Errorf("%w: %q", ErrItemNotStaged, id)
	}
	l := s.listByID(s.origin[id])
	if l == nil {
		return fmt.Errorf("%w: origin of %q", ErrUnknownList, id)
	}
	it := s.staged[pos]
	s.staged = slices.Delete(s.staged, pos, pos+1)
	l.Items = append(l.Items, it)
	delete(s.origin, id)
	return nil
}

// Cancel leaves creating mode. Every staged item goes back to its origin
// list, in staging order, before selections and staging are cleared.
func (s *Store) Cancel() error {
	if s.mode != ModeCreating {
		return ErrNotCreating
	}
	for len(s.staged) > 0 {
		if err := s.MoveItemBack(s.staged[0].ID); err != nil {
			return err
		}
	}
	s.endCreate()
	return nil
}

// Commit appends the staged items as a new list and leaves creating mode.
// An empty staging area commits an empty list.
func (s *Store) Commit() error {
	if s.mode != ModeCreating {
		return ErrNotCreating
	}
	items := slices.Clone(s.staged)
	if items == nil {
		items = []model.Item{}
	}
	s.lists = append(s.lists, List{ID: s.newID(), Items: items})
	s.endCreate()
	return nil
}

func (s *Store) endCreate() {
	s.staged = nil
	clear(s.selected)
	clear(s.origin)
	s.mode = ModeBrowsing
}

// Mode returns the current mode.
func (s *Store) Mode() Mode { return s.mode }

// Err returns the load failure, if any.
func (s *Store) Err() error { return s.err }

// Dropped is the number of fetched items that belonged to neither list.
func (s *Store) Dropped() int { return s.dropped }

// Lists returns a copy of the lists in order.
func (s *Store) Lists() []List {
	out := make([]List, len(s.lists))
	for i, l := range s.lists {
		out[i] = List{ID: l.ID, Items: slices.Clone(l.Items)}
	}
	return out
}

// Len is the number of lists.
func (s *Store) Len() int { return len(s.lists) }

// Staged returns a copy of the staging area.
func (s *Store) Staged() []model.Item { return slices.Clone(s.staged) }

// Selected reports whether the list at index is selected. Out of range
// indexes are never selected.
func (s *Store) Selected(index int) bool {
	if index < 0 || index >= len(s.lists) {
		return false
	}
	return s.selected[s.lists[index].ID]
}

// SelectedCount is the number of selected lists.
func (s *Store) SelectedCount() int {
	n := 0
	for _, l := range s.lists {
		if s.selected[l.ID] {
			n++
		}
	}
	return n
}

// NextListNumber is the number a committed list would get.
func (s *Store) NextListNumber() int { return len(s.lists) + 1 }

// CheckInvariants verifies that every item is in exactly one place: one list
// or the staging area, and that every staged item knows its origin.
func (s *Store) CheckInvariants() error {
	seen := map[model.ItemID]string{}
	for i, l := range s.lists {
		where := fmt.Sprintf("list %d", i+1)
		for _, it := range l.Items {
			if prev, ok := seen[it.ID]; ok {
				return fmt.Errorf("item %q in %s and %s", it.ID, prev, where)
			}
			seen[it.ID] = where
		}
	}
	for _, it := range s.staged {
		if prev, ok := seen[it.ID]; ok {
			return fmt.Errorf("item %q in %s and the new list", it.ID, prev)
		}
		seen[it.ID] = "the new list"
		if s.listByID(s.origin[it.ID]) == nil {
			return fmt.Errorf("staged item %q has no origin list", it.ID)
		}
	}
	return nil
}

func (s *Store) listAt(index int) (*List, error) {
	if !s.mode.Ready() {
		return nil, ErrNotReady
	}
	if index < 0 || index >= len(s.lists) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownList, index)
	}
	return &s.lists[index], nil
}

func (s *Store) listByID(id uuid.UUID) *List {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return &s.lists[i]
		}
	}
	return nil
}

func indexOf(items []model.Item, id model.ItemID) int {
	return slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
}
