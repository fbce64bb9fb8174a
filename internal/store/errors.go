package store

import "errors"

var (
	// ErrSelectionCount is the validation failure raised when creation starts
	// with anything other than two selected lists.
	ErrSelectionCount = errors.New("you must select exactly 2 lists to create a new list")

	ErrNotReady        = errors.New("lists are not loaded")
	ErrNotCreating     = errors.New("not creating a list")
	ErrAlreadyCreating = errors.New("already creating a list")
	ErrUnknownList     = errors.New("unknown list")
	ErrListNotSelected = errors.New("list is not selected")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemNotStaged   = errors.New("item is not in the new list")
)
