package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/lists/internal/model"
)

// File reads the item set from a JSON file shaped like the API response.
// Handy offline and for demos; nothing is ever written back.
type File struct {
	Path string
}

func (f File) path() (string, error) {
	if filepath.IsAbs(f.Path) {
		return f.Path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, f.Path), nil
}

func (f File) Fetch(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Op: "read", Src: f.Path, Err: err}
	}
	p, err := f.path()
	if err != nil {
		return nil, &FetchError{Op: "read", Src: f.Path, Err: err}
	}
	fh, err := os.Open(p)
	if err != nil {
		return nil, &FetchError{Op: "read", Src: p, Err: err}
	}
	defer fh.Close()

	items, err := decode(fh)
	if err != nil {
		return nil, &FetchError{Op: "decode", Src: p, Err: err}
	}
	return items, nil
}
