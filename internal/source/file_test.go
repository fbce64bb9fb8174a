package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetch(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lists.json")
	require.NoError(t, os.WriteFile(p, []byte(payload), 0o644))

	items, err := File{Path: p}.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, 2, items[1].ListNumber)
}

func TestFileFetchMissing(t *testing.T) {
	_, err := File{Path: filepath.Join(t.TempDir(), "nope.json")}.Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "read", fe.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileFetchBadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lists.json")
	require.NoError(t, os.WriteFile(p, []byte("[]"), 0o644))

	_, err := File{Path: p}.Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "decode", fe.Op)
}

func TestFileFetchRejectsBadIDs(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing id",
			body: `{"lists":[{"name":"a","list_number":1}]}`,
			want: "missing id",
		},
		{
			name: "null id",
			body: `{"lists":[{"id":1,"name":"a","list_number":1},{"id":null,"name":"b","list_number":2}]}`,
			want: "missing id",
		},
		{
			name: "shared id",
			body: `{"lists":[{"id":7,"name":"a","list_number":1},{"id":"7","name":"b","list_number":2}]}`,
			want: `share id "7"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "lists.json")
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o644))

			items, err := File{Path: p}.Fetch(context.Background())

			assert.Nil(t, items)
			var fe *FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "decode", fe.Op)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
