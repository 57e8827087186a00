package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/zipstate/internal/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	name := "v1/zipcodes.json.gz"
	data := []byte("hello world, this is a test artifact")

	require.NoError(t, store.Put(ctx, name, data))

	_, err := os.Stat(filepath.Join(tmpDir, name))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, name+".tmp"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	blob, err := store.Open(ctx, name)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 6)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	all, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, data, all)
}

func TestLocalStore_Overwrite(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", []byte("first")))
	require.NoError(t, store.Put(ctx, "a", []byte("second")))

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	_, err := store.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Put(ctx, "x", nil), context.Canceled)
}

func TestLocalStore_FailedPutKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, NewLocalStore(dir).Put(ctx, "a", []byte("good")))

	for name, fault := range map[string]fs.Fault{
		"write":  {FailOnWrite: true},
		"sync":   {FailOnSync: true},
		"rename": {FailOnRename: true},
	} {
		t.Run(name, func(t *testing.T) {
			ffs := fs.NewFaultyFS(nil)
			ffs.Fault = fault
			store := NewLocalStore(dir, WithFileSystem(ffs))

			err := store.Put(ctx, "a", []byte("bad"))
			assert.ErrorIs(t, err, fs.ErrInjected)
			assert.Equal(t, int64(1), ffs.Removes())

			_, err = os.Stat(filepath.Join(dir, "a.tmp"))
			assert.ErrorIs(t, err, os.ErrNotExist)

			got, err := os.ReadFile(filepath.Join(dir, "a"))
			require.NoError(t, err)
			assert.Equal(t, "good", string(got))
		})
	}
}
