package blobstore

import (
	"context"
	"io"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("artifact")
	require.NoError(t, store.Put(ctx, "b/one", data))
	require.NoError(t, store.Put(ctx, "a/two", []byte("x")))
	data[0] = 'X'

	blob, err := store.Open(ctx, "b/one")
	require.NoError(t, err)
	defer blob.Close()

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "artifact", string(got))
	assert.Equal(t, 1, store.Opens("b/one"))

	_, err = store.Open(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Opens("nope"))
}

func TestFSStore(t *testing.T) {
	fsys := fstest.MapFS{
		"zipcodes.json.gz": {Data: []byte("gz")},
	}
	store := NewFSStore(fsys)
	ctx := context.Background()

	blob, err := store.Open(ctx, "zipcodes.json.gz")
	require.NoError(t, err)
	assert.Equal(t, int64(2), blob.Size())

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "gz", string(got))

	_, err = store.Open(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Put(ctx, "x", nil), ErrReadOnly)
}

// chunkBlob hands out at most two bytes per ReadAt and is not Mappable.
type chunkBlob struct {
	data []byte
}

func (b *chunkBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	if len(p) > 2 {
		p = p[:2]
	}
	return copy(p, b.data[off:]), nil
}

func (b *chunkBlob) Close() error { return nil }
func (b *chunkBlob) Size() int64  { return int64(len(b.data)) }

func TestReadAll_ShortReads(t *testing.T) {
	got, err := ReadAll(context.Background(), &chunkBlob{data: []byte("hello world")})
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}
