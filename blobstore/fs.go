package blobstore

import (
	"context"
	"errors"
	"io/fs"
)

// FSStore is a read-only BlobStore over an fs.FS.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore creates a store serving the files of fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Open reads the named file fully and serves it from memory.
func (s *FSStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bytesBlob{data: data}, nil
}

// Put always fails with ErrReadOnly.
func (s *FSStore) Put(context.Context, string, []byte) error {
	return ErrReadOnly
}
