package dataset

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/zipstate/blobstore"
	"github.com/hupe1980/zipstate/codec"
	"golang.org/x/sync/singleflight"
)

// Loader decodes one artifact on first use and serves the result forever.
//
// Concurrent first calls share a single decode. A failed load publishes
// nothing; the error is returned to every caller waiting on that attempt.
type Loader struct {
	store blobstore.BlobStore
	name  string
	codec codec.Codec

	group   singleflight.Group
	current atomic.Pointer[Dataset]
	decodes atomic.Int64
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCodec sets the document codec. nil selects codec.Default.
func WithCodec(c codec.Codec) LoaderOption {
	return func(l *Loader) {
		if c == nil {
			c = codec.Default
		}
		l.codec = c
	}
}

// NewLoader creates a Loader reading the blob name from store.
func NewLoader(store blobstore.BlobStore, name string, optFns ...LoaderOption) *Loader {
	l := &Loader{
		store: store,
		name:  name,
		codec: codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(l)
		}
	}
	return l
}

// Name returns the blob name the loader reads.
func (l *Loader) Name() string { return l.name }

// Loaded reports whether a dataset has been published.
func (l *Loader) Loaded() bool { return l.current.Load() != nil }

// Decodes returns how many artifact decodes have been attempted.
func (l *Loader) Decodes() int64 { return l.decodes.Load() }

// Load returns the dataset, decoding the artifact if this is the first call.
// Every successful call returns the same *Dataset.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	if ds := l.current.Load(); ds != nil {
		return ds, nil
	}

	v, err, _ := l.group.Do(l.name, func() (any, error) {
		if ds := l.current.Load(); ds != nil {
			return ds, nil
		}
		ds, err := l.decode(ctx)
		if err != nil {
			return nil, err
		}
		l.current.Store(ds)
		return ds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, l.name, err)
	}
	return v.(*Dataset), nil
}

// Version loads the dataset if needed and returns its version.
func (l *Loader) Version(ctx context.Context) (string, error) {
	ds, err := l.Load(ctx)
	if err != nil {
		return "", err
	}
	return ds.Version(), nil
}

func (l *Loader) decode(ctx context.Context) (*Dataset, error) {
	l.decodes.Add(1)

	blob, err := l.store.Open(ctx, l.name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, err
	}
	return Decode(data, l.codec)
}
