package builder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/hupe1980/zipstate/blobstore"
	"github.com/hupe1980/zipstate/codec"
	"github.com/hupe1980/zipstate/dataset"
)

// Builder encodes parsed exports and publishes them to a store.
type Builder struct {
	store       blobstore.BlobStore
	name        string
	compression dataset.Compression
	codec       codec.Codec
	logger      *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithCompression overrides the compression chosen from the artifact name.
func WithCompression(c dataset.Compression) Option {
	return func(b *Builder) { b.compression = c }
}

// WithCodec sets the document codec.
func WithCodec(c codec.Codec) Option {
	return func(b *Builder) {
		if c != nil {
			b.codec = c
		}
	}
}

// WithLogger sets the build logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Builder writing the artifact name into store. The
// compression defaults to the one matching the name's extension.
func New(store blobstore.BlobStore, name string, optFns ...Option) *Builder {
	b := &Builder{
		store:       store,
		name:        name,
		compression: compressionFor(name),
		codec:       codec.Default,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(b)
		}
	}
	return b
}

// Result describes a published artifact.
type Result struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Compression string        `json:"compression"`
	Bytes       int           `json:"bytes"`
	Checksum    string        `json:"sha256"`
	Stats       Stats         `json:"stats"`
	Duration    time.Duration `json:"duration"`
}

// Build parses src, validates the resulting document and writes the
// artifact to the store.
func (b *Builder) Build(ctx context.Context, src io.Reader, version string) (Result, error) {
	start := time.Now()

	zips, stats, err := ParseGeoNames(src)
	if err != nil {
		return Result{}, err
	}

	doc := &dataset.Document{
		Version:  dataset.VersionOf(version),
		Kind:     dataset.KindStateOnly,
		Zipcodes: zips,
	}
	if _, err := dataset.New(doc); err != nil {
		return Result{}, fmt.Errorf("builder: %w", err)
	}

	data, err := dataset.Encode(doc, b.compression, b.codec)
	if err != nil {
		return Result{}, err
	}
	if err := b.store.Put(ctx, b.name, data); err != nil {
		return Result{}, fmt.Errorf("builder: put %s: %w", b.name, err)
	}

	sum := sha256.Sum256(data)
	res := Result{
		Name:        b.name,
		Version:     version,
		Compression: b.compression.String(),
		Bytes:       len(data),
		Checksum:    hex.EncodeToString(sum[:]),
		Stats:       stats,
		Duration:    time.Since(start),
	}

	b.logger.InfoContext(ctx, "artifact published",
		"name", res.Name,
		"version", res.Version,
		"zipcodes", stats.Kept,
		"skipped", stats.Skipped,
		"duplicates", stats.Duplicates,
		"bytes", res.Bytes,
		"duration", res.Duration,
	)
	return res, nil
}

// Checksum returns the hex SHA-256 of everything read from r.
func Checksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func compressionFor(name string) dataset.Compression {
	for _, c := range []dataset.Compression{
		dataset.CompressionGzip,
		dataset.CompressionZSTD,
		dataset.CompressionLZ4,
	} {
		if strings.HasSuffix(name, c.Ext()) {
			return c
		}
	}
	if strings.HasSuffix(name, ".json") {
		return dataset.CompressionNone
	}
	return dataset.CompressionGzip
}
