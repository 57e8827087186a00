// Package blobstore provides storage abstraction for dataset artifacts.
//
// A BlobStore opens immutable, named blobs for reading and writes whole blobs
// atomically. The dataset loader reads artifacts through it and the builder
// publishes new artifacts through it. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - FSStore: any fs.FS, including the embed.FS carrying the default artifact (read-only)
//   - LocalStore: local filesystem with mmap'd reads
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	}
//
// Blobs that can expose their contents without copying implement Mappable;
// ReadAll uses it when present.
package blobstore
