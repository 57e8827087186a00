// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	db, err := zipstate.Open(ctx, zipstate.WithArtifact(store, "zipcodes.json.gz"))
//
// Reads use ranged GETs; writes are single PutObject calls.
package s3
