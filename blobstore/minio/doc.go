// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works against MinIO and other S3-compatible object stores (Ceph,
// Garage, SeaweedFS) without pulling in the AWS SDK, which suits air-gapped
// deployments that mirror dataset artifacts internally.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "datasets", "zipstate/")
//	db, err := zipstate.Open(ctx, zipstate.WithArtifact(store, "zipcodes.json.gz"))
package minio
