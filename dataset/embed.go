package dataset

import (
	"embed"

	"github.com/hupe1980/zipstate/blobstore"
)

// EmbeddedName is the blob name of the artifact compiled into the binary.
const EmbeddedName = "zipcodes.json.gz"

//go:generate go run ../cmd/zipstate build --download --data-dir ../data

//go:embed zipcodes.json.gz
var embedded embed.FS

// Embedded returns a read-only store holding the compiled-in artifact.
func Embedded() blobstore.BlobStore {
	return blobstore.NewFSStore(embedded)
}

// NewEmbeddedLoader returns a Loader for the compiled-in artifact.
func NewEmbeddedLoader(optFns ...LoaderOption) *Loader {
	return NewLoader(Embedded(), EmbeddedName, optFns...)
}
