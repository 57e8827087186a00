package dataset

import "errors"

var (
	// ErrLoad wraps every failure of Loader.Load.
	ErrLoad = errors.New("dataset: load failed")

	// ErrCorrupt indicates an artifact that decoded but violates the format.
	ErrCorrupt = errors.New("dataset: corrupt artifact")

	// ErrUnsupportedKind indicates a document type other than state_only.
	ErrUnsupportedKind = errors.New("dataset: unsupported dataset type")

	// ErrUnknownCompression is returned for unrecognized compression names.
	ErrUnknownCompression = errors.New("dataset: unknown compression")
)
