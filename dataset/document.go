package dataset

import (
	"fmt"

	"github.com/hupe1980/zipstate/codec"
)

// Kind tags the precision of a dataset.
type Kind string

// KindStateOnly maps each ZIP code to a state and nothing finer.
const KindStateOnly Kind = "state_only"

// UnknownVersion is reported when an artifact has no version field. An
// explicitly empty version is kept as is.
const UnknownVersion = "unknown"

// Document is the decoded form of an artifact.
type Document struct {
	Version  *string        `json:"version,omitempty"`
	Kind     Kind           `json:"type,omitempty"`
	Zipcodes map[string]int `json:"zipcodes"`
}

// VersionOf returns v as a Document.Version value.
func VersionOf(v string) *string { return &v }

// Encode marshals doc with c (codec.Default if nil) and compresses it.
func Encode(doc *Document, comp Compression, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	raw, err := c.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("dataset: encode with %s: %w", c.Name(), err)
	}
	return Compress(raw, comp)
}

// Decode decompresses and unmarshals an artifact and validates the result.
func Decode(data []byte, c codec.Codec) (*Dataset, error) {
	if c == nil {
		c = codec.Default
	}
	raw, comp, err := Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, comp, err)
	}

	var doc Document
	if err := c.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode with %s: %w", ErrCorrupt, c.Name(), err)
	}

	ds, err := New(&doc)
	if err != nil {
		return nil, err
	}
	ds.compression = comp
	ds.size = len(data)
	return ds, nil
}
