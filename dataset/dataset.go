package dataset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/zipstate/state"
	"github.com/hupe1980/zipstate/zipcode"
)

const (
	tableSize = 100000
	noState   = 0xff
)

// Dataset is an immutable ZIP code to state table.
type Dataset struct {
	version     string
	hasVersion  bool
	kind        Kind
	ordinals    []uint8
	count       int
	byState     [state.Len]*roaring.Bitmap
	compression Compression
	size        int
}

// New validates doc and builds a Dataset from it.
func New(doc *Document) (*Dataset, error) {
	kind := doc.Kind
	if kind == "" {
		kind = KindStateOnly
	}
	if kind != KindStateOnly {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}

	version := UnknownVersion
	if doc.Version != nil {
		version = *doc.Version
	}

	ds := &Dataset{
		version:    version,
		hasVersion: doc.Version != nil,
		kind:       kind,
		ordinals:   make([]uint8, tableSize),
	}
	for i := range ds.ordinals {
		ds.ordinals[i] = noState
	}
	for i := range ds.byState {
		ds.byState[i] = roaring.New()
	}

	for key, ord := range doc.Zipcodes {
		idx := zipcode.Index(key)
		if idx < 0 {
			return nil, fmt.Errorf("%w: zip code key %q", ErrCorrupt, key)
		}
		if ord < 0 || ord >= state.Len {
			return nil, fmt.Errorf("%w: zip code %s has state ordinal %d", ErrCorrupt, key, ord)
		}
		ds.ordinals[idx] = uint8(ord)
		ds.byState[ord].Add(uint32(idx))
	}
	ds.count = len(doc.Zipcodes)

	for _, bm := range ds.byState {
		bm.RunOptimize()
	}
	return ds, nil
}

// Version returns the provenance string stamped by the builder.
func (d *Dataset) Version() string { return d.version }

// Kind returns the dataset precision tag.
func (d *Dataset) Kind() Kind { return d.kind }

// Len returns the number of ZIP codes in the table.
func (d *Dataset) Len() int { return d.count }

// Compression reports how the artifact was compressed.
func (d *Dataset) Compression() Compression { return d.compression }

// Size returns the artifact size in bytes (0 for datasets built with New).
func (d *Dataset) Size() int { return d.size }

// Lookup returns the state owning a 5-digit ZIP code.
func (d *Dataset) Lookup(zip5 string) (state.State, bool) {
	idx := zipcode.Index(zip5)
	if idx < 0 {
		return state.State{}, false
	}
	ord := d.ordinals[idx]
	if ord == noState {
		return state.State{}, false
	}
	return state.ByOrdinal(int(ord))
}

// ZipCodes returns the ZIP codes assigned to the state with the given ordinal,
// ascending.
func (d *Dataset) ZipCodes(ordinal int) []string {
	if ordinal < 0 || ordinal >= state.Len {
		return nil
	}
	bm := d.byState[ordinal]
	out := make([]string, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, zipcode.Format(int(it.Next())))
	}
	return out
}

// Count returns how many ZIP codes belong to the state with the given ordinal.
func (d *Dataset) Count(ordinal int) int {
	if ordinal < 0 || ordinal >= state.Len {
		return 0
	}
	return int(d.byState[ordinal].GetCardinality())
}

// Document rebuilds the wire form of the dataset.
func (d *Dataset) Document() *Document {
	doc := &Document{
		Kind:     d.kind,
		Zipcodes: make(map[string]int, d.count),
	}
	if d.hasVersion {
		doc.Version = VersionOf(d.version)
	}
	for idx, ord := range d.ordinals {
		if ord != noState {
			doc.Zipcodes[zipcode.Format(idx)] = int(ord)
		}
	}
	return doc
}
