// Package dataset decodes and serves the ZIP code to state table.
//
// An artifact is a compressed document:
//
//	{"version": "...", "type": "state_only", "zipcodes": {"02134": 19, ...}}
//
// where each value is a state ordinal (see package state). Compression is
// detected from the leading magic bytes, so gzip, zstd, lz4 and plain JSON
// artifacts all load through the same path.
//
// A Loader decodes its artifact at most once and hands every caller the same
// *Dataset. The default artifact is embedded in the binary; see Embedded.
package dataset
