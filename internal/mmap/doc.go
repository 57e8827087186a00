// Package mmap provides read-only memory-mapped file access.
//
// Local dataset artifacts are mapped instead of read so that decompression
// streams straight from the page cache.
//
//	m, err := mmap.Open("zipcodes.json.gz")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// Unix uses mmap(2) via golang.org/x/sys/unix; Windows uses
// CreateFileMapping/MapViewOfFile. Callers must not touch Bytes() after Close.
package mmap
