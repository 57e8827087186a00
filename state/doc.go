// Package state is the registry of the 50 US states plus the District of
// Columbia.
//
// Every state carries an ordinal: its position in the alphabetically sorted
// list of abbreviations. Dataset artifacts encode states by ordinal, so this
// ordering is a compatibility boundary: reordering it invalidates every
// artifact built before the change.
//
// The registry is immutable. Lookups return values, slices handed out are
// copies, and the exposed name mapping (Map) has no mutating methods.
package state
