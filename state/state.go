package state

import (
	"iter"
	"slices"
	"strings"
)

// Len is the number of registered states (50 states + DC).
const Len = 51

// State is a registry record.
type State struct {
	Name    string `json:"name" yaml:"name"`
	Abbr    string `json:"abbr" yaml:"abbr"`
	Ordinal int    `json:"ordinal" yaml:"ordinal"`
}

// String returns the abbreviation.
func (s State) String() string { return s.Abbr }

// records is ordered by abbreviation; the index is the ordinal.
var records = [Len]State{
	{"Alaska", "AK", 0},
	{"Alabama", "AL", 1},
	{"Arkansas", "AR", 2},
	{"Arizona", "AZ", 3},
	{"California", "CA", 4},
	{"Colorado", "CO", 5},
	{"Connecticut", "CT", 6},
	{"District of Columbia", "DC", 7},
	{"Delaware", "DE", 8},
	{"Florida", "FL", 9},
	{"Georgia", "GA", 10},
	{"Hawaii", "HI", 11},
	{"Iowa", "IA", 12},
	{"Idaho", "ID", 13},
	{"Illinois", "IL", 14},
	{"Indiana", "IN", 15},
	{"Kansas", "KS", 16},
	{"Kentucky", "KY", 17},
	{"Louisiana", "LA", 18},
	{"Massachusetts", "MA", 19},
	{"Maryland", "MD", 20},
	{"Maine", "ME", 21},
	{"Michigan", "MI", 22},
	{"Minnesota", "MN", 23},
	{"Missouri", "MO", 24},
	{"Mississippi", "MS", 25},
	{"Montana", "MT", 26},
	{"North Carolina", "NC", 27},
	{"North Dakota", "ND", 28},
	{"Nebraska", "NE", 29},
	{"New Hampshire", "NH", 30},
	{"New Jersey", "NJ", 31},
	{"New Mexico", "NM", 32},
	{"Nevada", "NV", 33},
	{"New York", "NY", 34},
	{"Ohio", "OH", 35},
	{"Oklahoma", "OK", 36},
	{"Oregon", "OR", 37},
	{"Pennsylvania", "PA", 38},
	{"Rhode Island", "RI", 39},
	{"South Carolina", "SC", 40},
	{"South Dakota", "SD", 41},
	{"Tennessee", "TN", 42},
	{"Texas", "TX", 43},
	{"Utah", "UT", 44},
	{"Virginia", "VA", 45},
	{"Vermont", "VT", 46},
	{"Washington", "WA", 47},
	{"Wisconsin", "WI", 48},
	{"West Virginia", "WV", 49},
	{"Wyoming", "WY", 50},
}

// Upper-cased lookup keys, populated once in init and only read afterwards.
var (
	byAbbr = make(map[string]int, Len)
	byName = make(map[string]int, Len)
)

func init() {
	for i, r := range records {
		if r.Ordinal != i {
			panic("state: ordinal mismatch for " + r.Abbr)
		}
		if i > 0 && records[i-1].Abbr >= r.Abbr {
			panic("state: abbreviations out of order at " + r.Abbr)
		}
		byAbbr[r.Abbr] = i
		byName[strings.ToUpper(r.Name)] = i
	}
}

// Abbreviations returns the abbreviations in ordinal order.
func Abbreviations() []string {
	out := make([]string, Len)
	for i, r := range records {
		out[i] = r.Abbr
	}
	return out
}

// All returns every record in ordinal order.
func All() []State {
	out := make([]State, Len)
	copy(out, records[:])
	return out
}

// ByOrdinal returns the state encoded as ordinal i in dataset artifacts.
func ByOrdinal(i int) (State, bool) {
	if i < 0 || i >= Len {
		return State{}, false
	}
	return records[i], true
}

// OrdinalOf returns the ordinal of an abbreviation, matched case-insensitively.
func OrdinalOf(abbr string) (int, bool) {
	i, ok := byAbbr[strings.ToUpper(abbr)]
	return i, ok
}

// ByAbbr matches an abbreviation case-insensitively.
func ByAbbr(abbr string) (State, bool) {
	i, ok := byAbbr[strings.ToUpper(abbr)]
	if !ok {
		return State{}, false
	}
	return records[i], true
}

// ByName matches a full name case-insensitively. Only exact names match.
func ByName(name string) (State, bool) {
	i, ok := byName[strings.ToUpper(name)]
	if !ok {
		return State{}, false
	}
	return records[i], true
}

// Map is a read-only view of a string mapping owned by the registry.
type Map struct {
	m map[string]string
}

// Names returns the full name to abbreviation mapping.
func Names() Map { return names }

// Abbrs returns the abbreviation to full name mapping.
func Abbrs() Map { return abbrs }

var names, abbrs = func() (Map, Map) {
	n := make(map[string]string, Len)
	a := make(map[string]string, Len)
	for _, r := range records {
		n[r.Name] = r.Abbr
		a[r.Abbr] = r.Name
	}
	return Map{m: n}, Map{m: a}
}()

// Get returns the value stored under the exact key.
func (m Map) Get(key string) (string, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.m) }

// Keys returns the keys in ascending order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// All iterates the entries in ascending key order.
func (m Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}
