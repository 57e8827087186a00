// Package zipcode checks US ZIP and ZIP+4 syntax.
//
// Accepted shapes are "NNNNN" and "NNNNN-NNNN"; any other shape is invalid.
// Only the first
// five digits identify a delivery area at state precision; the plus-four
// extension is validated and otherwise ignored.
package zipcode

// Len is the length of a base ZIP code.
const Len = 5

// Code is a syntactically valid ZIP or ZIP+4 code.
type Code struct {
	Zip5  string
	Plus4 string
}

// String formats the code as "NNNNN" or "NNNNN-NNNN".
func (c Code) String() string {
	if c.Plus4 == "" {
		return c.Zip5
	}
	return c.Zip5 + "-" + c.Plus4
}

// Valid reports whether s is a ZIP or ZIP+4 code.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Parse splits s into its base and plus-four parts.
func Parse(s string) (Code, bool) {
	if len(s) < Len || !digits(s[:Len]) {
		return Code{}, false
	}
	rest := s[Len:]
	switch {
	case rest == "":
		return Code{Zip5: s[:Len]}, true
	case len(rest) == 5 && rest[0] == '-' && digits(rest[1:]):
		return Code{Zip5: s[:Len], Plus4: rest[1:]}, true
	}
	return Code{}, false
}

// Prefix returns the base ZIP code of s if s is valid.
func Prefix(s string) (string, bool) {
	c, ok := Parse(s)
	return c.Zip5, ok
}

// Index maps a base ZIP code to its integer value in [0, 99999].
// It returns -1 when zip5 is not exactly five ASCII digits.
func Index(zip5 string) int {
	if len(zip5) != Len || !digits(zip5) {
		return -1
	}
	n := 0
	for i := 0; i < Len; i++ {
		n = n*10 + int(zip5[i]-'0')
	}
	return n
}

// Format renders an index produced by Index as a zero-padded base ZIP code.
func Format(idx int) string {
	var b [Len]byte
	for i := Len - 1; i >= 0; i-- {
		b[i] = byte('0' + idx%10)
		idx /= 10
	}
	return string(b[:])
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
