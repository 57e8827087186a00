package zipstate

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/zipstate/state"
	"github.com/hupe1980/zipstate/zipcode"
)

var defaultDB = sync.OnceValues(func() (*DB, error) {
	return Open(context.Background())
})

// Default returns the process-wide DB over the embedded dataset. The
// artifact is decoded on the first call only.
func Default() (*DB, error) {
	return defaultDB()
}

func mustDefault() *DB {
	db, err := defaultDB()
	if err != nil {
		panic(fmt.Sprintf("zipstate: embedded dataset: %v", err))
	}
	return db
}

// The functions below operate on Default and panic if the embedded dataset
// cannot be decoded.

// IsValid reports whether code is shaped like a ZIP or ZIP+4 code.
// It does not load the dataset.
func IsValid(code string) bool { return zipcode.Valid(code) }

// Lookup calls Default().Lookup.
func Lookup(code string) (state.State, bool, error) { return mustDefault().Lookup(code) }

// State calls Default().State.
func State(code string) (string, bool, error) { return mustDefault().State(code) }

// StateName calls Default().StateName.
func StateName(code string) (string, bool, error) { return mustDefault().StateName(code) }

// ZipCodes calls Default().ZipCodes.
func ZipCodes(value string) ([]string, error) { return mustDefault().ZipCodes(value) }

// CountZipCodes calls Default().CountZipCodes.
func CountZipCodes(value string) (int, error) { return mustDefault().CountZipCodes(value) }

// StateToAbbr calls Default().StateToAbbr.
func StateToAbbr(name string) (string, error) { return mustDefault().StateToAbbr(name) }

// StateToAbbrOr calls Default().StateToAbbrOr.
func StateToAbbrOr(name, def string) string { return mustDefault().StateToAbbrOr(name, def) }

// AbbrToState calls Default().AbbrToState.
func AbbrToState(abbr string) (string, error) { return mustDefault().AbbrToState(abbr) }

// AbbrToStateOr calls Default().AbbrToStateOr.
func AbbrToStateOr(abbr, def string) string { return mustDefault().AbbrToStateOr(abbr, def) }

// NormToAbbr calls Default().NormToAbbr.
func NormToAbbr(value string) (string, error) { return mustDefault().NormToAbbr(value) }

// NormToAbbrOr calls Default().NormToAbbrOr.
func NormToAbbrOr(value, def string) string { return mustDefault().NormToAbbrOr(value, def) }

// NormToState calls Default().NormToState.
func NormToState(value string) (string, error) { return mustDefault().NormToState(value) }

// NormToStateOr calls Default().NormToStateOr.
func NormToStateOr(value, def string) string { return mustDefault().NormToStateOr(value, def) }

// FormatState calls Default().FormatState.
func FormatState(value string) string { return mustDefault().FormatState(value) }

// FormatStateStrict calls Default().FormatStateStrict.
func FormatStateStrict(value string) (string, error) {
	return mustDefault().FormatStateStrict(value)
}

// IsState calls Default().IsState.
func IsState(value string) bool { return mustDefault().IsState(value) }

// IsStateFull calls Default().IsStateFull.
func IsStateFull(value string) bool { return mustDefault().IsStateFull(value) }

// IsStateAbbr calls Default().IsStateAbbr.
func IsStateAbbr(value string) bool { return mustDefault().IsStateAbbr(value) }

// DatasetVersion calls Default().DatasetVersion.
func DatasetVersion() string { return mustDefault().DatasetVersion() }
