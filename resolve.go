package zipstate

import (
	"strings"

	"github.com/hupe1980/zipstate/state"
)

// resolve matches value as an abbreviation first, then as a full name.
func resolve(value string) (state.State, bool) {
	if s, ok := state.ByAbbr(value); ok {
		return s, true
	}
	return state.ByName(value)
}

func (db *DB) resolveStrict(op ResolveOp, value string) (state.State, error) {
	s, ok := resolve(value)
	db.metrics.RecordResolve(ok)
	if !ok {
		return state.State{}, &StateResolutionError{Op: op, Value: value}
	}
	return s, nil
}

// StateToAbbr converts a full state name to its abbreviation.
// Matching is case-insensitive and exact.
func (db *DB) StateToAbbr(name string) (string, error) {
	s, ok := state.ByName(name)
	db.metrics.RecordResolve(ok)
	if !ok {
		return "", &StateResolutionError{Op: OpStateToAbbr, Value: name}
	}
	return s.Abbr, nil
}

// StateToAbbrOr is StateToAbbr returning def when name is not a state.
func (db *DB) StateToAbbrOr(name, def string) string {
	abbr, err := db.StateToAbbr(name)
	if err != nil {
		return def
	}
	return abbr
}

// AbbrToState converts a state abbreviation to its full name.
func (db *DB) AbbrToState(abbr string) (string, error) {
	s, ok := state.ByAbbr(abbr)
	db.metrics.RecordResolve(ok)
	if !ok {
		return "", &StateResolutionError{Op: OpAbbrToState, Value: abbr}
	}
	return s.Name, nil
}

// AbbrToStateOr is AbbrToState returning def when abbr is not a state.
func (db *DB) AbbrToStateOr(abbr, def string) string {
	name, err := db.AbbrToState(abbr)
	if err != nil {
		return def
	}
	return name
}

// NormToAbbr returns the abbreviation of a state given either its name or
// its abbreviation.
func (db *DB) NormToAbbr(value string) (string, error) {
	s, err := db.resolveStrict(OpNormalize, value)
	if err != nil {
		return "", err
	}
	return s.Abbr, nil
}

// NormToAbbrOr is NormToAbbr returning def on a miss.
func (db *DB) NormToAbbrOr(value, def string) string {
	abbr, err := db.NormToAbbr(value)
	if err != nil {
		return def
	}
	return abbr
}

// NormToState returns the full name of a state given either its name or its
// abbreviation.
func (db *DB) NormToState(value string) (string, error) {
	s, err := db.resolveStrict(OpNormalize, value)
	if err != nil {
		return "", err
	}
	return s.Name, nil
}

// NormToStateOr is NormToState returning def on a miss.
func (db *DB) NormToStateOr(value, def string) string {
	name, err := db.NormToState(value)
	if err != nil {
		return def
	}
	return name
}

// FormatState returns value in display form: full names in registry casing,
// abbreviations upper-cased. Anything else is returned unchanged.
func (db *DB) FormatState(value string) string {
	out, err := db.FormatStateStrict(value)
	if err != nil {
		return value
	}
	return out
}

// FormatStateStrict is FormatState failing on values that are not states.
func (db *DB) FormatStateStrict(value string) (string, error) {
	if s, ok := state.ByName(value); ok {
		db.metrics.RecordResolve(true)
		return s.Name, nil
	}
	if _, ok := state.ByAbbr(value); ok {
		db.metrics.RecordResolve(true)
		return strings.ToUpper(value), nil
	}
	db.metrics.RecordResolve(false)
	return "", &StateResolutionError{Op: OpFormat, Value: value}
}

// IsState reports whether value is a state name or abbreviation.
func (db *DB) IsState(value string) bool {
	_, ok := resolve(value)
	return ok
}

// IsStateFull reports whether value is a full state name.
func (db *DB) IsStateFull(value string) bool {
	_, ok := state.ByName(value)
	return ok
}

// IsStateAbbr reports whether value is a state abbreviation.
func (db *DB) IsStateAbbr(value string) bool {
	_, ok := state.ByAbbr(value)
	return ok
}
