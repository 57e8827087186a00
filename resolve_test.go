package zipstate

import (
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/zipstate/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversion_RoundTrip(t *testing.T) {
	for _, s := range state.All() {
		t.Run(s.Abbr, func(t *testing.T) {
			abbr, err := StateToAbbr(s.Name)
			require.NoError(t, err)
			assert.Equal(t, s.Abbr, abbr)

			name, err := AbbrToState(abbr)
			require.NoError(t, err)
			assert.Equal(t, s.Name, name)

			abbr, err = StateToAbbr(strings.ToLower(s.Name))
			require.NoError(t, err)
			assert.Equal(t, s.Abbr, abbr)

			name, err = AbbrToState(strings.ToLower(s.Abbr))
			require.NoError(t, err)
			assert.Equal(t, s.Name, name)
		})
	}
}

func TestConversion_Misses(t *testing.T) {
	_, err := StateToAbbr("TX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, "unknown state name: TX", err.Error())

	_, err = AbbrToState("Texas")
	require.Error(t, err)
	assert.Equal(t, "unknown state abbreviation: Texas", err.Error())

	var serr *StateResolutionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, OpAbbrToState, serr.Op)
	assert.Equal(t, "Texas", serr.Value)

	assert.Equal(t, "", StateToAbbrOr("Texass", ""))
	assert.Equal(t, "TEXAS", AbbrToStateOr("QQ", "TEXAS"))
	assert.Equal(t, "TX", AbbrToStateOr("QQ", "TX"))
	assert.Equal(t, "Texas", StateToAbbrOr("Texas ", "Texas"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		value string
		abbr  string
		name  string
	}{
		{"tX", "TX", "Texas"},
		{"fLoRiDa", "FL", "Florida"},
		{"dc", "DC", "District of Columbia"},
		{"NEW YORK", "NY", "New York"},
		{"wy", "WY", "Wyoming"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			abbr, err := NormToAbbr(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.abbr, abbr)

			name, err := NormToState(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
		})
	}

	_, err := NormToAbbr("Tex")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Equal(t, "unknown state: Tex", err.Error())

	_, err = NormToState("")
	assert.ErrorIs(t, err, ErrUnknownState)

	assert.Equal(t, "XX", NormToAbbrOr("Tex", "XX"))
	assert.Equal(t, "nowhere", NormToStateOr("qq", "nowhere"))
}

func TestFormatState(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"new york", "New York"},
		{"DISTRICT OF COLUMBIA", "District of Columbia"},
		{"ny", "NY"},
		{"Tx", "TX"},
		{"qQq", "qQq"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatState(tt.value))
		})
	}

	_, err := FormatStateStrict("qQq")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)

	got, err := FormatStateStrict("oHiO")
	require.NoError(t, err)
	assert.Equal(t, "Ohio", got)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		value          string
		any, full, abb bool
	}{
		{"TX", true, false, true},
		{"tx", true, false, true},
		{"Texas", true, true, false},
		{"tEXAS", true, true, false},
		{"District of Columbia", true, true, false},
		{"Tex", false, false, false},
		{"", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.any, IsState(tt.value))
			assert.Equal(t, tt.full, IsStateFull(tt.value))
			assert.Equal(t, tt.abb, IsStateAbbr(tt.value))
		})
	}
}
