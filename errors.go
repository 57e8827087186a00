package zipstate

import (
	"errors"
	"fmt"

	"github.com/hupe1980/zipstate/dataset"
)

var (
	// ErrInvalidZipCode is matched by every error returned for malformed ZIP
	// codes.
	ErrInvalidZipCode = errors.New("invalid US ZIP code")

	// ErrUnknownState is matched by every StateResolutionError.
	ErrUnknownState = errors.New("unknown state")

	// ErrDatasetLoad indicates the dataset artifact could not be loaded.
	ErrDatasetLoad = errors.New("dataset load failed")
)

// InvalidZipCodeError reports a code that is neither ZIP nor ZIP+4 shaped.
type InvalidZipCodeError struct {
	Code string
}

func (e *InvalidZipCodeError) Error() string {
	return fmt.Sprintf("%s is not a valid US ZIP code", e.Code)
}

func (e *InvalidZipCodeError) Unwrap() error { return ErrInvalidZipCode }

// ResolveOp names the resolution that failed.
type ResolveOp string

const (
	OpStateToAbbr ResolveOp = "state_to_abbr"
	OpAbbrToState ResolveOp = "abbr_to_state"
	OpNormalize   ResolveOp = "normalize"
	OpFormat      ResolveOp = "format"
)

// StateResolutionError reports a value that matched no state.
type StateResolutionError struct {
	Op    ResolveOp
	Value string
}

func (e *StateResolutionError) Error() string {
	switch e.Op {
	case OpStateToAbbr:
		return fmt.Sprintf("unknown state name: %s", e.Value)
	case OpAbbrToState:
		return fmt.Sprintf("unknown state abbreviation: %s", e.Value)
	default:
		return fmt.Sprintf("unknown state: %s", e.Value)
	}
}

func (e *StateResolutionError) Unwrap() error { return ErrUnknownState }

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, dataset.ErrLoad) {
		return fmt.Errorf("%w: %w", ErrDatasetLoad, err)
	}
	return err
}
