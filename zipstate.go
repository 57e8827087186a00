package zipstate

import (
	"context"
	"time"

	"github.com/hupe1980/zipstate/dataset"
	"github.com/hupe1980/zipstate/state"
	"github.com/hupe1980/zipstate/zipcode"
)

// DB answers ZIP code and state queries against one loaded dataset.
//
// A DB is immutable after Open and safe for concurrent use.
type DB struct {
	ds      *dataset.Dataset
	loader  *dataset.Loader
	metrics MetricsCollector
	logger  *Logger
}

// Open loads the dataset and returns a DB over it.
//
// Without options the artifact compiled into the binary is used:
//
//	db, err := zipstate.Open(ctx)
//	abbr, ok, err := db.State("78701") // "TX", true, nil
func Open(ctx context.Context, optFns ...Option) (*DB, error) {
	o := applyOptions(optFns)
	loader := o.newLoader()
	logger := o.logger.WithSource(loader.Name())

	cached := loader.Loaded()
	start := time.Now()
	ds, err := loader.Load(ctx)
	elapsed := time.Since(start)

	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordLoad(elapsed, 0, err)
		logger.LogLoad(ctx, LoadInfo{Duration: elapsed}, err)
		return nil, err
	}

	o.metricsCollector.RecordLoad(elapsed, ds.Len(), nil)
	logger.LogLoad(ctx, LoadInfo{
		Version:     ds.Version(),
		Entries:     ds.Len(),
		Compression: ds.Compression().String(),
		Bytes:       ds.Size(),
		Cached:      cached,
		Duration:    elapsed,
	}, nil)

	return &DB{
		ds:      ds,
		loader:  loader,
		metrics: o.metricsCollector,
		logger:  logger,
	}, nil
}

// Dataset returns the loaded dataset.
func (db *DB) Dataset() *dataset.Dataset { return db.ds }

// Loader returns the loader the DB was opened with. Pass it to WithLoader to
// open further DBs over the same dataset.
func (db *DB) Loader() *dataset.Loader { return db.loader }

// DatasetVersion returns the provenance string stored in the artifact, or
// "unknown" when the artifact carries none.
func (db *DB) DatasetVersion() string { return db.ds.Version() }

// DatasetKind returns the artifact's data kind.
func (db *DB) DatasetKind() dataset.Kind { return db.ds.Kind() }

// Len returns the number of ZIP codes in the dataset.
func (db *DB) Len() int { return db.ds.Len() }

// IsValid reports whether code is shaped like a ZIP or ZIP+4 code.
// It does not consult the dataset.
func (db *DB) IsValid(code string) bool {
	return zipcode.Valid(code)
}

// Lookup returns the state owning code. A ZIP+4 suffix is accepted and
// ignored. Malformed codes return an error matching ErrInvalidZipCode;
// well-formed codes missing from the dataset return false and a nil error.
func (db *DB) Lookup(code string) (state.State, bool, error) {
	start := time.Now()

	zip5, ok := zipcode.Prefix(code)
	if !ok {
		err := &InvalidZipCodeError{Code: code}
		db.metrics.RecordLookup(time.Since(start), false, err)
		db.logger.LogLookup(context.Background(), code, "", false, err)
		return state.State{}, false, err
	}

	s, found := db.ds.Lookup(zip5)
	db.metrics.RecordLookup(time.Since(start), found, nil)
	db.logger.LogLookup(context.Background(), code, s.Abbr, found, nil)
	return s, found, nil
}

// State returns the two-letter abbreviation of the state owning code.
func (db *DB) State(code string) (string, bool, error) {
	s, ok, err := db.Lookup(code)
	return s.Abbr, ok, err
}

// StateName returns the full name of the state owning code.
func (db *DB) StateName(code string) (string, bool, error) {
	s, ok, err := db.Lookup(code)
	return s.Name, ok, err
}

// ZipCodes lists, in ascending order, the ZIP codes assigned to the state
// identified by value (full name or abbreviation, any case).
func (db *DB) ZipCodes(value string) ([]string, error) {
	s, err := db.resolveStrict(OpNormalize, value)
	if err != nil {
		return nil, err
	}
	return db.ds.ZipCodes(s.Ordinal), nil
}

// CountZipCodes returns how many ZIP codes are assigned to the state
// identified by value.
func (db *DB) CountZipCodes(value string) (int, error) {
	s, err := db.resolveStrict(OpNormalize, value)
	if err != nil {
		return 0, err
	}
	return db.ds.Count(s.Ordinal), nil
}
