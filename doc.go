// Package zipstate resolves US ZIP codes to states and converts between
// state names and abbreviations.
//
// The ZIP code table ships inside the binary as a compressed artifact and
// is decoded once, on first use. Every query after that is an in-memory
// lookup.
//
// # Quick Start
//
// Package-level functions use the embedded dataset:
//
//	abbr, ok, err := zipstate.State("78701")         // "TX", true, nil
//	name, ok, err := zipstate.StateName("80202")     // "Colorado", true, nil
//	_, _, err = zipstate.State("123")                // errors.Is(err, zipstate.ErrInvalidZipCode)
//	zipstate.IsValid("60614-7890")                   // true
//
// # Names and Abbreviations
//
// Conversions come in two forms. The plain form reports a miss as an error
// matching ErrUnknownState; the Or form returns the caller's default as is:
//
//	abbr, err := zipstate.StateToAbbr("texas")       // "TX"
//	name := zipstate.AbbrToStateOr("QQ", "TEXAS")    // "TEXAS"
//	abbr, err = zipstate.NormToAbbr("fLoRiDa")       // "FL"
//	zipstate.FormatState("new york")                 // "New York"
//	zipstate.FormatState("qQq")                      // "qQq"
//
// # Custom Datasets
//
// Open reads artifacts from any blobstore.BlobStore, for example one
// produced by the builder package:
//
//	store := blobstore.NewLocalStore("/var/lib/zipstate")
//	db, err := zipstate.Open(ctx,
//	    zipstate.WithArtifact(store, "zipcodes.json.gz"),
//	    zipstate.WithLogger(zipstate.NewJSONLogger(slog.LevelInfo)),
//	)
//
// # Errors
//
// Malformed ZIP codes are always reported. Valid codes that the dataset
// does not know are reported as absent (ok == false) with a nil error.
// Load failures match ErrDatasetLoad; package-level functions panic on them
// since the embedded artifact is part of the build.
package zipstate
