package builder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hupe1980/zipstate/state"
	"github.com/hupe1980/zipstate/zipcode"
)

const (
	// DefaultURL is the GeoNames US postal code export.
	DefaultURL = "https://download.geonames.org/export/zip/US.zip"

	// SourceName prefixes every version stamp.
	SourceName = "GeoNames US"

	// DataFile and ReadmeFile are the archive members a download extracts.
	DataFile   = "US.txt"
	ReadmeFile = "readme.txt"

	// VersionFile holds the version stamp next to the extracted data.
	VersionFile = "version.txt"
)

const (
	colPostalCode = 1
	colAdminCode1 = 4
)

// ErrMalformedRow is returned for a line with too few columns.
var ErrMalformedRow = errors.New("builder: malformed row")

// Stats summarizes a parse.
type Stats struct {
	Rows       int `json:"rows"`
	Kept       int `json:"kept"`
	Duplicates int `json:"duplicates"`
	// Skipped counts rows outside the registry, such as military and
	// territory codes, and rows with unusable postal codes.
	Skipped int `json:"skipped"`
}

// ParseGeoNames reads a GeoNames tab-separated export and maps each ZIP
// code to the ordinal of its state. The first row for a ZIP code wins.
func ParseGeoNames(r io.Reader) (map[string]int, Stats, error) {
	var stats Stats
	zips := make(map[string]int, 45000)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		stats.Rows++

		fields := strings.Split(text, "\t")
		if len(fields) <= colAdminCode1 {
			return nil, stats, fmt.Errorf("%w: line %d has %d columns", ErrMalformedRow, line, len(fields))
		}

		zip := fields[colPostalCode]
		ordinal, ok := state.OrdinalOf(fields[colAdminCode1])
		if !ok || zipcode.Index(zip) < 0 {
			stats.Skipped++
			continue
		}
		if _, dup := zips[zip]; dup {
			stats.Duplicates++
			continue
		}
		zips[zip] = ordinal
		stats.Kept++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("builder: read line %d: %w", line+1, err)
	}
	return zips, stats, nil
}

// Version formats the provenance stamp for a download made on date from url.
func Version(date time.Time, url string) string {
	return fmt.Sprintf("%s (%s) [%s]", SourceName, date.UTC().Format(time.DateOnly), url)
}
