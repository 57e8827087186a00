package builder

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hupe1980/zipstate/blobstore"
	"github.com/hupe1980/zipstate/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "US\t78701\tAustin\tTexas\tTX\tTravis\t453\t\t\t30.2713\t-97.7426\t4\n" +
	"US\t02134\tAllston\tMassachusetts\tMA\tSuffolk\t025\t\t\t42.3539\t-71.1337\t4\n" +
	"US\t78701\tAustin Dup\tOklahoma\tOK\t\t\t\t\t0\t0\t1\n" +
	"US\t00601\tAdjuntas\tPuerto Rico\tPR\tAdjuntas\t001\t\t\t18.1788\t-66.7516\t\n" +
	"US\t09001\tAPO\tArmed Forces Europe\tAE\t\t\t\t\t0\t0\t\n" +
	"US\t1234\tBroken\tTexas\tTX\t\t\t\t\t0\t0\t\n" +
	"\n" +
	"US\t20500\tWashington\tDistrict of Columbia\tDC\t\t001\t\t\t38.8951\t-77.0364\t4\r\n"

func TestParseGeoNames(t *testing.T) {
	zips, stats, err := ParseGeoNames(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"78701": 43,
		"02134": 19,
		"20500": 7,
	}, zips)
	assert.Equal(t, Stats{Rows: 7, Kept: 3, Duplicates: 1, Skipped: 3}, stats)
}

func TestParseGeoNames_Malformed(t *testing.T) {
	_, _, err := ParseGeoNames(strings.NewReader("US\t78701\tAustin\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 1")
}

func TestVersion(t *testing.T) {
	date := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"GeoNames US (2024-03-09) [https://download.geonames.org/export/zip/US.zip]",
		Version(date, DefaultURL),
	)
}

func TestChecksum(t *testing.T) {
	sum, err := Checksum(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, dataset.CompressionGzip, compressionFor("zipcodes.json.gz"))
	assert.Equal(t, dataset.CompressionZSTD, compressionFor("zipcodes.json.zst"))
	assert.Equal(t, dataset.CompressionLZ4, compressionFor("zipcodes.json.lz4"))
	assert.Equal(t, dataset.CompressionNone, compressionFor("zipcodes.json"))
	assert.Equal(t, dataset.CompressionGzip, compressionFor("zipcodes"))
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	res, err := New(store, "zipcodes.json.zst").Build(ctx, strings.NewReader(sample), "test build")
	require.NoError(t, err)
	assert.Equal(t, "zstd", res.Compression)
	assert.Equal(t, 3, res.Stats.Kept)
	assert.Len(t, res.Checksum, 64)

	ds, err := dataset.NewLoader(store, "zipcodes.json.zst").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "test build", ds.Version())
	assert.Equal(t, dataset.CompressionZSTD, ds.Compression())
	assert.Equal(t, res.Bytes, ds.Size())
	assert.Equal(t, 3, ds.Len())

	s, ok := ds.Lookup("78701")
	require.True(t, ok)
	assert.Equal(t, "TX", s.Abbr)

	_, ok = ds.Lookup("00601")
	assert.False(t, ok)
}

func TestBuild_ReadOnlyStore(t *testing.T) {
	_, err := New(dataset.Embedded(), "zipcodes.json.gz").
		Build(context.Background(), strings.NewReader(sample), "v")
	assert.ErrorIs(t, err, blobstore.ErrReadOnly)
}

func archive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDownload(t *testing.T) {
	payload := archive(t, map[string]string{
		DataFile:    sample,
		ReadmeFile:  "readme",
		"other.txt": "ignored",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "data")
	files, err := NewDownloader(0, nil).Download(context.Background(), srv.URL+"/US.zip", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(files.Data)
	require.NoError(t, err)
	assert.Equal(t, sample, string(data))

	readme, err := os.ReadFile(files.Readme)
	require.NoError(t, err)
	assert.Equal(t, "readme", string(readme))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := NewDownloader(0, nil).Download(context.Background(), srv.URL, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDownload_MissingMember(t *testing.T) {
	payload := archive(t, map[string]string{DataFile: sample})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	_, err := NewDownloader(0, nil).Download(context.Background(), srv.URL, t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionFile(t *testing.T) {
	dir := t.TempDir()
	v := Version(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), DefaultURL)
	require.NoError(t, WriteVersion(dir, v))

	got, err := ReadVersion(dir)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
