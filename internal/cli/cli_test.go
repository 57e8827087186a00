package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/zipstate"
	"github.com/hupe1980/zipstate/builder"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStateCmd(t *testing.T) {
	out, err := run(t, "state", "78701", "02134", "60614-2803", "00000")
	require.NoError(t, err)
	assert.Equal(t, "78701\tTX\n02134\tMA\n60614-2803\tIL\n00000\t-\n", out)

	out, err = run(t, "state", "--full", "80202")
	require.NoError(t, err)
	assert.Equal(t, "80202\tColorado\n", out)

	_, err = run(t, "state", "123")
	require.Error(t, err)
	assert.ErrorIs(t, err, zipstate.ErrInvalidZipCode)
}

func TestStateCmd_JSON(t *testing.T) {
	out, err := run(t, "state", "-o", "json", "78701")
	require.NoError(t, err)

	var results []stateResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, []stateResult{{Code: "78701", Found: true, State: "TX", Name: "Texas"}}, results)
}

func TestValidCmd_YAML(t *testing.T) {
	out, err := run(t, "valid", "--output", "yaml", "606", "60614-7890")
	require.NoError(t, err)

	var results []validResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	assert.Equal(t, []validResult{{Code: "606", Valid: false}, {Code: "60614-7890", Valid: true}}, results)
}

func TestValidCmd_SkipsDataset(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zipstate.toml")
	cfg := "[dataset]\nsource = \"file\"\npath = \"" + filepath.ToSlash(filepath.Join(dir, "missing.json.gz")) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "--config", cfgPath, "valid", "78701", "606147890")
	require.NoError(t, err)
	assert.Equal(t, "78701\ttrue\n606147890\tfalse\n", out)

	_, err = run(t, "--config", cfgPath, "state", "78701")
	assert.ErrorIs(t, err, zipstate.ErrDatasetLoad)
}

func TestConvertCmds(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abbr", "texas"}, "TX\n"},
		{[]string{"abbr", "Texass", "--default", "none"}, "none\n"},
		{[]string{"name", "QQ", "--default", "TEXAS"}, "TEXAS\n"},
		{[]string{"name", "ny"}, "New York\n"},
		{[]string{"norm", "fLoRiDa"}, "FL\n"},
		{[]string{"norm", "--full", "tX"}, "Texas\n"},
		{[]string{"norm", "Atlantis"}, "\n"},
		{[]string{"format", "new york"}, "New York\n"},
		{[]string{"format", "qQq"}, "qQq\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertCmds_Strict(t *testing.T) {
	for _, args := range [][]string{
		{"abbr", "--strict", "TX"},
		{"name", "--strict", "Texas"},
		{"norm", "--strict", "Tex"},
		{"format", "--strict", "qQq"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, zipstate.ErrUnknownState, args)
	}
}

func TestZipsCmd(t *testing.T) {
	out, err := run(t, "zips", "--count", "district of columbia")
	require.NoError(t, err)
	n := strings.TrimSpace(out)

	out, err = run(t, "zips", "DC")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, n, strconv.Itoa(len(lines)))
	assert.Equal(t, "20001", lines[1])
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version", "-o", "json")
	require.NoError(t, err)

	var res versionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, zipstate.DatasetVersion(), res.Dataset)
	assert.Equal(t, "state_only", res.Kind)
	assert.Equal(t, "gzip", res.Compression)
	assert.Contains(t, res.Tool, "zipstate")
}

func TestUnknownOutput(t *testing.T) {
	_, err := run(t, "valid", "-o", "xml", "78701")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

const geonames = "US\t73301\tAustin\tTexas\tTX\tTravis\t453\t\t\t30.2\t-97.7\t4\n" +
	"US\t99501\tAnchorage\tAlaska\tAK\tAnchorage\t020\t\t\t61.2\t-149.9\t4\n" +
	"US\t00601\tAdjuntas\tPuerto Rico\tPR\t\t\t\t\t18.1\t-66.7\t\n"

func TestBuildCmd_FileSource(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, builder.DataFile), []byte(geonames), 0o644))
	require.NoError(t, builder.WriteVersion(dataDir, "GeoNames US (2025-01-02) [test]"))

	artifact := filepath.Join(dir, "dist", "custom.json.zst")
	cfgPath := filepath.Join(dir, "zipstate.toml")
	cfg := "[dataset]\nsource = \"file\"\npath = \"" + filepath.ToSlash(artifact) + "\"\ncodec = \"json\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "--config", cfgPath, "build", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote custom.json.zst (GeoNames US (2025-01-02) [test]): 2 zip codes")
	assert.FileExists(t, artifact)

	out, err = run(t, "--config", cfgPath, "state", "73301", "99501", "00601")
	require.NoError(t, err)
	assert.Equal(t, "73301\tTX\n99501\tAK\n00601\t-\n", out)

	out, err = run(t, "--config", cfgPath, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dataset: GeoNames US (2025-01-02) [test]")
	assert.Contains(t, out, "2 zip codes")
	assert.Contains(t, out, "zstd")
}

func TestBuildCmd_NameFlag(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, builder.DataFile), []byte(geonames), 0o644))
	require.NoError(t, builder.WriteVersion(dataDir, "GeoNames US (2025-01-02) [test]"))

	dist := filepath.Join(dir, "dist")
	cfgPath := filepath.Join(dir, "zipstate.toml")
	cfg := "[dataset]\nsource = \"file\"\npath = \"" + filepath.ToSlash(filepath.Join(dist, "zipcodes.json.gz")) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "--config", cfgPath, "build", "--data-dir", dataDir, "--name", "other.json.gz")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote other.json.gz")
	assert.FileExists(t, filepath.Join(dist, "other.json.gz"))
	assert.NoFileExists(t, filepath.Join(dist, "zipcodes.json.gz"))
}

func TestBuildCmd_Checksum(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, builder.DataFile), []byte("abc"), 0o644))

	out, err := run(t, "build", "--checksum", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)
}

func TestBuildCmd_MissingVersion(t *testing.T) {
	dataDir := t.TempDir()
	_, err := run(t, "build", "--data-dir", dataDir, "--dest", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--download")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, cfg.Dataset.Source)
	assert.Equal(t, "go-json", cfg.Codec().Name())

	dir := t.TempDir()
	write := func(body string) string {
		p := filepath.Join(dir, "c.toml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	cfg, err = LoadConfig(write("[dataset]\nsource = \"minio\"\npath = \"zips/zipcodes.json.gz\"\n[minio]\nendpoint = \"localhost:9000\"\nbucket = \"data\"\nsecure = true\n"))
	require.NoError(t, err)
	assert.Equal(t, SourceMinio, cfg.Dataset.Source)
	assert.True(t, cfg.Minio.Secure)

	_, err = LoadConfig(write("[dataset]\nsource = \"s3\"\n"))
	assert.ErrorIs(t, err, errInvalidConfig)

	_, err = LoadConfig(write("[dataset]\nsource = \"ftp\"\n"))
	assert.ErrorIs(t, err, errInvalidConfig)

	_, err = LoadConfig(write("[dataset]\ncodec = \"xml\"\n"))
	assert.ErrorIs(t, err, errInvalidConfig)

	_, err = LoadConfig(write("not toml ["))
	assert.Error(t, err)
}
