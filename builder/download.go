package builder

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// Files are the paths a download extracted.
type Files struct {
	Data   string
	Readme string
}

// Downloader fetches the GeoNames archive with retries.
type Downloader struct {
	client *retryablehttp.Client
}

// NewDownloader creates a Downloader. logger may be nil.
func NewDownloader(retryMax int, logger *slog.Logger) *Downloader {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.Logger = nil
	if logger != nil {
		client.Logger = logger
	}
	return &Downloader{client: client}
}

// Download fetches the archive at url with default settings.
func Download(ctx context.Context, url, dir string) (Files, error) {
	return NewDownloader(3, nil).Download(ctx, url, dir)
}

// Download fetches the zip archive at url and extracts US.txt and
// readme.txt into dir.
func (d *Downloader) Download(ctx context.Context, url, dir string) (Files, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, err
	}

	tmp, err := os.CreateTemp(dir, "download-*.zip")
	if err != nil {
		return Files{}, err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	size, err := d.fetch(ctx, url, tmp)
	if err != nil {
		return Files{}, err
	}

	zr, err := zip.NewReader(tmp, size)
	if err != nil {
		return Files{}, fmt.Errorf("builder: open archive: %w", err)
	}

	files := Files{
		Data:   filepath.Join(dir, DataFile),
		Readme: filepath.Join(dir, ReadmeFile),
	}
	if err := extract(zr, DataFile, files.Data); err != nil {
		return Files{}, err
	}
	if err := extract(zr, ReadmeFile, files.Readme); err != nil {
		return Files{}, err
	}
	return files, nil
}

func (d *Downloader) fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("builder: download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("builder: download %s: unexpected status %s", url, resp.Status)
	}
	return io.Copy(w, resp.Body)
}

func extract(zr *zip.Reader, name, dst string) error {
	for _, f := range zr.File {
		if f.Name != name && !strings.HasSuffix(f.Name, "/"+name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		out, err := os.Create(dst)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, rc); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	}
	return fmt.Errorf("builder: archive has no %s: %w", name, os.ErrNotExist)
}

// WriteVersion stores version in dir/version.txt.
func WriteVersion(dir, version string) error {
	return os.WriteFile(filepath.Join(dir, VersionFile), []byte(version+"\n"), 0o644)
}

// ReadVersion returns the stamp stored by WriteVersion.
func ReadVersion(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, VersionFile))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
