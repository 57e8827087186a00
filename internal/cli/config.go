package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/zipstate/blobstore"
	miniostore "github.com/hupe1980/zipstate/blobstore/minio"
	s3store "github.com/hupe1980/zipstate/blobstore/s3"
	"github.com/hupe1980/zipstate/codec"
	"github.com/hupe1980/zipstate/dataset"
)

// Dataset sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceS3       = "s3"
	SourceMinio    = "minio"
)

var errInvalidConfig = errors.New("invalid config")

// Config is the optional TOML file selecting where artifacts live.
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	S3      S3Config      `toml:"s3"`
	Minio   MinioConfig   `toml:"minio"`
}

type DatasetConfig struct {
	Source string `toml:"source"`
	Path   string `toml:"path"`
	Codec  string `toml:"codec"`
}

type S3Config struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix"`
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`
}

type MinioConfig struct {
	Endpoint  string `toml:"endpoint"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source: SourceEmbedded,
			Path:   dataset.EmbeddedName,
			Codec:  codec.Default.Name(),
		},
	}
}

// LoadConfig reads path, or returns the defaults when path is empty.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Dataset.Source == "" {
		c.Dataset.Source = SourceEmbedded
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = dataset.EmbeddedName
	}
	if c.Dataset.Codec == "" {
		c.Dataset.Codec = codec.Default.Name()
	}
	if _, ok := codec.ByName(c.Dataset.Codec); !ok {
		return fmt.Errorf("%w: unknown codec %q (want one of %v)", errInvalidConfig, c.Dataset.Codec, codec.Names())
	}

	switch c.Dataset.Source {
	case SourceEmbedded, SourceFile:
	case SourceS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("%w: s3.bucket is required", errInvalidConfig)
		}
	case SourceMinio:
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" {
			return fmt.Errorf("%w: minio.endpoint and minio.bucket are required", errInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown dataset source %q", errInvalidConfig, c.Dataset.Source)
	}
	return nil
}

// Codec returns the configured document codec.
func (c *Config) Codec() codec.Codec {
	cd, ok := codec.ByName(c.Dataset.Codec)
	if !ok {
		return codec.Default
	}
	return cd
}

// Store opens the configured blob store and returns it with the artifact
// name inside it.
func (c *Config) Store(ctx context.Context) (blobstore.BlobStore, string, error) {
	switch c.Dataset.Source {
	case SourceFile:
		return blobstore.NewLocalStore(filepath.Dir(c.Dataset.Path)), filepath.Base(c.Dataset.Path), nil
	case SourceS3:
		opts := []s3store.Option{s3store.WithPrefix(c.S3.Prefix)}
		if c.S3.Region != "" {
			opts = append(opts, s3store.WithRegion(c.S3.Region))
		}
		if c.S3.Endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(c.S3.Endpoint))
		}
		store, err := s3store.New(ctx, c.S3.Bucket, opts...)
		if err != nil {
			return nil, "", err
		}
		return store, c.Dataset.Path, nil
	case SourceMinio:
		client, err := minio.New(c.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(c.Minio.AccessKey, c.Minio.SecretKey, ""),
			Secure: c.Minio.Secure,
		})
		if err != nil {
			return nil, "", fmt.Errorf("minio client: %w", err)
		}
		return miniostore.NewStore(client, c.Minio.Bucket, c.Minio.Prefix), c.Dataset.Path, nil
	default:
		return dataset.Embedded(), dataset.EmbeddedName, nil
	}
}
