package zipstate

import (
	"log/slog"

	"github.com/hupe1980/zipstate/blobstore"
	"github.com/hupe1980/zipstate/codec"
	"github.com/hupe1980/zipstate/dataset"
)

type options struct {
	codec            codec.Codec
	store            blobstore.BlobStore
	artifact         string
	loader           *dataset.Loader
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Open.
type Option func(*options)

// WithCodec configures the codec used to decode the artifact document.
//
// If nil is passed, codec.Default is used. Ignored when WithLoader is set.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithArtifact reads the dataset from the named blob in store instead of the
// embedded artifact.
//
// Example:
//
//	store := blobstore.NewLocalStore("/var/lib/zipstate")
//	db, _ := zipstate.Open(ctx, zipstate.WithArtifact(store, "zipcodes.json.gz"))
func WithArtifact(store blobstore.BlobStore, name string) Option {
	return func(o *options) {
		o.store = store
		o.artifact = name
	}
}

// WithLoader shares an existing loader, so several DBs decode the artifact
// once between them. It takes precedence over WithArtifact and WithCodec.
func WithLoader(l *dataset.Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &zipstate.BasicMetricsCollector{}
//	db, _ := zipstate.Open(ctx, zipstate.WithMetricsCollector(metrics))
//	// ... use db ...
//	stats := metrics.GetStats()
//	fmt.Printf("Lookups: %d, hits: %d\n", stats.LookupCount, stats.LookupHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := zipstate.NewJSONLogger(slog.LevelInfo)
//	db, _ := zipstate.Open(ctx, zipstate.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *options) newLoader() *dataset.Loader {
	if o.loader != nil {
		return o.loader
	}
	if o.store == nil {
		return dataset.NewEmbeddedLoader(dataset.WithCodec(o.codec))
	}
	return dataset.NewLoader(o.store, o.artifact, dataset.WithCodec(o.codec))
}
