package anoncreds

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/metrics"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLibraryPath = native.EnvLibraryPath
	EnvLogLevel    = "ANONCREDS_LOG_LEVEL"
)

// Config describes how Open loads and instruments the native library.
type Config struct {
	// LibraryPath is the shared object to load. Empty means
	// $ANONCREDS_LIBRARY_PATH, then the working directory, the executable's
	// directory and the dynamic linker's search path.
	LibraryPath string

	// Logger receives call diagnostics. Nil means slog.Default().
	Logger logging.Logger

	// Registerer, when set, receives the binding's Prometheus collectors.
	Registerer prometheus.Registerer

	// TracerProvider overrides the global otel provider.
	TracerProvider trace.TracerProvider
}

// ConfigFromEnv builds a Config from ANONCREDS_LIBRARY_PATH and
// ANONCREDS_LOG_LEVEL. The logger writes text records to stderr.
func ConfigFromEnv() (Config, error) {
	level, err := logging.ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("anoncreds: %s: %w", EnvLogLevel, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return Config{
		LibraryPath: os.Getenv(EnvLibraryPath),
		Logger:      logging.New(slog.New(handler)),
	}, nil
}

func (c Config) options() []Option {
	opts := []Option{WithLogger(c.Logger), WithTracerProvider(c.TracerProvider)}
	if c.Registerer != nil {
		opts = append(opts, WithMetrics(metrics.New(c.Registerer)))
	}
	return opts
}

var openLibrary = native.Open

// Open loads libanoncreds and returns a facade that owns it.
//
// Every load failure matches ErrLibraryLoad. The cause is kept as well:
// ErrLibraryNotFound when no shared object was located, ErrLibraryBind when
// one was loaded but lacks entry points. Anything else means a file was
// found and the dynamic loader rejected it.
func Open(cfg Config) (*Anoncreds, error) {
	lib, err := openLibrary(cfg.LibraryPath)
	if err != nil {
		if errors.Is(err, native.ErrNotBuilt) {
			return nil, ErrNotBuilt
		}
		return nil, fmt.Errorf("%w: %w", ErrLibraryLoad, err)
	}
	return New(lib, cfg.options()...), nil
}
