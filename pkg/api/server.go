package api

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ferien-api/schulferien/pkg/defaults"
	"github.com/ferien-api/schulferien/pkg/logging"
	"github.com/ferien-api/schulferien/pkg/query"
	"github.com/ferien-api/schulferien/pkg/server"
	"github.com/ferien-api/schulferien/pkg/store"
)

const (
	name           = "ferienapi"
	versionDefault = "dev"

	// EnvDataDir selects a directory of {year}.json files instead of the
	// embedded data set.
	EnvDataDir = "FERIEN_DATA_DIR"

	// EnvCacheMaxAge sets the Cache-Control max-age, in seconds, of
	// successful query responses.
	EnvCacheMaxAge = "FERIEN_CACHE_MAX_AGE_SECONDS"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/ferien-api/schulferien/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options configures the API server.
type Options struct {
	// DataDir is an external data directory. Empty uses the embedded data.
	DataDir string

	// CacheMaxAge is the Cache-Control max-age of successful responses.
	CacheMaxAge time.Duration

	// Port overrides the listen port when positive.
	Port int
}

// OptionsFromEnv reads Options from the environment.
func OptionsFromEnv() Options {
	opts := Options{
		DataDir:     os.Getenv(EnvDataDir),
		CacheMaxAge: defaults.CacheMaxAge,
	}
	if s := os.Getenv(EnvCacheMaxAge); s != "" {
		if seconds, err := strconv.Atoi(s); err == nil && seconds >= 0 {
			opts.CacheMaxAge = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid cache max-age", "env", EnvCacheMaxAge, "value", s)
		}
	}
	return opts
}

// OpenStore opens the record store over dataDir, or over the embedded data
// set when dataDir is empty.
func OpenStore(dataDir string) (*store.Store, error) {
	if dataDir == "" {
		return store.New(store.NewEmbeddedDataProvider())
	}
	provider, err := store.NewDirDataProvider(store.DirProviderConfig{Dir: dataDir})
	if err != nil {
		return nil, err
	}
	return store.New(provider)
}

// NewServer builds the API server: record store, query service and routes.
func NewServer(opts Options) (*server.Server, error) {
	st, err := OpenStore(opts.DataDir)
	if err != nil {
		return nil, err
	}

	slog.Info("holiday data",
		"source", st.Source(),
		"years", st.AvailableYears(),
	)

	svc := query.NewService(st, query.WithCacheMaxAge(opts.CacheMaxAge))

	cfg := server.NewConfig()
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}

	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(svc.Routes()),
		server.WithReadinessCheck(st.IsHealthy),
	), nil
}

// Serve starts the API server configured from the environment and blocks
// until shutdown.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	return Run(context.Background(), OptionsFromEnv())
}

// Run starts the API server with opts and blocks until ctx is canceled or
// the process is signaled. Logging must already be configured.
func Run(ctx context.Context, opts Options) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s, err := NewServer(opts)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
