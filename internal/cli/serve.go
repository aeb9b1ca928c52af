package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartopt/internal/api"
	"github.com/matzehuels/chartopt/pkg/cache"
	"github.com/matzehuels/chartopt/pkg/metrics"
	"github.com/matzehuels/chartopt/pkg/pipeline"
	"github.com/matzehuels/chartopt/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// serveOpts holds the flags of the serve command. Each falls back to an
// environment variable so containers can be configured without flags.
type serveOpts struct {
	addr      string        // listen address (CHARTOPT_ADDR)
	mongoURI  string        // MongoDB URI for chart storage (CHARTOPT_MONGO_URI)
	mongoDB   string        // MongoDB database (CHARTOPT_MONGO_DB)
	storeDir  string        // directory for file-backed storage (CHARTOPT_STORE_DIR)
	redisAddr string        // Redis address for the document cache (CHARTOPT_REDIS_ADDR)
	prefix    string        // cache key prefix for shared Redis instances (CHARTOPT_CACHE_PREFIX)
	cacheTTL  time.Duration // cache entry lifetime (CHARTOPT_CACHE_TTL)
	noCache   bool          // disable the document cache
	metrics   bool          // expose /metrics (CHARTOPT_METRICS=false disables)
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      envOr("CHARTOPT_ADDR", ":8080"),
		mongoURI:  envOr("CHARTOPT_MONGO_URI", ""),
		mongoDB:   envOr("CHARTOPT_MONGO_DB", storage.DefaultMongoDatabase),
		storeDir:  envOr("CHARTOPT_STORE_DIR", ""),
		redisAddr: envOr("CHARTOPT_REDIS_ADDR", ""),
		prefix:    envOr("CHARTOPT_CACHE_PREFIX", ""),
		cacheTTL:  envDuration("CHARTOPT_CACHE_TTL", cache.TTLDocument),
		metrics:   envOr("CHARTOPT_METRICS", "true") != "false",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "MongoDB URI for chart storage")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.storeDir, "store-dir", opts.storeDir, "store charts as files in this directory")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "Redis address for the document cache")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", opts.prefix, "prefix for cache keys")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "cache entry lifetime")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", opts.metrics, "serve Prometheus metrics on /metrics")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	store, err := c.openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	ch, err := c.openCache(ctx, opts)
	if err != nil {
		return err
	}
	var keyer cache.Keyer
	if opts.prefix != "" {
		keyer = cache.NewScopedKeyer(nil, opts.prefix)
	}
	runner := pipeline.NewRunner(ch, keyer, c.Logger)
	runner.TTL = opts.cacheTTL
	defer runner.Close()

	handler := api.NewServer(runner, store, c.Logger)
	if opts.metrics {
		m := metrics.New()
		m.Install()
		handler.Handle("/metrics", m.Handler())
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	printSuccess("Serving on %s", opts.addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore picks MongoDB, then a directory, then memory.
func (c *CLI) openStore(ctx context.Context, opts *serveOpts) (storage.Store, error) {
	switch {
	case opts.mongoURI != "":
		store, err := storage.NewMongoStore(ctx, storage.MongoOptions{URI: opts.mongoURI, Database: opts.mongoDB})
		if err != nil {
			return nil, err
		}
		c.Logger.Info("chart store", "backend", "mongo", "database", opts.mongoDB)
		return store, nil
	case opts.storeDir != "":
		store, err := storage.NewFileStore(opts.storeDir)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("chart store", "backend", "file", "dir", opts.storeDir)
		return store, nil
	}
	printWarning("Charts are kept in memory and lost on exit (set --mongo-uri or --store-dir)")
	return storage.NewMemoryStore(), nil
}

// openCache picks Redis, then process memory.
func (c *CLI) openCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisAddr == "":
		c.Logger.Info("document cache", "backend", "memory", "ttl", opts.cacheTTL)
		return cache.NewMemoryCache(), nil
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: opts.redisAddr})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("document cache", "backend", "redis", "addr", opts.redisAddr, "ttl", opts.cacheTTL)
	return rc, nil
}
