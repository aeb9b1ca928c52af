package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartopt/pkg/cache"
	"github.com/matzehuels/chartopt/pkg/errors"
	"github.com/matzehuels/chartopt/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeDocument = "document"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetimes when positive.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → finalize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	// Stage 1: Load
	loadStart := time.Now()
	in, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result := &Result{
		Name:        in.Definition.Name,
		Title:       in.Definition.Title,
		Description: in.Definition.Description,
	}
	if opts.Description == "" {
		opts.Description = in.Definition.Description
	}
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded definition",
		"source", in.Source,
		"series", len(in.Definition.Series),
		"datasets", len(in.Dataset),
		"duration", result.Stats.LoadTime)

	// Stage 2: Finalize
	finalizeStart := time.Now()
	fin, hit, err := r.FinalizeWithCacheInfo(ctx, in, opts)
	if err != nil {
		return nil, fmt.Errorf("finalize: %w", err)
	}
	result.Document = fin.Document
	result.DocumentHash = cache.Hash(fin.Document)
	result.Snapshot = fin.Snapshot
	result.Stats.AxisCount = fin.AxisCount
	result.Stats.SeriesCount = fin.SeriesCount
	result.Stats.RowCount = fin.RowCount
	result.Stats.FinalizeTime = time.Since(finalizeStart)
	result.CacheInfo.DocumentHit = hit

	logger.Info("finalized chart",
		"axes", fin.AxisCount,
		"series", fin.SeriesCount,
		"rows", fin.RowCount,
		"cached", hit,
		"duration", result.Stats.FinalizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, fin, result.Title, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the definition and dataset named by opts.
func (r *Runner) Load(ctx context.Context, opts Options) (*Input, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	source := opts.DefinitionPath
	if len(opts.Definition) > 0 {
		source = "inline"
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	in, err := Load(opts)
	rows := 0
	if in != nil {
		rows = in.Dataset.RowCount()
	}
	hooks.OnLoadComplete(ctx, source, rows, time.Since(start), err)
	return in, err
}

// FinalizeWithCacheInfo finalizes in with caching and returns cache hit info.
//
// Only valid documents are cached; a chart with violations is re-checked on
// every run so the caller always gets the full list.
func (r *Runner) FinalizeWithCacheInfo(ctx context.Context, in *Input, opts Options) (*Finalized, bool, error) {
	var cacheKey string
	if in.DefinitionHash != "" && in.DataHash != "" {
		cacheKey = r.Keyer.DocumentKey(in.DefinitionHash, in.DataHash)
	}

	// Try cache first (unless refresh requested)
	if cacheKey != "" && !opts.Refresh {
		if f, ok := r.getDocument(ctx, cacheKey); ok {
			return f, true, nil // Cache hit
		}
	}

	hooks := observability.Pipeline()
	name := in.Definition.Name
	hooks.OnFinalizeStart(ctx, name)
	start := time.Now()

	f, err := Finalize(in)

	violations := 0
	if ve, ok := errors.AsValidation(err); ok {
		violations = len(ve.Violations)
	}
	hooks.OnFinalizeComplete(ctx, name, violations, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if cacheKey != "" {
		if data, err := marshalFinalized(f); err == nil {
			r.setEntry(ctx, keyTypeDocument, cacheKey, data, cache.TTLDocument)
		}
	}

	return f, false, nil // Cache miss
}

// Finalize is a convenience wrapper that calls FinalizeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Finalize(ctx context.Context, in *Input, opts Options) (*Finalized, error) {
	f, _, err := r.FinalizeWithCacheInfo(ctx, in, opts)
	return f, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f *Finalized, title string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	docHash := cache.Hash(f.Document)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		if !allCached {
			break
		}
		cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format, title))
		if data, hit := r.getEntry(ctx, keyTypeArtifact, cacheKey); hit {
			artifacts[format] = data
		} else {
			allCached = false
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	rendered, err := Render(f.Document, title, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format, title))
		r.setEntry(ctx, keyTypeArtifact, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, f *Finalized, title string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, f, title, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) getDocument(ctx context.Context, key string) (*Finalized, bool) {
	data, hit := r.getEntry(ctx, keyTypeDocument, key)
	if !hit {
		return nil, false
	}
	f, err := unmarshalFinalized(data)
	if err != nil {
		// Fall through to recompute; the fresh entry overwrites this one.
		r.Logger.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	return f, true
}

// getEntry reads key from the cache. Cache failures count as misses.
func (r *Runner) getEntry(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) setEntry(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if r.TTL > 0 {
		ttl = r.TTL
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
