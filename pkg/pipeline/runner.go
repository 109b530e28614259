package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nullsign/nullsign/pkg/buildinfo"
	"github.com/nullsign/nullsign/pkg/cache"
	"github.com/nullsign/nullsign/pkg/glyph"
	"github.com/nullsign/nullsign/pkg/observability"
	"github.com/nullsign/nullsign/pkg/output"
	"github.com/nullsign/nullsign/pkg/render"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both the CLI and the preview server use this to avoid duplicating
// caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
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

// Execute runs the complete resolve → render → write pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	writeStart := time.Now()
	written, err := output.WriteFiles(opts.OutDir, result.Payloads)
	result.Stats.WriteTime = time.Since(writeStart)
	result.Written = written
	observability.Generator().OnWriteComplete(ctx, opts.OutDir, written, result.Stats.WriteTime, err)
	if err != nil {
		return nil, fmt.Errorf("write outputs: %w", err)
	}

	r.Logger.Info("wrote outputs",
		"dir", opts.OutDir,
		"files", written,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Generate runs resolve and render, producing the payload set without
// touching the file system. The preview server uses this directly.
func (r *Runner) Generate(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:    uuid.NewString(),
		Payloads: make(output.Payloads, len(opts.Variants)+1),
	}

	// Stage 1: Resolve. Never fails: unknown presets are no-ops and
	// overrides clamp.
	result.Preset, result.PresetKnown = glyph.ParsePreset(opts.Preset)
	result.Config = glyph.Resolve(glyph.Base(), result.Preset, opts.Overrides)
	result.ConfigHash = hashConfig(result.Config)
	observability.Generator().OnResolveComplete(ctx, result.Preset.String(), !opts.Overrides.IsZero())

	opts.Logger.Debug("resolved configuration",
		"preset", result.Preset.String(),
		"known", result.PresetKnown,
		"hash", result.ConfigHash[:12])

	// Stage 2: Render each variant through the artifact cache.
	renderStart := time.Now()
	for _, variant := range opts.Variants {
		data, hit, err := r.renderVariant(ctx, variant, result.Config, result.ConfigHash, opts)
		if err != nil {
			return nil, err
		}
		if hit {
			result.Stats.CacheHits++
		} else {
			result.Stats.CacheMiss++
		}
		result.Payloads[render.FileName(variant)] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	// The README carries the run ID, so it is always rendered fresh.
	result.Payloads[render.READMEName] = render.RenderREADME(result.Config, opts.Variants, render.RunInfo{
		ID:      result.RunID,
		Version: buildinfo.Version,
		Preset:  result.Preset.String(),
	})

	r.Logger.Info("rendered variants",
		"variants", opts.Variants,
		"cache_hits", result.Stats.CacheHits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderVariant renders one variant, consulting the artifact cache first.
func (r *Runner) renderVariant(ctx context.Context, variant string, cfg glyph.Config, cfgHash string, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(cfgHash, cache.ArtifactKeyOpts{
		Variant: variant,
		Color:   opts.Color,
		Size:    opts.Size,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Generator().OnRenderStart(ctx, variant)
	start := time.Now()
	data, err := render.Render(variant, cfg, opts.RenderOptions()...)
	observability.Generator().OnRenderComplete(ctx, variant, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashConfig produces the content hash of a resolved configuration.
func hashConfig(c glyph.Config) string {
	data, _ := json.Marshal(c)
	return cache.Hash(data)
}
