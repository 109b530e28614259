// Package pipeline provides the core generation pipeline for nullsign.
//
// This package implements the resolve → render → write pipeline used by
// both the CLI and the preview server. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: layer base defaults, preset, and explicit overrides into
//     one geometry configuration
//  2. Render: emit the SVG payload for each requested variant, plus the
//     README description payload
//  3. Write: hand the named payloads to the file sink
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Preset:   "inter",
//	    Variants: []string{"outline", "ring"},
//	    OutDir:   "dist/icons",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Payloads["nullsign-outline.svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nullsign/nullsign/pkg/glyph"
	"github.com/nullsign/nullsign/pkg/output"
	"github.com/nullsign/nullsign/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultOutDir is the destination directory for generated files.
	DefaultOutDir = "dist"

	// DefaultColor is the glyph color. currentColor defers to the
	// embedding document.
	DefaultColor = "currentColor"

	// DefaultSize is the emitted width/height attribute in pixels.
	DefaultSize = glyph.Canvas
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a generation run.
// This struct supports JSON serialization for cache keys.
type Options struct {
	// Resolve options
	Preset    string          `json:"preset,omitempty"`
	Overrides glyph.Overrides `json:"overrides,omitempty"`

	// Render options
	Variants []string `json:"variants,omitempty"`
	Color    string   `json:"color,omitempty"`
	Size     float64  `json:"size,omitempty"`

	// Write options
	OutDir string `json:"out_dir,omitempty"`

	// Refresh bypasses the artifact cache and re-renders everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks requested variants and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Variants) == 0 {
		o.Variants = append([]string(nil), render.Variants...)
	}
	if err := render.ValidateVariants(o.Variants); err != nil {
		return err
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderOptions converts the appearance settings to render options.
func (o *Options) RenderOptions() []render.Option {
	return []render.Option{
		render.WithColor(o.Color),
		render.WithSize(o.Size),
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run; it also appears in the README
	// payload.
	RunID string

	// Config is the resolved geometry configuration.
	Config glyph.Config

	// ConfigHash is the content hash of the resolved configuration.
	ConfigHash string

	// Preset is the preset that was applied (PresetNone for unknown or
	// absent names).
	Preset glyph.Preset

	// PresetKnown reports whether the requested preset name parsed.
	PresetKnown bool

	// Payloads contains the generated files keyed by output name.
	Payloads output.Payloads

	// Written is the number of files the sink reported written. Zero
	// until Execute's write stage runs.
	Written int

	// Stats contains timing and cache information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RenderTime time.Duration
	WriteTime  time.Duration
	CacheHits  int
	CacheMiss  int
}
