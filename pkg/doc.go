// Package pkg provides the core libraries for nullsign asset generation.
//
// # Overview
//
// Nullsign renders the empty-set symbol (a circle crossed by a diagonal
// slash) as a family of static SVG assets. The pkg directory is organized
// into three main areas:
//
//  1. Geometry ([geometry], [glyph]) - segment-length policies and the
//     layered configuration resolver
//  2. Output ([render], [output], [manifest]) - SVG variant templates, the
//     README payload, and the file sink
//  3. Infrastructure ([cache], [pipeline], [errors], [observability]) -
//     artifact caching, orchestration, coded errors, and hooks
//
// # Architecture
//
// The typical data flow through nullsign:
//
//	Preset + Overrides
//	         ↓
//	    [glyph] package (resolve layered configuration)
//	         ↓
//	    [geometry] package (slash segment lengths)
//	         ↓
//	    [render] package (variant SVG + README payloads)
//	         ↓
//	    [output] package (files on disk)
//
// # Quick Start
//
// Resolve a configuration and render one variant:
//
//	import (
//	    "github.com/nullsign/nullsign/pkg/glyph"
//	    "github.com/nullsign/nullsign/pkg/render"
//	)
//
//	cfg := glyph.Resolve(glyph.Base(), glyph.PresetInter, glyph.Overrides{})
//	svg, err := render.Render(render.VariantOutline, cfg)
//
// Or run the whole pipeline through a cached runner:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Preset: "inter"})
package pkg
