package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nullsign/nullsign/pkg/errors"
	"github.com/nullsign/nullsign/pkg/glyph"
	"github.com/nullsign/nullsign/pkg/manifest"
	"github.com/nullsign/nullsign/pkg/pipeline"
	"github.com/nullsign/nullsign/pkg/render"
)

// overrideFlags holds the numeric geometry flags for generate and serve.
// A flag contributes an override only when it was set explicitly, so
// untouched flags fall through to the preset and base values.
type overrideFlags struct {
	circleStroke float64
	radius       float64
	slashStroke  float64
	edgeGap      float64
	overshoot    float64
	angle        float64
	ringOuter    float64
	ringInner    float64
}

// register adds the geometry flags to cmd. Defaults shown in help are the
// base values; they are not treated as overrides unless set.
func (o *overrideFlags) register(cmd *cobra.Command) {
	base := glyph.Base()
	f := cmd.Flags()
	f.Float64Var(&o.circleStroke, "circle-stroke", base.CircleStroke, "outline circle stroke width")
	f.Float64Var(&o.radius, "radius", base.RadiusBold, "bold circle radius")
	f.Float64Var(&o.slashStroke, "slash-stroke", base.SlashStroke, "slash stroke width")
	f.Float64Var(&o.edgeGap, "edge-gap", base.EdgeGap, "gap between slash ends and circle interior")
	f.Float64Var(&o.overshoot, "overshoot", base.Overshoot, "slash extension beyond the circle (cut variant)")
	f.Float64Var(&o.angle, "angle", base.AngleDegrees, "slash angle in degrees (negative tilts up-right)")
	f.Float64Var(&o.ringOuter, "ring-outer", base.RingOuter, "annulus outer radius")
	f.Float64Var(&o.ringInner, "ring-inner", base.RingInner, "annulus inner radius")
}

// collect converts the explicitly set flags into resolver overrides.
func (o *overrideFlags) collect(cmd *cobra.Command) glyph.Overrides {
	var ov glyph.Overrides
	f := cmd.Flags()
	if f.Changed("circle-stroke") {
		ov.CircleStroke = &o.circleStroke
	}
	if f.Changed("radius") {
		ov.RadiusBold = &o.radius
	}
	if f.Changed("slash-stroke") {
		ov.SlashStroke = &o.slashStroke
	}
	if f.Changed("edge-gap") {
		ov.EdgeGap = &o.edgeGap
	}
	if f.Changed("overshoot") {
		ov.Overshoot = &o.overshoot
	}
	if f.Changed("angle") {
		ov.AngleDegrees = &o.angle
	}
	if f.Changed("ring-outer") {
		ov.RingOuter = &o.ringOuter
	}
	if f.Changed("ring-inner") {
		ov.RingInner = &o.ringInner
	}
	return ov
}

// generateCommand creates the generate command for writing the variant set.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		out      string
		preset   string
		variants []string
		color    string
		size     float64
		noCache  bool
		refresh  bool
		ov       overrideFlags
	)

	cmd := &cobra.Command{
		Use:   "generate [manifest.toml]",
		Short: "Generate the SVG variant set",
		Long: `Generate resolves the glyph geometry and writes one SVG per requested
variant plus a README describing the set.

Geometry resolves in layers: base defaults, then the named preset, then
explicit overrides. Overrides outside their documented range are clamped,
and unknown preset names fall back to the base geometry with a warning.

An optional manifest file supplies the same settings as the flags; flags
set explicitly on the command line take precedence over manifest values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Color:   color,
				Size:    size,
				Refresh: refresh,
			}

			if len(args) == 1 {
				m, err := manifest.Load(args[0])
				if err != nil {
					return err
				}
				applyManifest(&opts, m)
				c.Logger.Debug("loaded manifest", "path", args[0])
			}

			f := cmd.Flags()
			if f.Changed("preset") {
				opts.Preset = preset
			}
			if f.Changed("variant") {
				opts.Variants = variants
			}
			if f.Changed("out") || opts.OutDir == "" {
				opts.OutDir = out
			}
			opts.Overrides = mergeOverrides(opts.Overrides, ov.collect(cmd))

			return c.runGenerate(cmd.Context(), opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", pipeline.DefaultOutDir, "destination directory")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "typeface preset: inter, sf, helvetica")
	cmd.Flags().StringSliceVar(&variants, "variant", nil, fmt.Sprintf("variant(s) to render: %v (default all)", render.Variants))
	cmd.Flags().StringVar(&color, "color", pipeline.DefaultColor, "glyph stroke/fill color")
	cmd.Flags().Float64Var(&size, "size", pipeline.DefaultSize, "emitted width/height in pixels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when cached artifacts exist")
	ov.register(cmd)

	return cmd
}

// runGenerate executes the pipeline and reports results.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, noCache bool) error {
	if opts.Preset != "" {
		if _, ok := glyph.ParsePreset(opts.Preset); !ok {
			printWarning("Unknown preset %q - using base geometry", opts.Preset)
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("init artifact cache: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	sp := newSpinner(ctx, "Rendering variants...")
	sp.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		sp.StopWithError(errors.UserMessage(err))
		return err
	}
	sp.Stop()
	prog.done(fmt.Sprintf("Run %s complete", result.RunID))

	printSuccess("Generated %d files", result.Written)
	for _, name := range result.Payloads.Names() {
		printFile(filepath.Join(opts.OutDir, name))
	}
	printRunStats(result.Stats)
	printNewline()
	printNextStep("Preview the set", "nullsign serve")

	return nil
}

// applyManifest seeds pipeline options from a manifest. Flags set
// explicitly on the command line win afterwards.
func applyManifest(opts *pipeline.Options, m *manifest.Manifest) {
	opts.Preset = m.Preset
	opts.Variants = m.Variants
	opts.OutDir = m.Out
	opts.Overrides = m.GlyphOverrides()
}

// mergeOverrides layers flag overrides over manifest overrides field by field.
func mergeOverrides(base, flags glyph.Overrides) glyph.Overrides {
	if flags.CircleStroke != nil {
		base.CircleStroke = flags.CircleStroke
	}
	if flags.RadiusBold != nil {
		base.RadiusBold = flags.RadiusBold
	}
	if flags.SlashStroke != nil {
		base.SlashStroke = flags.SlashStroke
	}
	if flags.EdgeGap != nil {
		base.EdgeGap = flags.EdgeGap
	}
	if flags.Overshoot != nil {
		base.Overshoot = flags.Overshoot
	}
	if flags.AngleDegrees != nil {
		base.AngleDegrees = flags.AngleDegrees
	}
	if flags.RingOuter != nil {
		base.RingOuter = flags.RingOuter
	}
	if flags.RingInner != nil {
		base.RingInner = flags.RingInner
	}
	return base
}
