// Package glyph defines the resolved geometry configuration for the
// circle-and-slash symbol family and the layered resolver that produces it.
//
// A Config is built once per run from three layered sources: compiled-in
// base defaults, an optional named preset, and explicit numeric overrides.
// Explicit overrides are clamped to per-field ranges and always win over
// preset values. Resolution never fails; out-of-range input is clamped and
// unknown presets contribute nothing.
package glyph

// Canvas is the square viewBox edge length all variants are drawn on.
// The glyph is anchored at the canvas midpoint.
const Canvas = 96.0

// Config is a fully resolved geometry configuration. It is constructed by
// Resolve, consumed read-only by the renderers, and discarded after the run.
type Config struct {
	// CenterX, CenterY anchor the glyph on the canvas.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// CircleStroke is the boundary line thickness of the stroke-drawn
	// circle (outline variant only).
	CircleStroke float64 `json:"circle_stroke"`

	// RadiusBold is the radius of the stroke-drawn circle.
	RadiusBold float64 `json:"radius_bold"`

	// SlashStroke is the thickness of the diagonal element. The same value
	// is used as the knockout bar thickness in the ring variants.
	SlashStroke float64 `json:"slash_stroke"`

	// EdgeGap is the minimum clearance between the slash endpoints and the
	// circle's outer edge in interior-containment mode.
	EdgeGap float64 `json:"edge_gap"`

	// Overshoot is how far the slash endpoints extend past the circle's
	// edge in cut-through mode. EdgeGap and Overshoot are mutually
	// exclusive interpretations; each variant reads exactly one of them.
	Overshoot float64 `json:"overshoot"`

	// AngleDegrees rotates the diagonal about the center. Always negative:
	// the slash tilts from upper-left to lower-right.
	AngleDegrees float64 `json:"angle_degrees"`

	// RingOuter and RingInner define the filled annulus. Ring thickness is
	// RingOuter - RingInner and never degenerates below minRingThickness.
	RingOuter float64 `json:"ring_outer"`
	RingInner float64 `json:"ring_inner"`

	// KnockGap is the clearance between the knockout endpoints and the
	// ring's outer edge. Derived: max(EdgeGap+1, 5), never set directly.
	KnockGap float64 `json:"knock_gap"`

	// KnockRadius is the corner rounding of the knockout bar. Derived from
	// SlashStroke; renderers cap it at the knockout half-length.
	KnockRadius float64 `json:"knock_radius"`
}

// Base returns the compiled-in default configuration. All fields are
// populated and in range; resolving with no preset and no overrides yields
// exactly this value.
func Base() Config {
	return withDerived(Config{
		CenterX:      Canvas / 2,
		CenterY:      Canvas / 2,
		CircleStroke: 6,
		RadiusBold:   32,
		SlashStroke:  12,
		EdgeGap:      6,
		Overshoot:    6,
		AngleDegrees: -38,
		RingOuter:    38,
		RingInner:    26,
	})
}

// Field ranges enforced on explicit overrides.
const (
	MinSlashStroke = 4
	MaxSlashStroke = 24

	MinEdgeGap = 2
	MaxEdgeGap = 16

	// Angle is always a negative tilt; zero or positive input clamps to -10.
	MinAngle = -60
	MaxAngle = -10

	MinRadiusBold = 20
	MaxRadiusBold = 46

	MinRingOuter = 26
	MaxRingOuter = 48

	// RingInner's upper bound depends on the resolved RingOuter.
	MinRingInner     = 14
	minRingThickness = 6

	MinOvershoot = 0
	MaxOvershoot = 16

	MinCircleStroke = 2
	MaxCircleStroke = 12
)

// minKnockGap is the absolute floor for the derived KnockGap.
const minKnockGap = 5

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// withDerived recomputes the derived fields from the settable ones. It runs
// after every resolution step that can change EdgeGap, SlashStroke, or the
// ring radii, so the invariants hold for any resolved Config.
func withDerived(c Config) Config {
	c.KnockGap = c.EdgeGap + 1
	if c.KnockGap < minKnockGap {
		c.KnockGap = minKnockGap
	}
	c.KnockRadius = c.SlashStroke / 2
	return c
}
