package glyph

// Overrides is a partial configuration: nil fields are absent and leave the
// underlying value untouched. The same shape serves preset partials and
// explicit user overrides; only explicit overrides are clamped.
//
// KnockGap and KnockRadius have no override fields: they are derived after
// every resolution and cannot be set independently.
type Overrides struct {
	CircleStroke *float64 `json:"circle_stroke,omitempty"`
	RadiusBold   *float64 `json:"radius_bold,omitempty"`
	SlashStroke  *float64 `json:"slash_stroke,omitempty"`
	EdgeGap      *float64 `json:"edge_gap,omitempty"`
	Overshoot    *float64 `json:"overshoot,omitempty"`
	AngleDegrees *float64 `json:"angle_degrees,omitempty"`
	RingOuter    *float64 `json:"ring_outer,omitempty"`
	RingInner    *float64 `json:"ring_inner,omitempty"`
}

// IsZero reports whether no field is set.
func (o Overrides) IsZero() bool {
	return o.CircleStroke == nil && o.RadiusBold == nil && o.SlashStroke == nil &&
		o.EdgeGap == nil && o.Overshoot == nil && o.AngleDegrees == nil &&
		o.RingOuter == nil && o.RingInner == nil
}

// Resolve produces a fully populated Config from the three layered sources:
// base defaults, the preset's partial set, and explicit overrides. The
// steps run in a fixed order so precedence is auditable:
//
//  1. start from base
//  2. shallow-merge the preset's fields over it, unclamped
//  3. apply each explicit override, clamped to its field range
//  4. recompute derived fields (KnockGap, KnockRadius)
//
// RingInner's upper bound depends on the already-resolved RingOuter, so the
// ring can never degenerate below the minimum thickness. Resolve never
// fails; malformed input is simply absent and the layered value is kept.
func Resolve(base Config, preset Preset, o Overrides) Config {
	c := merge(base, preset.Partial())

	if o.CircleStroke != nil {
		c.CircleStroke = clamp(*o.CircleStroke, MinCircleStroke, MaxCircleStroke)
	}
	if o.RadiusBold != nil {
		c.RadiusBold = clamp(*o.RadiusBold, MinRadiusBold, MaxRadiusBold)
	}
	if o.SlashStroke != nil {
		c.SlashStroke = clamp(*o.SlashStroke, MinSlashStroke, MaxSlashStroke)
	}
	if o.EdgeGap != nil {
		c.EdgeGap = clamp(*o.EdgeGap, MinEdgeGap, MaxEdgeGap)
	}
	if o.Overshoot != nil {
		c.Overshoot = clamp(*o.Overshoot, MinOvershoot, MaxOvershoot)
	}
	if o.AngleDegrees != nil {
		c.AngleDegrees = clamp(*o.AngleDegrees, MinAngle, MaxAngle)
	}
	if o.RingOuter != nil {
		c.RingOuter = clamp(*o.RingOuter, MinRingOuter, MaxRingOuter)
	}
	// RingOuter is final here; RingInner clamps against it.
	if o.RingInner != nil {
		c.RingInner = clamp(*o.RingInner, MinRingInner, c.RingOuter-minRingThickness)
	}
	if c.RingInner > c.RingOuter-minRingThickness {
		c.RingInner = c.RingOuter - minRingThickness
	}

	return withDerived(c)
}

// merge replaces fields of c with the preset partial's non-nil fields.
// Preset values are authored in range and merge unclamped.
func merge(c Config, p Overrides) Config {
	if p.CircleStroke != nil {
		c.CircleStroke = *p.CircleStroke
	}
	if p.RadiusBold != nil {
		c.RadiusBold = *p.RadiusBold
	}
	if p.SlashStroke != nil {
		c.SlashStroke = *p.SlashStroke
	}
	if p.EdgeGap != nil {
		c.EdgeGap = *p.EdgeGap
	}
	if p.Overshoot != nil {
		c.Overshoot = *p.Overshoot
	}
	if p.AngleDegrees != nil {
		c.AngleDegrees = *p.AngleDegrees
	}
	if p.RingOuter != nil {
		c.RingOuter = *p.RingOuter
	}
	if p.RingInner != nil {
		c.RingInner = *p.RingInner
	}
	return c
}
