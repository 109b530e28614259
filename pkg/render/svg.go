package render

import (
	"bytes"
	"fmt"

	"github.com/nullsign/nullsign/pkg/geometry"
	"github.com/nullsign/nullsign/pkg/glyph"
)

// tiltedExtra is how much steeper the tilted composition leans compared to
// the resolved angle, bounded by the supported angle range.
const tiltedExtra = 7

// Option configures rendering appearance without touching geometry.
type Option func(*renderer)

type renderer struct {
	color string  // slash and ring color
	tile  string  // monogram tile color
	size  float64 // emitted width/height attribute
}

// WithColor sets the glyph color. Defaults to currentColor so the SVG
// inherits from its embedding context.
func WithColor(color string) Option { return func(r *renderer) { r.color = color } }

// WithTileColor sets the monogram background tile color.
func WithTileColor(color string) Option { return func(r *renderer) { r.tile = color } }

// WithSize sets the width/height attributes. The viewBox is unaffected.
func WithSize(size float64) Option { return func(r *renderer) { r.size = size } }

func newRenderer(opts ...Option) renderer {
	r := renderer{color: "currentColor", tile: "#111827", size: glyph.Canvas}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderOutline draws the stroke-drawn circle with an interior slash: the
// empty-set composition. The slash length comes from the interior
// containment policy so the rounded caps keep EdgeGap clearance from the
// circle's boundary.
func renderOutline(c glyph.Config, r renderer) []byte {
	var buf bytes.Buffer
	openSVG(&buf, r.size)

	fmt.Fprintf(&buf, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(c.CenterX), num(c.CenterY), num(c.RadiusBold), r.color, num(c.CircleStroke))

	length := geometry.SafeLength(c.RadiusBold, c.SlashStroke, c.EdgeGap)
	writeSlash(&buf, c, c.AngleDegrees, length, r.color, "round")

	closeSVG(&buf)
	return buf.Bytes()
}

// renderRing draws the filled annulus with the knockout bar subtracted via
// a mask. Knockout endpoints keep KnockGap clearance from the ring's outer
// edge; only the endpoints are constrained, so the bar length ignores its
// own thickness.
func renderRing(c glyph.Config, r renderer) []byte {
	return renderKnockoutRing(c, r, c.AngleDegrees, false)
}

// renderTilted is the ring composition leaning tiltedExtra degrees steeper.
func renderTilted(c glyph.Config, r renderer) []byte {
	angle := c.AngleDegrees - tiltedExtra
	if angle < glyph.MinAngle {
		angle = glyph.MinAngle
	}
	return renderKnockoutRing(c, r, angle, false)
}

// renderMonogram is the ring composition on a dark rounded tile, light
// glyph, for favicon/avatar use.
func renderMonogram(c glyph.Config, r renderer) []byte {
	r.color = "#f9fafb"
	return renderKnockoutRing(c, r, c.AngleDegrees, true)
}

// renderCut draws the prohibition composition: the filled annulus with a
// slash whose endpoints overshoot the outer edge in both directions.
func renderCut(c glyph.Config, r renderer) []byte {
	var buf bytes.Buffer
	openSVG(&buf, r.size)

	fmt.Fprintf(&buf, `  <path d="%s" fill="%s" fill-rule="evenodd"/>`+"\n",
		annulusPath(c), r.color)

	length := geometry.OvershootLength(c.RingOuter, c.Overshoot)
	writeSlash(&buf, c, c.AngleDegrees, length, r.color, "butt")

	closeSVG(&buf)
	return buf.Bytes()
}

func renderKnockoutRing(c glyph.Config, r renderer, angle float64, tile bool) []byte {
	var buf bytes.Buffer
	openSVG(&buf, r.size)

	length := geometry.SafeLength(c.RingOuter, 0, c.KnockGap)
	rx := c.KnockRadius
	if rx > length/2 {
		rx = length / 2
	}

	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <mask id="knockout">` + "\n")
	fmt.Fprintf(&buf, `      <rect width="%s" height="%s" fill="#fff"/>`+"\n",
		num(glyph.Canvas), num(glyph.Canvas))
	fmt.Fprintf(&buf, `      <g transform="%s">`+"\n", slashTransform(c, angle))
	fmt.Fprintf(&buf, `        <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="#000"/>`+"\n",
		num(c.CenterX-length/2), num(c.CenterY-c.SlashStroke/2), num(length), num(c.SlashStroke), num(rx))
	buf.WriteString("      </g>\n")
	buf.WriteString("    </mask>\n")
	buf.WriteString("  </defs>\n")

	if tile {
		fmt.Fprintf(&buf, `  <rect width="%s" height="%s" rx="%s" fill="%s"/>`+"\n",
			num(glyph.Canvas), num(glyph.Canvas), num(glyph.Canvas/4.8), r.tile)
	}

	fmt.Fprintf(&buf, `  <path d="%s" fill="%s" fill-rule="evenodd" mask="url(#knockout)"/>`+"\n",
		annulusPath(c), r.color)

	closeSVG(&buf)
	return buf.Bytes()
}

// writeSlash emits the rotated diagonal as a stroked line centered on the
// glyph anchor.
func writeSlash(buf *bytes.Buffer, c glyph.Config, angle, length float64, color, linecap string) {
	if length <= 0 {
		return // degenerate geometry floors at a zero-length segment
	}
	fmt.Fprintf(buf, `  <g transform="%s">`+"\n", slashTransform(c, angle))
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="%s"/>`+"\n",
		num(c.CenterX-length/2), num(c.CenterY), num(c.CenterX+length/2), num(c.CenterY), color, num(c.SlashStroke), linecap)
	buf.WriteString("  </g>\n")
}

// slashTransform rotates a horizontal segment about the glyph anchor. SVG's
// y axis points down, so the configured negative angle (upper-left to
// lower-right tilt) maps to a positive SVG rotation.
func slashTransform(c glyph.Config, angle float64) string {
	return fmt.Sprintf("rotate(%s %s %s)", num(-angle), num(c.CenterX), num(c.CenterY))
}

// annulusPath builds the even-odd ring path: outer circle minus inner
// circle, each drawn as two arcs.
func annulusPath(c glyph.Config) string {
	return circleSubpath(c.CenterX, c.CenterY, c.RingOuter) + " " + circleSubpath(c.CenterX, c.CenterY, c.RingInner)
}

func circleSubpath(cx, cy, r float64) string {
	return fmt.Sprintf("M %s %s a %s %s 0 1 0 %s 0 a %s %s 0 1 0 %s 0",
		num(cx-r), num(cy), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
}

func openSVG(buf *bytes.Buffer, size float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(glyph.Canvas), num(glyph.Canvas), num(size), num(size))
}

func closeSVG(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}

// num formats a coordinate with minimal digits: integers stay bare, the
// rest keep two decimals.
func num(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
