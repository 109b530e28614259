package render

import (
	"bytes"
	"fmt"

	"github.com/nullsign/nullsign/pkg/geometry"
	"github.com/nullsign/nullsign/pkg/glyph"
)

// READMEName is the file name of the generated description payload.
const READMEName = "README.md"

// RunInfo identifies a generation run in the README payload.
type RunInfo struct {
	ID      string // run UUID
	Version string // generator version
	Preset  string // preset name, "none" when unset
}

// RenderREADME produces the human-readable description written next to the
// SVG files: the resolved geometry, the derived lengths, and the file list.
func RenderREADME(c glyph.Config, variants []string, info RunInfo) []byte {
	var buf bytes.Buffer

	buf.WriteString("# nullsign assets\n\n")
	buf.WriteString("Parameterized circle-and-slash symbol set. Regenerate with the\n")
	buf.WriteString("parameters below to reproduce these files exactly.\n\n")

	fmt.Fprintf(&buf, "- generator: nullsign %s\n", info.Version)
	fmt.Fprintf(&buf, "- run: %s\n", info.ID)
	fmt.Fprintf(&buf, "- preset: %s\n\n", info.Preset)

	buf.WriteString("## Geometry\n\n")
	buf.WriteString("| parameter | value |\n|---|---|\n")
	rows := []struct {
		name  string
		value float64
	}{
		{"center x", c.CenterX},
		{"center y", c.CenterY},
		{"circle stroke", c.CircleStroke},
		{"bold radius", c.RadiusBold},
		{"slash stroke", c.SlashStroke},
		{"edge gap", c.EdgeGap},
		{"overshoot", c.Overshoot},
		{"angle (deg)", c.AngleDegrees},
		{"ring outer", c.RingOuter},
		{"ring inner", c.RingInner},
		{"knock gap (derived)", c.KnockGap},
		{"knock radius (derived)", c.KnockRadius},
	}
	for _, row := range rows {
		fmt.Fprintf(&buf, "| %s | %s |\n", row.name, num(row.value))
	}

	buf.WriteString("\n## Derived lengths\n\n")
	fmt.Fprintf(&buf, "- interior slash: %s (radius %s, gap %s)\n",
		num(geometry.SafeLength(c.RadiusBold, c.SlashStroke, c.EdgeGap)), num(c.RadiusBold), num(c.EdgeGap))
	fmt.Fprintf(&buf, "- knockout bar: %s (ring outer %s, knock gap %s)\n",
		num(geometry.SafeLength(c.RingOuter, 0, c.KnockGap)), num(c.RingOuter), num(c.KnockGap))
	fmt.Fprintf(&buf, "- cut-through slash: %s (ring outer %s, overshoot %s)\n",
		num(geometry.OvershootLength(c.RingOuter, c.Overshoot)), num(c.RingOuter), num(c.Overshoot))

	buf.WriteString("\n## Files\n\n")
	for _, v := range variants {
		fmt.Fprintf(&buf, "- `%s` — %s\n", FileName(v), variantBlurb(v))
	}

	return buf.Bytes()
}

func variantBlurb(variant string) string {
	switch variant {
	case VariantOutline:
		return "stroked circle with an interior slash, rounded non-touching ends"
	case VariantRing:
		return "filled ring with a rounded knockout bar"
	case VariantCut:
		return "filled ring with the slash cutting through the boundary"
	case VariantTilted:
		return "knockout ring at a steeper tilt"
	case VariantMonogram:
		return "light ring and knockout on a dark rounded tile"
	default:
		return "unknown variant"
	}
}
