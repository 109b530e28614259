// Package manifest loads generation jobs from TOML files, so a repeatable
// asset build can live next to the assets it produces.
//
// A manifest supplies the same surface as the generate flags: a preset
// name, the requested variants, a destination directory, and numeric
// overrides. Flags given explicitly on the command line take precedence
// over manifest values, mirroring the resolver's preset-then-override
// layering.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nullsign/nullsign/pkg/errors"
	"github.com/nullsign/nullsign/pkg/glyph"
)

// Manifest is a generation job description.
//
// Example:
//
//	preset = "inter"
//	variants = ["outline", "ring", "monogram"]
//	out = "dist/icons"
//
//	[overrides]
//	angle = -42.0
//	edge-gap = 7.0
type Manifest struct {
	Preset   string    `toml:"preset"`
	Variants []string  `toml:"variants"`
	Out      string    `toml:"out"`
	Override Overrides `toml:"overrides"`
}

// Overrides are the manifest's optional numeric overrides. Absent keys stay
// nil and fall through the preset/base chain.
type Overrides struct {
	CircleStroke *float64 `toml:"circle-stroke"`
	Radius       *float64 `toml:"radius"`
	SlashStroke  *float64 `toml:"slash-stroke"`
	EdgeGap      *float64 `toml:"edge-gap"`
	Overshoot    *float64 `toml:"overshoot"`
	Angle        *float64 `toml:"angle"`
	RingOuter    *float64 `toml:"ring-outer"`
	RingInner    *float64 `toml:"ring-inner"`
}

// Load reads and decodes a manifest file. Unknown keys are ignored so
// manifests can carry tool-foreign metadata.
func Load(path string) (*Manifest, error) {
	if err := errors.ValidateManifestFilename(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest %s", path)
	}
	return &m, nil
}

// GlyphOverrides converts the manifest overrides to the resolver's shape.
func (m *Manifest) GlyphOverrides() glyph.Overrides {
	return glyph.Overrides{
		CircleStroke: m.Override.CircleStroke,
		RadiusBold:   m.Override.Radius,
		SlashStroke:  m.Override.SlashStroke,
		EdgeGap:      m.Override.EdgeGap,
		Overshoot:    m.Override.Overshoot,
		AngleDegrees: m.Override.Angle,
		RingOuter:    m.Override.RingOuter,
		RingInner:    m.Override.RingInner,
	}
}
