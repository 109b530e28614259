package glyph

import "strings"

// Preset identifies a named partial override set. Presets are applied over
// the base configuration before explicit overrides, so explicit overrides
// always win.
type Preset int

// Known presets. Each is tuned after the zero/empty-set glyph proportions
// of a well-known typeface.
const (
	PresetNone Preset = iota
	PresetInter
	PresetSF
	PresetHelvetica
)

var presetNames = map[Preset]string{
	PresetNone:      "none",
	PresetInter:     "inter",
	PresetSF:        "sf",
	PresetHelvetica: "helvetica",
}

// String returns the lowercase preset name.
func (p Preset) String() string {
	if s, ok := presetNames[p]; ok {
		return s
	}
	return "none"
}

// ParsePreset maps a name to a Preset. Matching is case-insensitive.
// Unknown names return (PresetNone, false): an unknown preset is an
// explicit no-op, not an error.
func ParsePreset(name string) (Preset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return PresetNone, true
	case "inter":
		return PresetInter, true
	case "sf", "sf-pro", "sfpro":
		return PresetSF, true
	case "helvetica":
		return PresetHelvetica, true
	}
	return PresetNone, false
}

// Presets lists the selectable presets in display order, excluding
// PresetNone.
func Presets() []Preset {
	return []Preset{PresetInter, PresetSF, PresetHelvetica}
}

func f(v float64) *float64 { return &v }

// partials holds the partial override set contributed by each preset.
// Fields a preset leaves nil fall through to the base configuration.
var partials = map[Preset]Overrides{
	PresetNone: {},
	PresetInter: {
		AngleDegrees: f(-38),
		SlashStroke:  f(12),
		EdgeGap:      f(6),
		RingOuter:    f(38),
		RingInner:    f(26),
	},
	PresetSF: {
		AngleDegrees: f(-42),
		SlashStroke:  f(14),
		EdgeGap:      f(5),
		RadiusBold:   f(34),
		RingOuter:    f(40),
		RingInner:    f(27),
	},
	PresetHelvetica: {
		AngleDegrees: f(-32),
		SlashStroke:  f(10),
		EdgeGap:      f(8),
		RadiusBold:   f(30),
		RingOuter:    f(36),
		RingInner:    f(24),
	},
}

// Partial returns the preset's partial override set. PresetNone (and any
// out-of-range value) contributes nothing.
func (p Preset) Partial() Overrides {
	if o, ok := partials[p]; ok {
		return o
	}
	return Overrides{}
}
