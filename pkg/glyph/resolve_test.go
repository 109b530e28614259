package glyph

import "testing"

func TestResolveIdempotentBase(t *testing.T) {
	base := Base()
	got := Resolve(base, PresetNone, Overrides{})
	if got != base {
		t.Errorf("Resolve with no preset and no overrides = %+v, want base %+v", got, base)
	}
}

func TestResolveClamping(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
		get  func(Config) float64
		want float64
	}{
		{"slash stroke above max", Overrides{SlashStroke: f(1000)}, func(c Config) float64 { return c.SlashStroke }, MaxSlashStroke},
		{"slash stroke below min", Overrides{SlashStroke: f(-5)}, func(c Config) float64 { return c.SlashStroke }, MinSlashStroke},
		{"edge gap above max", Overrides{EdgeGap: f(99)}, func(c Config) float64 { return c.EdgeGap }, MaxEdgeGap},
		{"edge gap below min", Overrides{EdgeGap: f(0)}, func(c Config) float64 { return c.EdgeGap }, MinEdgeGap},
		{"positive angle clamps to -10", Overrides{AngleDegrees: f(45)}, func(c Config) float64 { return c.AngleDegrees }, MaxAngle},
		{"zero angle clamps to -10", Overrides{AngleDegrees: f(0)}, func(c Config) float64 { return c.AngleDegrees }, MaxAngle},
		{"angle below min", Overrides{AngleDegrees: f(-90)}, func(c Config) float64 { return c.AngleDegrees }, MinAngle},
		{"radius above max", Overrides{RadiusBold: f(100)}, func(c Config) float64 { return c.RadiusBold }, MaxRadiusBold},
		{"radius below min", Overrides{RadiusBold: f(1)}, func(c Config) float64 { return c.RadiusBold }, MinRadiusBold},
		{"ring outer above max", Overrides{RingOuter: f(200)}, func(c Config) float64 { return c.RingOuter }, MaxRingOuter},
		{"overshoot below min", Overrides{Overshoot: f(-3)}, func(c Config) float64 { return c.Overshoot }, MinOvershoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Resolve(Base(), PresetNone, tt.o)
			if got := tt.get(c); got != tt.want {
				t.Errorf("resolved field = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveExplicitBeatsPreset(t *testing.T) {
	// SF sets SlashStroke=14; the explicit override must win, clamped.
	c := Resolve(Base(), PresetSF, Overrides{SlashStroke: f(20)})
	if c.SlashStroke != 20 {
		t.Errorf("SlashStroke = %v, want explicit override 20", c.SlashStroke)
	}

	c = Resolve(Base(), PresetSF, Overrides{SlashStroke: f(1000)})
	if c.SlashStroke != MaxSlashStroke {
		t.Errorf("SlashStroke = %v, want clamped %v", c.SlashStroke, float64(MaxSlashStroke))
	}

	// A field the preset sets but the override doesn't keeps the preset value.
	c = Resolve(Base(), PresetSF, Overrides{SlashStroke: f(20)})
	if c.AngleDegrees != -42 {
		t.Errorf("AngleDegrees = %v, want preset value -42", c.AngleDegrees)
	}
}

func TestResolvePresetMerge(t *testing.T) {
	c := Resolve(Base(), PresetHelvetica, Overrides{})
	if c.SlashStroke != 10 || c.EdgeGap != 8 || c.AngleDegrees != -32 {
		t.Errorf("helvetica merge = %+v", c)
	}
	// Fields absent from the preset keep base values.
	if c.CircleStroke != Base().CircleStroke {
		t.Errorf("CircleStroke = %v, want base %v", c.CircleStroke, Base().CircleStroke)
	}
	if c.Overshoot != Base().Overshoot {
		t.Errorf("Overshoot = %v, want base %v", c.Overshoot, Base().Overshoot)
	}
}

func TestResolveKnockGapDerived(t *testing.T) {
	tests := []struct {
		name    string
		edgeGap float64
		want    float64
	}{
		{"small gap hits floor", 2, 5},
		{"floor boundary", 4, 5},
		{"above floor", 6, 7},
		{"max gap", 16, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Resolve(Base(), PresetNone, Overrides{EdgeGap: f(tt.edgeGap)})
			if c.KnockGap != tt.want {
				t.Errorf("KnockGap = %v, want %v", c.KnockGap, tt.want)
			}
			if c.KnockGap < c.EdgeGap+1 {
				t.Errorf("KnockGap %v < EdgeGap+1 %v", c.KnockGap, c.EdgeGap+1)
			}
			if c.KnockGap < 5 {
				t.Errorf("KnockGap %v below absolute floor", c.KnockGap)
			}
		})
	}
}

func TestResolveRingInnerDependentBound(t *testing.T) {
	// RingInner clamps against the already-resolved RingOuter.
	c := Resolve(Base(), PresetNone, Overrides{RingOuter: f(30), RingInner: f(40)})
	if c.RingInner != 24 {
		t.Errorf("RingInner = %v, want RingOuter-6 = 24", c.RingInner)
	}

	c = Resolve(Base(), PresetNone, Overrides{RingInner: f(1)})
	if c.RingInner != MinRingInner {
		t.Errorf("RingInner = %v, want %v", c.RingInner, float64(MinRingInner))
	}

	// Even without an explicit RingInner, shrinking RingOuter pulls the
	// inner radius back under the thickness bound.
	c = Resolve(Base(), PresetNone, Overrides{RingOuter: f(26)})
	if c.RingInner > c.RingOuter-6 {
		t.Errorf("RingInner %v exceeds RingOuter-6 %v", c.RingInner, c.RingOuter-6)
	}
}

func TestResolveRingInvariantAcrossPresets(t *testing.T) {
	for _, p := range append(Presets(), PresetNone) {
		c := Resolve(Base(), p, Overrides{})
		if c.RingInner > c.RingOuter-6 {
			t.Errorf("%s: RingInner %v > RingOuter-6 %v", p, c.RingInner, c.RingOuter-6)
		}
		if c.RingInner < MinRingInner {
			t.Errorf("%s: RingInner %v below minimum", p, c.RingInner)
		}
	}
}

func TestOverridesIsZero(t *testing.T) {
	if !(Overrides{}).IsZero() {
		t.Error("empty Overrides should be zero")
	}
	if (Overrides{EdgeGap: f(3)}).IsZero() {
		t.Error("Overrides with a field set should not be zero")
	}
}
