package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nullsign/nullsign/pkg/cache"
	"github.com/nullsign/nullsign/pkg/glyph"
	"github.com/nullsign/nullsign/pkg/render"
)

func floatPtr(v float64) *float64 { return &v }

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}

	if len(opts.Variants) != len(render.Variants) {
		t.Errorf("Variants = %v, want all variants", opts.Variants)
	}
	if opts.Color != DefaultColor {
		t.Errorf("Color = %q, want %q", opts.Color, DefaultColor)
	}
	if opts.Size != DefaultSize {
		t.Errorf("Size = %v, want %v", opts.Size, DefaultSize)
	}
	if opts.OutDir != DefaultOutDir {
		t.Errorf("OutDir = %q, want %q", opts.OutDir, DefaultOutDir)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	opts.Color = "changed-after-validate"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Color != "changed-after-validate" {
		t.Error("second validation should be a no-op")
	}
}

func TestOptionsRejectUnknownVariant(t *testing.T) {
	opts := Options{Variants: []string{"outline", "hexagon"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Fatal("unknown variant should fail validation")
	}
}

func TestGenerate(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Generate(context.Background(), Options{
		Preset:   "sf",
		Variants: []string{"outline", "ring"},
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if result.Preset != glyph.PresetSF || !result.PresetKnown {
		t.Errorf("Preset = %v known=%v", result.Preset, result.PresetKnown)
	}
	if len(result.ConfigHash) != 64 {
		t.Errorf("ConfigHash = %q, want 64 hex chars", result.ConfigHash)
	}

	// Two variants plus the README.
	if len(result.Payloads) != 3 {
		t.Errorf("payload count = %d, want 3: %v", len(result.Payloads), result.Payloads.Names())
	}
	if _, ok := result.Payloads["nullsign-outline.svg"]; !ok {
		t.Error("missing outline payload")
	}
	readme, ok := result.Payloads[render.READMEName]
	if !ok {
		t.Fatal("missing README payload")
	}
	if !strings.Contains(string(readme), result.RunID) {
		t.Error("README should carry the run ID")
	}
}

func TestGenerateUnknownPresetIsNoOp(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Generate(context.Background(), Options{Preset: "futura", Variants: []string{"outline"}})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if result.PresetKnown {
		t.Error("futura should be unknown")
	}
	if result.Config != glyph.Base() {
		t.Errorf("unknown preset should keep base config: %+v", result.Config)
	}
}

func TestGenerateAppliesOverrides(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Generate(context.Background(), Options{
		Variants:  []string{"outline"},
		Overrides: glyph.Overrides{SlashStroke: floatPtr(1000)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Config.SlashStroke != glyph.MaxSlashStroke {
		t.Errorf("SlashStroke = %v, want clamped %v", result.Config.SlashStroke, float64(glyph.MaxSlashStroke))
	}
}

func TestGenerateUsesArtifactCache(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Variants: []string{"outline", "ring"}}
	first, err := r.Generate(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Stats.CacheHits != 0 || first.Stats.CacheMiss != 2 {
		t.Errorf("first run stats = %+v, want all misses", first.Stats)
	}

	second, err := r.Generate(context.Background(), Options{Variants: []string{"outline", "ring"}})
	if err != nil {
		t.Fatal(err)
	}
	if second.Stats.CacheHits != 2 {
		t.Errorf("second run stats = %+v, want all hits", second.Stats)
	}

	// Cached and fresh renders must be byte-identical.
	for _, name := range []string{"nullsign-outline.svg", "nullsign-ring.svg"} {
		if string(first.Payloads[name]) != string(second.Payloads[name]) {
			t.Errorf("%s differs between cached and fresh render", name)
		}
	}

	// Refresh bypasses the cache.
	third, err := r.Generate(context.Background(), Options{Variants: []string{"outline"}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.Stats.CacheHits != 0 {
		t.Errorf("refresh run should not hit the cache: %+v", third.Stats)
	}
}

func TestExecuteWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Variants: []string{"outline", "monogram"},
		OutDir:   dir,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result.Written != 3 {
		t.Errorf("Written = %d, want 3 (two variants + README)", result.Written)
	}

	for _, name := range []string{"nullsign-outline.svg", "nullsign-monogram.svg", "README.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestConfigHashStableAcrossEqualConfigs(t *testing.T) {
	a := hashConfig(glyph.Base())
	b := hashConfig(glyph.Base())
	if a != b {
		t.Error("equal configs must hash equally")
	}

	c := glyph.Resolve(glyph.Base(), glyph.PresetNone, glyph.Overrides{EdgeGap: floatPtr(9)})
	if hashConfig(c) == a {
		t.Error("different configs must hash differently")
	}
}
