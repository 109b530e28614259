// Package render emits the SVG payloads for the circle-and-slash variant
// family, plus the README payload describing a generation run.
//
// Each variant binds a markup template to one of the two geometry policies:
// interior containment (the slash stays clear of the boundary) or
// cut-through (the slash overshoots it). The distinguishing visual choice is
// entirely parametric; there is one template per composition, not per
// hand-tuned constant set.
package render

import (
	"fmt"

	"github.com/nullsign/nullsign/pkg/errors"
	"github.com/nullsign/nullsign/pkg/glyph"
)

// Variant names the glyph compositions this package can emit.
const (
	VariantOutline  = "outline"  // stroked circle, interior slash (empty-set)
	VariantRing     = "ring"     // filled annulus with rounded knockout bar
	VariantCut      = "cut"      // filled annulus, slash crossing the boundary
	VariantTilted   = "tilted"   // ring composition at a steeper tilt
	VariantMonogram = "monogram" // ring+knockout on a dark rounded tile
)

// Variants lists all variants in generation order.
var Variants = []string{VariantOutline, VariantRing, VariantCut, VariantTilted, VariantMonogram}

// validVariants is the membership set for validation.
var validVariants = map[string]bool{
	VariantOutline:  true,
	VariantRing:     true,
	VariantCut:      true,
	VariantTilted:   true,
	VariantMonogram: true,
}

// ValidateVariant checks that a variant name is known.
func ValidateVariant(v string) error {
	if !validVariants[v] {
		return errors.New(errors.ErrCodeInvalidVariant,
			"invalid variant: %q (must be one of: outline, ring, cut, tilted, monogram)", v)
	}
	return nil
}

// ValidateVariants checks every requested variant name.
func ValidateVariants(vs []string) error {
	for _, v := range vs {
		if err := ValidateVariant(v); err != nil {
			return err
		}
	}
	return nil
}

// FileName returns the output file name for a variant.
func FileName(variant string) string {
	return fmt.Sprintf("nullsign-%s.svg", variant)
}

// Render dispatches to the variant's renderer.
func Render(variant string, c glyph.Config, opts ...Option) ([]byte, error) {
	if err := ValidateVariant(variant); err != nil {
		return nil, err
	}
	r := newRenderer(opts...)
	switch variant {
	case VariantOutline:
		return renderOutline(c, r), nil
	case VariantRing:
		return renderRing(c, r), nil
	case VariantCut:
		return renderCut(c, r), nil
	case VariantTilted:
		return renderTilted(c, r), nil
	case VariantMonogram:
		return renderMonogram(c, r), nil
	}
	return nil, errors.New(errors.ErrCodeInternal, "unreachable variant: %q", variant)
}
