package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nullsign/nullsign/pkg/glyph"
)

// presetsCommand creates the presets command, which lists the built-in
// typeface presets with their resolved geometry.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in typeface presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base := glyph.Base()

			printInfo("base")
			printPresetConfig(base)
			printNewline()

			for _, p := range glyph.Presets() {
				cfg := glyph.Resolve(base, p, glyph.Overrides{})
				printInfo("%s", p.String())
				printPresetConfig(cfg)
				printNewline()
			}

			printNextStep("Use a preset", "nullsign generate --preset inter")
			return nil
		},
	}
}

// printPresetConfig prints the geometry fields a preset influences.
func printPresetConfig(cfg glyph.Config) {
	printKeyValue("angle", fmtNum(cfg.AngleDegrees))
	printKeyValue("slash-stroke", fmtNum(cfg.SlashStroke))
	printKeyValue("edge-gap", fmtNum(cfg.EdgeGap))
	printKeyValue("radius", fmtNum(cfg.RadiusBold))
	printKeyValue("ring-outer", fmtNum(cfg.RingOuter))
	printKeyValue("ring-inner", fmtNum(cfg.RingInner))
}

// fmtNum formats a geometry value without trailing zeros.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
