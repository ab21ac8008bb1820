package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig/internal/report"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Show the theme colour extensions",
		Long:  `Print every colour family and shade. Hex and named colours get a swatch when colors are enabled.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, _, err := loadDocument()
			if err != nil {
				return err
			}
			if getBool("quiet", false) {
				return nil
			}
			report.PrintPalette(cmd.OutOrStdout(), doc, report.ShouldUseColors(getBool("color", false)))
			return nil
		},
	}
}
