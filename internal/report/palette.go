package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/twconfig"
)

const swatchWidth = 6

// PrintPalette writes every colour family with one line per shade.
// With colors enabled each hex-expressible value gets a swatch.
func PrintPalette(w io.Writer, doc *twconfig.Document, useColors bool) {
	families := doc.Families()
	if len(families) == 0 {
		fmt.Fprintln(w, "No theme colour extensions declared.")
		return
	}

	for i, family := range families {
		if i > 0 {
			fmt.Fprintln(w, "")
		}
		fmt.Fprintln(w, RenderStyle(StyleCyan, family, useColors))

		shades := doc.Shades(family)
		if len(shades) == 0 {
			fmt.Fprintln(w, RenderStyle(StyleGray, "  (no shades)", useColors))
			continue
		}
		for _, shade := range shades {
			value := doc.ThemeExtensions[family][shade]
			fmt.Fprintf(w, "  %-8s %s%s\n", shade, swatch(value, useColors), describe(value, useColors))
		}
	}
}

// swatch renders a block filled with the colour, or nothing when colours
// are disabled or the value has no hex form.
func swatch(value string, useColors bool) string {
	if !useColors {
		return ""
	}
	color, err := twconfig.ParseColor(value)
	if err != nil {
		return ""
	}
	hex, ok := color.Hex()
	if !ok {
		return ""
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(swatchWidth).
		Render("")
	return block + " "
}

func describe(value string, useColors bool) string {
	if _, err := twconfig.ParseColor(value); err != nil {
		return value + RenderStyle(StyleRed, " (invalid)", useColors)
	}
	return value
}
