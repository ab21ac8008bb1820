package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig/internal/report"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the declaration has the expected shape",
		Long: `Load the declaration and fail if a required key (content,
theme.extend.colors, plugins) is missing or a value has the wrong type.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, _ []string) error {
	doc, path, err := loadDocument()
	if err != nil {
		return err
	}

	if getBool("quiet", false) {
		return nil
	}

	useColors := report.ShouldUseColors(getBool("color", false))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", report.RenderStyle(report.StyleGreen, "Valid", useColors), path)
	fmt.Fprintf(out, "  Content patterns: %d\n", len(doc.ContentGlobs))
	fmt.Fprintf(out, "  Colour families: %d (%d shades)\n", len(doc.ThemeExtensions), doc.ColorCount())
	if len(doc.Plugins) > 0 {
		fmt.Fprintf(out, "  Plugins: %s\n", strings.Join(doc.Plugins, ", "))
	} else {
		fmt.Fprintln(out, "  Plugins: none")
	}
	return nil
}
