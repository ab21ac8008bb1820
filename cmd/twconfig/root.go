package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twconfig",
		Short: "Load and check utility-class framework declarations",
		Long: `Reads a tailwind.config.{yaml,yml,json} declaration (content globs,
theme colour extensions, plugins), validates its shape and inspects it.
Running twconfig without a subcommand validates the declaration.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			setupLogging(cmd)
			return nil
		},
		RunE:          runValidate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags (inherited by all subcommands)
	pf := cmd.PersistentFlags()
	pf.String("config", defaultSettingsFile, "Settings file path")
	pf.StringP("declaration", "d", "", "Declaration file (default: first tailwind.config.{yaml,yml,json} in the working directory)")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newContentCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
