package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded declaration",
		Long:  `Print the declaration as loaded, in YAML or JSON. The output loads back unchanged.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, _, err := loadDocument()
			if err != nil {
				return err
			}
			format := twconfig.DeclarationFormat(getString("show.format", string(twconfig.FormatYAML)))
			return twconfig.WriteDeclaration(cmd.OutOrStdout(), doc, format)
		},
	}

	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml|json")
	return cmd
}
