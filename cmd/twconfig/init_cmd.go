package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter tailwind.config.yaml",
		Long:  `Create a declaration in the current directory (or at --declaration) with a starter content glob, colour extensions and plugin list.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			path := getString("declaration", twconfig.DeclarationNames[0])

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			// The starter must itself be a valid declaration.
			if _, err := twconfig.LoadBytes([]byte(defaultDeclaration)); err != nil {
				return fmt.Errorf("starter declaration: %w", err)
			}

			if err := os.WriteFile(path, []byte(defaultDeclaration), 0644); err != nil {
				return fmt.Errorf("writing declaration: %w", err)
			}

			if !getBool("quiet", false) {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing declaration")
	return cmd
}

const defaultDeclaration = `# Utility-class framework declaration
# Docs: https://github.com/yacobolo/twconfig

# Files scanned for class usage. Prefix an entry with "!" to exclude files.
content:
  - "./src/**/*.{html,js,svelte,ts}"

theme:
  extend:
    # Colour families added to the default palette: family -> shade -> value
    colors:
      green:
        600: "#16a34a"
      red:
        600: "#dc2626"
      gray:
        400: "#9ca3af"

# Plugins, applied in order
plugins:
  - daisyui
`
