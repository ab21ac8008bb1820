package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/report"

	log "github.com/sirupsen/logrus"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint the declaration",
		Long: `Check glob syntax, colour values and plugin references, report keys
outside the schema and content patterns that match no files.
Errors fail the run; with --strict warnings do too.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	f := cmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("resolve-content", true, "Expand content globs and warn about patterns without matches")
	f.Bool("print-linter-name", true, "Show (twlint) suffix on issues")
	addContentFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	path, err := declarationPath()
	if err != nil {
		return err
	}

	log.WithField("path", path).Debug("checking declaration")
	result, err := twconfig.CheckFile(path, twconfig.CheckOptions{
		ResolveContent: getBool("check.resolve-content", true),
		Content:        contentOptions(),
	})
	if err != nil {
		return err
	}

	quiet := getBool("quiet", false)
	if !quiet {
		out := cmd.OutOrStdout()
		switch twconfig.DetermineOutputFormat(getString("check.output-format", "issues")) {
		case twconfig.OutputJSON:
			if err := twconfig.WriteJSON(out, result); err != nil {
				return fmt.Errorf("writing JSON: %w", err)
			}
		default:
			reporter := report.NewReporter(out, report.Options{
				UseColors:       report.ShouldUseColors(getBool("color", false)),
				PrintLinterName: getBool("check.print-linter-name", true),
			})
			reporter.PrintIssues(result.Issues)
			reporter.PrintSummary(result)
		}
	}

	// Exit code logic - "Soft Gate" approach
	if getBool("check.strict", false) {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			return ExitCodeError{Code: 1}
		}
	} else if result.ErrorCount > 0 {
		// Default mode: only errors fail the build
		return ExitCodeError{Code: 1}
	}

	return nil
}
