package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"

	log "github.com/sirupsen/logrus"
)

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "List the files matched by the content globs",
		Long: `Expand the declaration's content globs and print every matched file.
Entries starting with "!" exclude files. Gitignored files are skipped by default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, _, err := loadDocument()
			if err != nil {
				return err
			}

			result, err := twconfig.ResolveContent(doc, contentOptions())
			if err != nil {
				return err
			}

			if getBool("quiet", false) {
				return nil
			}
			for _, f := range result.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			for _, pattern := range doc.ContentGlobs {
				if n, ok := result.PerPattern[pattern]; ok {
					log.WithField("pattern", pattern).Debugf("%d files", n)
				}
			}
			log.Infof("%d files matched (%d skipped)", result.Stats.FilesMatched, result.Stats.FilesSkipped)
			return nil
		},
	}

	addContentFlags(cmd)
	return cmd
}

func addContentFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("base-dir", ".", "Directory content globs are relative to")
	f.Bool("gitignore", true, "Skip files matched by .gitignore in the base directory")
}

func contentOptions() twconfig.ContentOptions {
	return twconfig.ContentOptions{
		BaseDir:   getString("content.base-dir", "."),
		GitIgnore: getBool("content.gitignore", true),
	}
}
