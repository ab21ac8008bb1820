package main

import (
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

// setupLogging routes diagnostics to stderr. Results go to stdout.
func setupLogging(cmd *cobra.Command) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      getBool("color", false),
	})

	switch {
	case getBool("quiet", false):
		log.SetLevel(log.ErrorLevel)
	case getBool("verbose", false):
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
