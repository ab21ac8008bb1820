// Package main provides the twconfig CLI for loading and checking
// utility-class framework declarations.
package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var exitErr ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		log.Error(err)
		os.Exit(1)
	}
}

// ExitCodeError ends the process with Code. The command has already
// reported why, so main prints nothing more.
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
