package main

import (
	"github.com/yacobolo/twconfig"

	log "github.com/sirupsen/logrus"
)

// declarationPath returns the configured declaration, or the first
// well-known file in the working directory.
func declarationPath() (string, error) {
	if path := getString("declaration", ""); path != "" {
		return path, nil
	}
	return twconfig.Locate(".")
}

// loadDocument resolves and loads the declaration.
func loadDocument() (*twconfig.Document, string, error) {
	path, err := declarationPath()
	if err != nil {
		return nil, "", err
	}

	log.WithField("path", path).Debug("loading declaration")
	doc, err := twconfig.LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	log.WithFields(log.Fields{
		"content":  len(doc.ContentGlobs),
		"families": len(doc.ThemeExtensions),
		"plugins":  len(doc.Plugins),
	}).Debug("declaration loaded")

	return doc, path, nil
}
