package main

import (
	"errors"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// hintFor returns an actionable hint for a fatal error, or "" when there is
// nothing useful to suggest. configName is the config flag value, used to
// report where a named config was searched for.
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, ErrNoContentDir):
		return hints.ForNoContent()
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if configName != "" && !fileutil.IsFilePath(configName) {
			searched = config.SearchPaths(configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForMarkdownExtension()
	}
	return ""
}
