package main

import (
	"context"
	"errors"

	nbreport "github.com/alnah/go-nbreport"
	"github.com/alnah/go-nbreport/internal/assets"
	"github.com/alnah/go-nbreport/internal/config"
	"github.com/alnah/go-nbreport/internal/hints"
)

// Exit codes for the nbreport CLI. Every failure exits with ExitFailure
// so scripts only need to test for non-zero.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, flags *cliFlags) string {
	switch {
	case errors.Is(err, nbreport.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, nbreport.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, nbreport.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	case errors.Is(err, config.ErrConfigNotFound) && flags != nil:
		return hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
	}
	return ""
}
