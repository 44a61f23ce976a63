package main

import (
	"errors"
	"os"

	"github.com/scriptsmith-labs/scriptsmith/internal/cli"
	"github.com/scriptsmith-labs/scriptsmith/internal/elicit"
	"github.com/scriptsmith-labs/scriptsmith/internal/logger"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit status when the operator cancels the run during elicitation, matching
// the usual 128+SIGINT convention.
const exitCancelled = 130

func main() {
	logger.Initialize()

	if err := cli.Execute(version, commit, date); err != nil {
		if errors.Is(err, elicit.ErrCancelled) {
			logger.Logger.Warn("Cancelled.")
			logger.Sync()
			os.Exit(exitCancelled)
		}
		logger.Logger.Error(err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
