package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/lyrx/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := runner.app().Run(ctx, os.Args); err != nil {
		stop()
		logger.Fatal("application error", "error", err)
	}
}
