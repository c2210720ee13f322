package main

import (
	"fmt"
	"os"

	"github.com/riskibarqy/scout-market/internal/platform/logging"
)

func main() {
	logger := logging.New(logging.Options{Level: logging.LevelInfo, Service: "scout-market-migration"})
	defer func() { _ = logger.Sync() }()

	if err := newApp(logger).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
