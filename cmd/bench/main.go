package main

import (
	"log/slog"
	"os"

	"github.com/joseph-ayodele/extraction-bench/internal/common"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	root := newRootCmd(cfg, logger)
	if err := root.Execute(); err != nil {
		logger.Error("benchmark failed", "error", err)
		if common.IsSchemaError(err) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
